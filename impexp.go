package spend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// this file implements the import/export format.
// It is a single human readable JSON document, easy to carry between devices.

// The interchange format is a JSON array of records with the fields
// id, date, amount, category and note. There is no envelope and no version
// metadata: the array is the whole format.

// ExportFilename returns the conventional filename for an export made on
// the given date, e.g. "expenses-2025-08-30.json".
func ExportFilename(on Date) string {
	return fmt.Sprintf("expenses-%s.json", on)
}

// Export writes the full ledger to 'w' in the interchange format,
// pretty-printed, preserving ledger order.
func Export(w io.Writer, l *Ledger) error {
	data, err := json.MarshalIndent(l.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal ledger: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write export: %w", err)
	}
	return nil
}

// Import parses untrusted bytes from 'r' in the interchange format.
//
// The top level must be a JSON array, otherwise an error is returned and the
// caller must leave its ledger untouched. Each element is normalized with
// the Record Model rules: a well-formed id is preserved, everything else
// degrades to defaults, and elements whose amount ends up non-positive are
// dropped rather than aborting the batch. It returns the surviving records
// in file order and the number of dropped elements.
func Import(r io.Reader) ([]Record, int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("cannot read import: %w", err)
	}
	return parseRecords(data)
}

// parseRecords decodes a JSON array of raw record objects and normalizes
// each element independently. It errors only when the document itself is
// not a JSON array; elements that are not objects count as dropped
// records, like any other element without a positive amount.
func parseRecords(data []byte) ([]Record, int, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	// The top level must be an array. "null" or a bare object would
	// happily unmarshal into a slice, so check the first token explicitly.
	tok, err := dec.Token()
	if err != nil {
		return nil, 0, fmt.Errorf("invalid file: expected a JSON array of records: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, 0, fmt.Errorf("invalid file: expected a JSON array of records, got %v", tok)
	}

	var elements []any
	for dec.More() {
		var element any
		if err := dec.Decode(&element); err != nil {
			return nil, 0, fmt.Errorf("invalid file: malformed record: %w", err)
		}
		elements = append(elements, element)
	}

	records := make([]Record, 0, len(elements))
	dropped := 0
	for _, element := range elements {
		fields, ok := element.(map[string]any)
		if !ok {
			dropped++
			continue
		}
		draft := Draft{
			ID:       asString(fields["id"]),
			Date:     asString(fields["date"]),
			Amount:   asNumberString(fields["amount"]),
			Category: asString(fields["category"]),
			Note:     asString(fields["note"]),
		}
		record, ok := Normalize(draft)
		if !ok {
			dropped++
			continue
		}
		records = append(records, record)
	}
	return records, dropped, nil
}

// asString coerces a decoded JSON value to a string, anything else is "".
func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asNumberString coerces a decoded JSON value to the textual form of a
// number. JSON numbers come out of the decoder as json.Number; numeric
// strings pass through and let Normalize do the parsing.
func asNumberString(v any) string {
	switch n := v.(type) {
	case json.Number:
		return n.String()
	case string:
		return n
	default:
		return ""
	}
}
