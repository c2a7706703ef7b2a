package spend

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// this file implements the persistence codec: the whole ledger serialized
// as one compact JSON array, stored under a single key of the key/value
// persistence collaborator.

// EncodeLedger serializes the ledger to its persistence form.
func EncodeLedger(l *Ledger) ([]byte, error) {
	data, err := json.Marshal(l.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("cannot marshal ledger: %w", err)
	}
	return data, nil
}

// DecodeLedger reconstructs a ledger from its persistence form.
//
// The payload is treated as untrusted: when it is not a JSON array the
// returned ledger is empty and no error is reported, so a corrupted store
// degrades to a fresh start instead of crashing the caller. Individual
// records go through the same normalization as an import, keeping the
// in-memory invariants (canonical dates, positive rounded amounts) true
// regardless of what was on disk.
func DecodeLedger(data []byte) *Ledger {
	if len(data) == 0 {
		return NewLedger()
	}
	records, _, err := parseRecords(data)
	if err != nil {
		return NewLedger()
	}
	return NewLedger(records...)
}
