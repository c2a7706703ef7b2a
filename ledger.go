package spend

import (
	"iter"
	"slices"
)

// DefaultCategories is the fixed set of categories always offered for
// selection, independent of what the ledger contains.
var DefaultCategories = []string{
	"Food",
	"Transport",
	"Housing",
	"Entertainment",
	"Health",
	"Shopping",
	DefaultCategory,
}

// Ledger represents the ordered collection of expense records.
//
// Records are kept newest-added-first: Add prepends. The ledger is the only
// shared mutable state in the system and is owned by a single Store; other
// components only read it.
type Ledger struct {
	records []Record
}

// NewLedger creates an empty ledger.
func NewLedger(records ...Record) *Ledger {
	l := &Ledger{records: make([]Record, 0, len(records))}
	l.records = append(l.records, records...)
	return l
}

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int { return len(l.records) }

// Add prepends a record to the ledger, so the newest record comes first.
func (l *Ledger) Add(r Record) {
	l.records = append([]Record{r}, l.records...)
}

// Delete removes the record with the given id. It is a no-op when no record
// matches, so deleting twice is safe.
func (l *Ledger) Delete(id string) {
	l.records = slices.DeleteFunc(l.records, func(r Record) bool { return r.ID == id })
}

// Clear removes every record. Asking the user for confirmation is the
// caller's concern; the primitive is unconditional.
func (l *Ledger) Clear() {
	l.records = l.records[:0]
}

// ReplaceAll substitutes the whole collection with the given records,
// preserving their order.
func (l *Ledger) ReplaceAll(records []Record) {
	l.records = slices.Clone(records)
}

// Records returns an iterator that yields each record in ledger order,
// optionally restricted to records accepted by all the given predicates.
func (l *Ledger) Records(filters ...func(Record) bool) iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
	next:
		for i, r := range l.records {
			for _, filter := range filters {
				if !filter(r) {
					continue next
				}
			}
			if !yield(i, r) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the records in ledger order.
func (l *Ledger) Snapshot() []Record {
	return slices.Clone(l.records)
}

// Categories returns the category universe for selection widgets: the union
// of DefaultCategories and every distinct non-empty category observed in the
// ledger, sorted lexicographically.
func (l *Ledger) Categories() []string {
	seen := make(map[string]struct{})
	for _, c := range DefaultCategories {
		seen[c] = struct{}{}
	}
	for _, r := range l.records {
		if r.Category != "" {
			seen[r.Category] = struct{}{}
		}
	}
	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	slices.Sort(categories)
	return categories
}
