package spend

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCategory is the category assigned to records created without one.
const DefaultCategory = "Other"

// Record is a single expense entry in the ledger.
type Record struct {
	ID       string
	Date     Date
	Amount   decimal.Decimal
	Category string
	Note     string
}

// Draft holds the raw, possibly malformed values for a record before
// normalization. All fields are free text as received from a form or an
// imported file.
type Draft struct {
	ID       string
	Date     string
	Amount   string
	Category string
	Note     string
}

// Normalize coerces a draft into a well-formed Record.
//
// Invalid fields degrade to defaults rather than failing the whole record:
// an unparseable date becomes today, a missing category becomes
// DefaultCategory, a missing id gets a fresh one. The amount is the only
// fatal field: it is parsed leniently (parse failure counts as zero),
// rounded to 2 decimal places (half away from zero at the cent boundary),
// and the record is rejected when the final value is not strictly positive.
// The boolean reports acceptance.
func Normalize(d Draft) (Record, bool) {
	amount, err := decimal.NewFromString(strings.TrimSpace(d.Amount))
	if err != nil {
		amount = decimal.Zero
	}
	amount = amount.Round(2)
	if !amount.IsPositive() {
		return Record{}, false
	}

	on, err := ParseDate(d.Date)
	if err != nil {
		on = Today()
	}

	category := strings.TrimSpace(d.Category)
	if category == "" {
		category = DefaultCategory
	}

	id := strings.TrimSpace(d.ID)
	if id == "" {
		id = NewID()
	}

	return Record{
		ID:       id,
		Date:     on,
		Amount:   amount,
		Category: category,
		Note:     d.Note,
	}, true
}

// NewID returns a fresh collision-resistant opaque identifier.
func NewID() string { return uuid.NewString() }

// Equal reports whether two records hold the same values. Amounts compare
// numerically, so 12.5 and 12.50 are equal.
func (r Record) Equal(o Record) bool {
	return r.ID == o.ID &&
		r.Date == o.Date &&
		r.Amount.Equal(o.Amount) &&
		r.Category == o.Category &&
		r.Note == o.Note
}

// MarshalJSON implements the json.Marshaler interface for Record. Field
// order is fixed so that encoded ledgers are canonical.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.Append("date", r.Date)
	w.Append("amount", r.Amount)
	w.Append("category", r.Category)
	w.Optional("note", r.Note)
	return w.MarshalJSON()
}
