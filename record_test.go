package spend

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name         string
		draft        Draft
		wantOK       bool
		wantAmount   string
		wantCategory string
		wantDate     string // empty means "today"
		wantNote     string
	}{
		{
			name:         "complete draft",
			draft:        Draft{Date: "2024-01-05", Amount: "12.50", Category: "Food", Note: "lunch"},
			wantOK:       true,
			wantAmount:   "12.5",
			wantCategory: "Food",
			wantDate:     "2024-01-05",
			wantNote:     "lunch",
		},
		{
			name:       "rounds to the cent half up",
			draft:      Draft{Date: "2024-01-05", Amount: "19.999"},
			wantOK:     true,
			wantAmount: "20",
		},
		{
			name:       "rounds down below the half cent",
			draft:      Draft{Date: "2024-01-05", Amount: "12.344"},
			wantOK:     true,
			wantAmount: "12.34",
		},
		{
			name:         "empty category defaults to Other",
			draft:        Draft{Date: "2024-01-05", Amount: "5"},
			wantOK:       true,
			wantAmount:   "5",
			wantCategory: DefaultCategory,
		},
		{
			name:         "blank category defaults to Other",
			draft:        Draft{Date: "2024-01-05", Amount: "5", Category: "   "},
			wantOK:       true,
			wantAmount:   "5",
			wantCategory: DefaultCategory,
		},
		{
			name:     "invalid date defaults to today",
			draft:    Draft{Date: "not a date", Amount: "5"},
			wantOK:   true,
			wantDate: "",
		},
		{name: "zero amount rejected", draft: Draft{Date: "2024-01-05", Amount: "0"}},
		{name: "negative amount rejected", draft: Draft{Date: "2024-01-05", Amount: "-5"}},
		{name: "non numeric amount rejected", draft: Draft{Date: "2024-01-05", Amount: "a lot"}},
		{name: "missing amount rejected", draft: Draft{Date: "2024-01-05"}},
		{name: "rounds to zero rejected", draft: Draft{Date: "2024-01-05", Amount: "0.004"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Normalize(tc.draft)
			if ok != tc.wantOK {
				t.Fatalf("Normalize(%+v) accepted=%v, want %v", tc.draft, ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if got.Amount.String() != tc.wantAmount {
				t.Errorf("amount = %s, want %s", got.Amount, tc.wantAmount)
			}
			if tc.wantCategory != "" && got.Category != tc.wantCategory {
				t.Errorf("category = %q, want %q", got.Category, tc.wantCategory)
			}
			wantDate := tc.wantDate
			if wantDate == "" {
				wantDate = Today().String()
			}
			if got.Date.String() != wantDate {
				t.Errorf("date = %s, want %s", got.Date, wantDate)
			}
			if got.Note != tc.wantNote {
				t.Errorf("note = %q, want %q", got.Note, tc.wantNote)
			}
			if got.ID == "" {
				t.Error("normalized record has no id")
			}
		})
	}
}

func TestNormalizePreservesID(t *testing.T) {
	draft := Draft{ID: "imported-42", Date: "2024-01-05", Amount: "1"}
	got, ok := Normalize(draft)
	if !ok {
		t.Fatal("draft unexpectedly rejected")
	}
	if got.ID != "imported-42" {
		t.Errorf("id = %q, want the supplied one", got.ID)
	}
}

func TestNormalizeMintsDistinctIDs(t *testing.T) {
	draft := Draft{Date: "2024-01-05", Amount: "1"}
	a, _ := Normalize(draft)
	b, _ := Normalize(draft)
	if a.ID == b.ID {
		t.Errorf("two normalizations produced the same id %q", a.ID)
	}
}

func TestRecordMarshalFieldOrder(t *testing.T) {
	record, ok := Normalize(Draft{ID: "r1", Date: "2024-01-05", Amount: "12.50", Category: "Food", Note: "lunch"})
	if !ok {
		t.Fatal("draft unexpectedly rejected")
	}
	data, err := record.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":"r1","date":"2024-01-05","amount":12.5,"category":"Food","note":"lunch"}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}
}
