package spend

import (
	"reflect"
	"testing"
)

// rec is a test helper building a well-formed record.
func rec(id, date, amount, category, note string) Record {
	r, ok := Normalize(Draft{ID: id, Date: date, Amount: amount, Category: category, Note: note})
	if !ok {
		panic("invalid test record: " + id)
	}
	return r
}

func TestLedgerAddPrepends(t *testing.T) {
	l := NewLedger()
	first := rec("a", "2024-01-05", "12.50", "Food", "lunch")
	second := rec("b", "2024-02-01", "40.00", "Transport", "fuel")

	l.Add(first)
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	l.Add(second)
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}

	got := l.Snapshot()
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("order = [%s %s], want newest first [b a]", got[0].ID, got[1].ID)
	}
}

func TestLedgerDeleteIsIdempotent(t *testing.T) {
	l := NewLedger(
		rec("a", "2024-01-05", "12.50", "Food", "lunch"),
		rec("b", "2024-02-01", "40.00", "Transport", "fuel"),
	)

	l.Delete("a")
	if l.Len() != 1 {
		t.Fatalf("after first delete Len() = %d, want 1", l.Len())
	}
	l.Delete("a") // second delete is a no-op
	if l.Len() != 1 {
		t.Fatalf("after second delete Len() = %d, want 1", l.Len())
	}
	l.Delete("unknown")
	if l.Len() != 1 {
		t.Fatalf("after deleting unknown id Len() = %d, want 1", l.Len())
	}
}

func TestLedgerClear(t *testing.T) {
	l := NewLedger(rec("a", "2024-01-05", "12.50", "Food", ""))
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", l.Len())
	}
}

func TestLedgerReplaceAll(t *testing.T) {
	l := NewLedger(rec("a", "2024-01-05", "12.50", "Food", ""))
	replacement := []Record{
		rec("x", "2024-03-01", "1", "Health", ""),
		rec("y", "2024-03-02", "2", "Housing", ""),
	}
	l.ReplaceAll(replacement)

	got := l.Snapshot()
	if len(got) != 2 || got[0].ID != "x" || got[1].ID != "y" {
		t.Errorf("ReplaceAll result = %v, want records x then y", got)
	}
}

func TestLedgerCategories(t *testing.T) {
	l := NewLedger(
		rec("a", "2024-01-05", "12.50", "Food", ""),
		rec("b", "2024-02-01", "40.00", "Vacation", ""), // ad-hoc category
	)

	got := l.Categories()

	// Sorted union of the defaults and the observed categories.
	want := []string{"Entertainment", "Food", "Health", "Housing", "Other", "Shopping", "Transport", "Vacation"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}
