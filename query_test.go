package spend

import (
	"reflect"
	"testing"
)

func TestQuery(t *testing.T) {
	l := NewLedger(
		rec("a", "2024-01-05", "12.50", "Food", "lunch"),
		rec("b", "2024-02-01", "40.00", "Transport", "fuel"),
	)

	t.Run("single field", func(t *testing.T) {
		got, err := Query(l, "$[0].amount")
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		if amount, ok := got.(float64); !ok || amount != 12.5 {
			t.Errorf("query = %v (%T), want 12.5", got, got)
		}
	})

	t.Run("projection", func(t *testing.T) {
		got, err := Query(l, "$[*].category")
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		want := []interface{}{"Food", "Transport"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("query = %v, want %v", got, want)
		}
	})

	t.Run("invalid expression", func(t *testing.T) {
		if _, err := Query(l, "not a path"); err == nil {
			t.Error("Query accepted an invalid expression, want error")
		}
	})
}
