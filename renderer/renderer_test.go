package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/spend"
)

func record(id, date, amount, category, note string) spend.Record {
	r, ok := spend.Normalize(spend.Draft{ID: id, Date: date, Amount: amount, Category: category, Note: note})
	if !ok {
		panic("invalid test record: " + id)
	}
	return r
}

func TestRecords(t *testing.T) {
	records := []spend.Record{
		record("a", "2024-01-05", "12.50", "Food", "lunch"),
		record("b", "2024-02-01", "40.00", "Transport", "fuel"),
	}

	got := Records(records, "EUR")

	for _, want := range []string{"| 2024-01-05 |", "€12.50", "Food", "lunch", "2 record(s)."} {
		if !strings.Contains(got, want) {
			t.Errorf("Records() misses %q:\n%s", want, got)
		}
	}
}

func TestRecordsEmpty(t *testing.T) {
	got := Records(nil, "EUR")
	if !strings.Contains(got, "0 record(s).") {
		t.Errorf("Records(nil) misses the count:\n%s", got)
	}
}

func TestSummary(t *testing.T) {
	records := []spend.Record{
		record("a", "2024-01-05", "12.50", "Food", "lunch"),
		record("b", "2024-02-01", "40.00", "Transport", "fuel"),
	}
	s := spend.NewSummary(records, spend.MustParse("2024-02-15"))

	got := Summary(s, "EUR")

	for _, want := range []string{"# Summary on 2024-02-15", "€52.50", "2024-02", "€40.00", "Top categories", "Transport"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() misses %q:\n%s", want, got)
		}
	}
}

func TestCategories(t *testing.T) {
	got := Categories([]string{"Food", "Transport"})
	if !strings.Contains(got, "* Food") || !strings.Contains(got, "* Transport") {
		t.Errorf("Categories() misses entries:\n%s", got)
	}
}
