package spend

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "canonical", in: "2024-01-05", want: "2024-01-05"},
		{name: "single digit month and day", in: "2024-1-5", want: "2024-01-05"},
		{name: "surrounding spaces", in: " 2024-01-05 ", want: "2024-01-05"},
		{name: "garbage", in: "yesterday", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "wrong order", in: "05-01-2024", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): unexpected error: %v", tc.in, err)
			}
			if got.String() != tc.want {
				t.Errorf("ParseDate(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDateCanonicalForm(t *testing.T) {
	// The canonical string must always be the 10-character ISO form so
	// that string comparison equals chronological comparison.
	d := NewDate(2024, time.March, 7)
	if got := d.String(); got != "2024-03-07" {
		t.Errorf("String() = %q, want %q", got, "2024-03-07")
	}
	if got := d.YearMonth(); got != "2024-03" {
		t.Errorf("YearMonth() = %q, want %q", got, "2024-03")
	}
}

func TestDateSameMonth(t *testing.T) {
	a := MustParse("2024-02-01")
	b := MustParse("2024-02-29")
	c := MustParse("2024-03-01")
	if !a.SameMonth(b) {
		t.Errorf("%v and %v should be in the same month", a, b)
	}
	if a.SameMonth(c) {
		t.Errorf("%v and %v should not be in the same month", a, c)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	in := MustParse("2024-12-31")
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-12-31"` {
		t.Errorf("marshal = %s, want %q", data, `"2024-12-31"`)
	}
	var out Date
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}
