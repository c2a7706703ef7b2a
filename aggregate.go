package spend

import (
	"sort"

	"github.com/shopspring/decimal"
)

// UncategorizedBucket is the ranking bucket for records without a category.
// Normalization defaults empty categories away, but imported data is only
// guaranteed to have a positive amount.
const UncategorizedBucket = "Uncategorized"

// TopCategoryCount is the number of category buckets reported by summaries.
const TopCategoryCount = 5

// CategoryTotal is the summed amount of one category bucket.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// Total sums the amounts of the given records.
func Total(records []Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

// MonthTotal sums the amounts of the records that fall in the same year and
// month as 'on'.
func MonthTotal(records []Record, on Date) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r.Date.SameMonth(on) {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// TopCategories groups the records by category, sums the amounts per group,
// and returns the n largest groups in descending order of their sums.
// Records without a category are attributed to UncategorizedBucket.
// Groups with equal sums keep their first-appearance order in the input, so
// the ranking is deterministic.
func TopCategories(records []Record, n int) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, r := range records {
		category := r.Category
		if category == "" {
			category = UncategorizedBucket
		}
		if _, ok := sums[category]; !ok {
			order = append(order, category)
		}
		sums[category] = sums[category].Add(r.Amount)
	}

	totals := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		totals = append(totals, CategoryTotal{Category: category, Amount: sums[category]})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount.GreaterThan(totals[j].Amount)
	})

	if n < len(totals) {
		totals = totals[:n]
	}
	return totals
}

// Summary is the at-a-glance view of a record subsequence: the grand total,
// the current-month total, and the largest category buckets.
type Summary struct {
	Date       Date
	Total      decimal.Decimal
	MonthTotal decimal.Decimal
	Top        []CategoryTotal
}

// NewSummary computes a Summary of the given records as of 'on'.
func NewSummary(records []Record, on Date) *Summary {
	return &Summary{
		Date:       on,
		Total:      Total(records),
		MonthTotal: MonthTotal(records, on),
		Top:        TopCategories(records, TopCategoryCount),
	}
}
