package spend

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the ledger's interchange
// form, e.g. "$[0].amount" or "$[*].category". It is a read-only
// inspection tool: the ledger is round-tripped through its JSON form so
// the expression sees exactly what an export would contain.
func Query(l *Ledger, path string) (any, error) {
	data, err := EncodeLedger(l)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot prepare ledger for query: %w", err)
	}
	value, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return value, nil
}
