// Package render projects typed check results back into the generic output
// structure the transport layer serializes. It is a pure structural mapping:
// no recomputation, no reordering.
package render

import (
	"time"

	"precheck/internal/domain"
)

// Output field names. Part of the external contract.
const (
	FieldCheckResultList = "check_result_list"
	FieldCheckLabel      = "check_label"
	FieldCheckResult     = "check_result"
	FieldCheckRunAt      = "check_run_at"
)

// CheckResults renders the ordered result sequence as a generic structure
// with a single check_result_list array. Array order is preserved; object
// key order is a property of the serializer, not of this projection.
func CheckResults(results []domain.CheckResult) map[string]any {
	list := make([]map[string]any, 0, len(results))
	for _, r := range results {
		list = append(list, map[string]any{
			FieldCheckLabel:  r.Label,
			FieldCheckResult: string(r.Outcome),
			FieldCheckRunAt:  r.RanAt.UTC().Format(time.RFC3339),
		})
	}
	return map[string]any{FieldCheckResultList: list}
}
