package dto

// ImportSummary reports the outcome of a bulk user import. Rows fail
// independently: a duplicate username is counted and processing
// continues with the next row.
type ImportSummary struct {
	Success int `json:"success_count"`
	Failed  int `json:"error_count"`
}
