package dtos

// Summary holds the counters of the reports page.
type Summary struct {
	TotalReaders int64 `json:"totalReaders"`
	OpenLoans    int64 `json:"openLoans"`
}
