package dtos

// BookInput carries the editable catalog fields of a book.
type BookInput struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
	Copies int    `json:"copies"`
}

// ImportResult summarizes a catalog import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}
