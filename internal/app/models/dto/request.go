package dto

// ListStudentsQuery holds the directory listing filters
type ListStudentsQuery struct {
	Search     string `form:"search"`
	Department string `form:"department"`
	Year       string `form:"year"`
	Interest   string `form:"interest"`
}

// SuggestionsQuery holds the search box text
type SuggestionsQuery struct {
	Q string `form:"q"`
}
