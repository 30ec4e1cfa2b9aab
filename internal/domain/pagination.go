package domain

type SearchFilters struct {
	Keyword string `validate:"max=100"`
	Page    int    `validate:"min=1,max=500"`
}
