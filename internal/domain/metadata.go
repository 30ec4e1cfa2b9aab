package domain

type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	TotalRecords int
}

// Metadata returns the paging information of the envelope.
func (p *CategoryPage) Metadata() *Metadata {
	if p == nil {
		return nil
	}

	return &Metadata{
		CurrentPage:  p.Page,
		FirstPage:    1,
		LastPage:     p.TotalPages,
		TotalRecords: p.TotalResults,
	}
}

func (m *Metadata) HasPrev() bool {
	return m != nil && m.CurrentPage > m.FirstPage
}

func (m *Metadata) HasNext() bool {
	return m != nil && m.CurrentPage < m.LastPage
}
