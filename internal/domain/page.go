package domain

const DefaultPageSize = 10

// Page is a from/size window. Offsets are aligned to whole pages, so
// from=5,size=10 reads the first page.
type Page struct {
	From int
	Size int
}

func NewPage(from, size int) (Page, error) {
	if from < 0 {
		return Page{}, Validation("from must not be negative")
	}
	if size <= 0 {
		return Page{}, Validation("size must be positive")
	}
	return Page{From: from, Size: size}, nil
}

func (p Page) Offset() int {
	if p.Size <= 0 {
		return 0
	}
	return (p.From / p.Size) * p.Size
}

func (p Page) Limit() int {
	if p.Size <= 0 {
		return DefaultPageSize
	}
	return p.Size
}
