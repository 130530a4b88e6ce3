package domain

// Page is one screen of a user's word list
type Page struct {
	Words      []Word
	Number     int // 0-based
	Size       int
	TotalWords int
}

// TotalPages returns the number of pages, at least 1
func (p Page) TotalPages() int {
	return TotalPages(p.TotalWords, p.Size)
}

// Offset returns the index of the first word on the page
func (p Page) Offset() int {
	return p.Number * p.Size
}

// HasPrev reports whether a previous page exists
func (p Page) HasPrev() bool {
	return p.Number > 0
}

// HasNext reports whether a next page exists
func (p Page) HasNext() bool {
	return p.Number < p.TotalPages()-1
}

// TotalPages returns how many pages of the given size hold total items.
// An empty list still has one (empty) page.
func TotalPages(total, size int) int {
	if size <= 0 {
		return 1
	}
	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	return pages
}

// ClampPage keeps page within [0, lastPage]
func ClampPage(page, total, size int) int {
	if page < 0 {
		return 0
	}
	if last := TotalPages(total, size) - 1; page > last {
		return last
	}
	return page
}
