package render

// PageLookup maps division numbers to the physical pages recorded for
// one book. A division number can recur across sections, so each
// lookup consumes the next recorded page for that number; once the
// recordings run out the last page keeps being returned. State is
// book-scoped: callers allocate one lookup per book, or Reset between
// books.
type PageLookup struct {
	pages  map[string][]int
	cursor map[string]int
}

func NewPageLookup() *PageLookup {
	return &PageLookup{
		pages:  make(map[string][]int),
		cursor: make(map[string]int),
	}
}

// Record appends a page for a division number, in source order.
func (p *PageLookup) Record(division string, page int) {
	p.pages[division] = append(p.pages[division], page)
}

// Next returns the page for the next occurrence of a division number.
// It reports false only when nothing was ever recorded for it.
func (p *PageLookup) Next(division string) (int, bool) {
	recorded := p.pages[division]
	if len(recorded) == 0 {
		return 0, false
	}
	i := p.cursor[division]
	if i >= len(recorded) {
		i = len(recorded) - 1
	} else {
		p.cursor[division] = i + 1
	}
	return recorded[i], true
}

// Reset rewinds every cursor while keeping the recordings, ready for
// another pass over the same book.
func (p *PageLookup) Reset() {
	p.cursor = make(map[string]int)
}
