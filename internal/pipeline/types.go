package pipeline

import "fmt"

// LocaleStatus tracks progress for one target locale.
type LocaleStatus struct {
	Locale  string
	Stage   string
	Total   int
	Done    int
	Written int
	Skipped int
	Errors  int
}

// BookError wraps a failure inside one book so callers can keep the
// run going: a single broken book must not abort the other books or
// locales.
type BookError struct {
	Book string
	Err  error
}

func (e *BookError) Error() string { return fmt.Sprintf("book %s: %v", e.Book, e.Err) }

func (e *BookError) Unwrap() error { return e.Err }
