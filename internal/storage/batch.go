package storage

import (
	"log/slog"
	"sync"
)

// DefaultBatchSize is how many pending pages a writer holds before
// flushing to disk.
const DefaultBatchSize = 64

type pending struct {
	path     string
	content  []byte
	ifAbsent bool
}

// BatchWriter buffers page writes for one locale and flushes them in
// batches. A failed write is logged and counted, never fatal: one bad
// page must not sink the rest of the batch. Safe for concurrent use
// within a locale.
type BatchWriter struct {
	fs     *FSStorage
	logger *slog.Logger
	size   int

	mu      sync.Mutex
	queue   []pending
	written int
	skipped int
	failed  int
}

func NewBatchWriter(fs *FSStorage, size int, logger *slog.Logger) *BatchWriter {
	if size <= 0 {
		size = DefaultBatchSize
	}
	return &BatchWriter{fs: fs, logger: logger, size: size}
}

// Enqueue schedules an unconditional page write.
func (w *BatchWriter) Enqueue(destPath string, content []byte) {
	w.add(pending{path: destPath, content: content})
}

// EnqueueIfAbsent schedules a write that is skipped when the
// destination already exists.
func (w *BatchWriter) EnqueueIfAbsent(destPath string, content []byte) {
	w.add(pending{path: destPath, content: content, ifAbsent: true})
}

func (w *BatchWriter) add(p pending) {
	w.mu.Lock()
	w.queue = append(w.queue, p)
	full := len(w.queue) >= w.size
	var batch []pending
	if full {
		batch = w.queue
		w.queue = nil
	}
	w.mu.Unlock()
	if full {
		w.drain(batch)
	}
}

// Flush writes everything still queued. Calling it again with an
// empty queue is a no-op, so deferred and explicit flushes compose.
func (w *BatchWriter) Flush() {
	w.mu.Lock()
	batch := w.queue
	w.queue = nil
	w.mu.Unlock()
	w.drain(batch)
}

func (w *BatchWriter) drain(batch []pending) {
	for _, p := range batch {
		var err error
		wrote := true
		if p.ifAbsent {
			wrote, err = w.fs.WritePageIfAbsent(p.path, p.content)
		} else {
			err = w.fs.WritePage(p.path, p.content)
		}
		w.mu.Lock()
		switch {
		case err != nil:
			w.failed++
			w.mu.Unlock()
			w.logger.Warn("page write failed", "path", p.path, "error", err)
			continue
		case !wrote:
			w.skipped++
		default:
			w.written++
		}
		w.mu.Unlock()
	}
}

// Stats reports written, skipped and failed page counts so far.
func (w *BatchWriter) Stats() (written, skipped, failed int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written, w.skipped, w.failed
}
