package log

import (
	"bytes"
	"slices"
	"sync"
)

const defaultTailSize = 64

// Tail is an [io.Writer] that keeps the last N complete lines written to it.
//
// Writers may split a line across calls; a line is recorded once its line
// break arrives. Safe for concurrent use.
//
// Create instances with [NewTail].
type Tail struct {
	updated chan struct{}
	lines   []string
	partial []byte
	size    int
	mu      sync.Mutex
}

// NewTail creates a [Tail] holding up to n lines. Values less than 1 use the
// default of 64.
func NewTail(n int) *Tail {
	if n < 1 {
		n = defaultTailSize
	}

	return &Tail{
		size:    n,
		updated: make(chan struct{}, 1),
	}
}

// Write records every complete line in b. It always returns len(b), nil.
func (t *Tail) Write(b []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.partial = append(t.partial, b...)

	added := false

	for {
		i := bytes.IndexByte(t.partial, '\n')
		if i < 0 {
			break
		}

		line := string(bytes.TrimRight(t.partial[:i], "\r"))
		t.partial = t.partial[i+1:]

		t.lines = append(t.lines, line)
		added = true
	}

	if over := len(t.lines) - t.size; over > 0 {
		t.lines = slices.Delete(t.lines, 0, over)
	}

	if added {
		select {
		case t.updated <- struct{}{}:
		default:
		}
	}

	return len(b), nil
}

// Lines returns a copy of the recorded lines, oldest first.
func (t *Tail) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return slices.Clone(t.lines)
}

// Last returns the most recent line, or "".
func (t *Tail) Last() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.lines) == 0 {
		return ""
	}

	return t.lines[len(t.lines)-1]
}

// Updated delivers a value after new lines were recorded. Notifications are
// coalesced: several writes between reads produce one value.
func (t *Tail) Updated() <-chan struct{} {
	return t.updated
}
