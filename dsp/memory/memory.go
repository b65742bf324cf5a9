// Package memory provides a byte-accounted, fallible allocation arena for
// transform working buffers.
//
// Transforms in this module draw every working buffer from an [Arena] so that
// allocation failure is an explicit, recoverable error and so that net
// outstanding bytes can be audited after each call. New returns an unlimited
// arena; WithLimit imposes a byte budget and WithFailAfter forces failure at a
// chosen acquisition, which tests use to exercise cleanup paths.
package memory

import (
	"errors"
	"sync"
)

// ErrOutOfMemory is returned when an acquisition would exceed the arena
// budget or when a forced failure is injected.
var ErrOutOfMemory = errors.New("memory: out of memory")

const (
	floatBytes   = 8
	complexBytes = 16
)

// Arena tracks outstanding working-buffer bytes and enforces an optional
// budget. All methods are safe for concurrent use.
type Arena struct {
	mu        sync.Mutex
	limit     int // maximum outstanding bytes, 0 means unlimited
	inUse     int
	peak      int
	acquires  int
	failAfter int // acquisition index that starts failing, -1 disables
}

// Option mutates an Arena during construction.
type Option func(*Arena)

// WithLimit sets the maximum number of outstanding bytes.
// A limit of 0 means unlimited.
func WithLimit(bytes int) Option {
	return func(a *Arena) {
		if bytes >= 0 {
			a.limit = bytes
		}
	}
}

// WithFailAfter makes the n-th acquisition (counting from 0 and including
// Register calls) and every later one fail with ErrOutOfMemory.
func WithFailAfter(n int) Option {
	return func(a *Arena) {
		a.failAfter = n
	}
}

// New returns an arena, unlimited unless configured otherwise.
func New(opts ...Option) *Arena {
	a := &Arena{failAfter: -1}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

func (a *Arena) acquire(size int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	index := a.acquires
	a.acquires++

	if a.failAfter >= 0 && index >= a.failAfter {
		return ErrOutOfMemory
	}
	if a.limit > 0 && a.inUse+size > a.limit {
		return ErrOutOfMemory
	}

	a.inUse += size
	if a.inUse > a.peak {
		a.peak = a.inUse
	}
	return nil
}

func (a *Arena) release(size int) {
	a.mu.Lock()
	a.inUse -= size
	a.mu.Unlock()
}

// Floats returns a zero-filled []float64 of length n charged to the arena.
func (a *Arena) Floats(n int) ([]float64, error) {
	if n < 0 {
		n = 0
	}
	if err := a.acquire(n * floatBytes); err != nil {
		return nil, err
	}
	return make([]float64, n), nil
}

// FreeFloats returns a buffer obtained from Floats to the arena.
// The caller must not use the buffer after freeing it.
func (a *Arena) FreeFloats(buf []float64) {
	if buf == nil {
		return
	}
	a.release(len(buf) * floatBytes)
}

// Complexes returns a zero-filled []complex128 of length n charged to the arena.
func (a *Arena) Complexes(n int) ([]complex128, error) {
	if n < 0 {
		n = 0
	}
	if err := a.acquire(n * complexBytes); err != nil {
		return nil, err
	}
	return make([]complex128, n), nil
}

// FreeComplexes returns a buffer obtained from Complexes to the arena.
// The caller must not use the buffer after freeing it.
func (a *Arena) FreeComplexes(buf []complex128) {
	if buf == nil {
		return
	}
	a.release(len(buf) * complexBytes)
}

// Register charges the arena for size bytes held by an externally created
// handle, such as an FFT plan. It is subject to the same budget and failure
// injection as direct allocations.
func (a *Arena) Register(size int) error {
	if size < 0 {
		size = 0
	}
	return a.acquire(size)
}

// Unregister returns bytes previously charged via Register.
func (a *Arena) Unregister(size int) {
	if size < 0 {
		size = 0
	}
	a.release(size)
}

// InUse returns the net outstanding bytes.
func (a *Arena) InUse() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inUse
}

// Peak returns the high-water mark of outstanding bytes.
func (a *Arena) Peak() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.peak
}
