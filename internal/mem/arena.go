// Package mem provides a fixed-capacity bump arena for values that have to
// outlive the stack frame that created them, such as shapes retained by an
// animation. Nothing is freed individually; Reset reclaims everything.
package mem

import (
	"errors"
	"reflect"
	"unsafe"
)

// ErrArenaInUse is returned when a reset is requested while a Scope is active.
var ErrArenaInUse = errors.New("arena reset while scope is active")

// Arena hands out values from a byte budget of fixed capacity. The offset only
// grows between resets. Storage is kept in typed slabs so that values holding
// Go pointers stay visible to the garbage collector.
type Arena struct {
	capacity   int
	offset     int
	generation uint64
	scoped     bool
	slabs      map[reflect.Type]slab
}

// slabBytes bounds the backing store a typed slab allocates at once.
const slabBytes = 512

type slab interface {
	reset()
}

// typedSlab grows in fixed-length chunks. Chunks are never reallocated, so
// pointers handed out earlier stay valid until the next reset.
type typedSlab[T any] struct {
	chunks [][]T
	per    int
	used   int
}

func (s *typedSlab[T]) reset() {
	for i := 0; i < len(s.chunks) && i*s.per < s.used; i++ {
		clear(s.chunks[i][:min(s.per, s.used-i*s.per)])
	}
	s.used = 0
}

// grow makes sure n items fit without allocating.
func (s *typedSlab[T]) grow(n int) {
	for len(s.chunks)*s.per < n {
		s.chunks = append(s.chunks, make([]T, s.per))
	}
}

func (s *typedSlab[T]) next() *T {
	s.grow(s.used + 1)
	p := &s.chunks[s.used/s.per][s.used%s.per]
	s.used++
	return p
}

func NewArena(capacity int) *Arena {
	return &Arena{
		capacity: max(capacity, 0),
		slabs:    make(map[reflect.Type]slab),
	}
}

func (a *Arena) Capacity() int  { return a.capacity }
func (a *Arena) Used() int      { return a.offset }
func (a *Arena) Available() int { return a.capacity - a.offset }

// Generation changes on every reset. References obtained under one
// generation are invalid under any other.
func (a *Arena) Generation() uint64 { return a.generation }

// Make copies v into the arena and returns a pointer to the copy, or nil if
// the remaining capacity cannot hold it.
func Make[T any](a *Arena, v T) *T {
	ptr := New[T](a)
	if ptr == nil {
		return nil
	}
	*ptr = v
	return ptr
}

// New allocates a zero value of T, or returns nil when the arena is exhausted.
func New[T any](a *Arena) *T {
	if a == nil {
		return nil
	}
	var zero T
	size := max(int(unsafe.Sizeof(zero)), 1)
	off := align(a.offset, int(unsafe.Alignof(zero)))
	if off+size > a.capacity {
		return nil
	}
	ptr := slabFor[T](a, size).next()
	a.offset = off + size
	return ptr
}

// Reserve preallocates backing storage for n values of T, so that the first
// n allocations of T after any reset never touch the heap. n is capped at
// what the capacity could hold.
func Reserve[T any](a *Arena, n int) {
	if a == nil || n <= 0 {
		return
	}
	var zero T
	size := max(int(unsafe.Sizeof(zero)), 1)
	slabFor[T](a, size).grow(min(n, a.capacity/size))
}

func slabFor[T any](a *Arena, size int) *typedSlab[T] {
	// We cannot use TypeOf(*new(T)) when T is an interface type, because that
	// passes a nil interface to TypeOf, which returns nil.
	var t *T
	typ := reflect.TypeOf(t).Elem()
	if s, ok := a.slabs[typ]; ok {
		return s.(*typedSlab[T])
	}
	s := &typedSlab[T]{per: max(min(slabBytes/size, a.capacity/size), 1)}
	a.slabs[typ] = s
	return s
}

// Reset restores the bump offset to zero and clears every slab. All values
// previously returned by the arena become invalid.
func (a *Arena) Reset() error {
	if a.scoped {
		return ErrArenaInUse
	}
	a.reset()
	return nil
}

func (a *Arena) reset() {
	for _, s := range a.slabs {
		s.reset()
	}
	a.offset = 0
	a.generation++
}

// Scope runs fn with a freshly reset arena and resets it again afterwards.
// While fn runs, Reset fails and nested scopes are rejected, so values
// allocated inside fn cannot be invalidated under it.
func (a *Arena) Scope(fn func(a *Arena)) error {
	if a.scoped {
		return ErrArenaInUse
	}
	a.reset()
	a.scoped = true
	defer func() {
		a.scoped = false
		a.reset()
	}()
	fn(a)
	return nil
}

// to has to be a power of two.
func align(v int, to int) int {
	return v + (-v & (to - 1))
}
