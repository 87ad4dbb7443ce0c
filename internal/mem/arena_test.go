package mem

import (
	"errors"
	"reflect"
	"testing"
	"unsafe"
)

type block [4]uint64

func TestArenaCapacityBoundary(t *testing.T) {
	const size = int(unsafe.Sizeof(block{}))
	tests := []struct {
		name     string
		capacity int
		wantOK   int
	}{
		{"exact fit", 3 * size, 3},
		{"slack", 3*size + size/2, 3},
		{"too small", size - 1, 0},
		{"empty", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena(tt.capacity)
			for i := 0; i < tt.wantOK; i++ {
				if p := Make(a, block{uint64(i)}); p == nil {
					t.Fatalf("allocation %d failed with %d/%d bytes used", i, a.Used(), a.Capacity())
				}
			}
			if p := Make(a, block{}); p != nil {
				t.Errorf("allocation %d succeeded past capacity %d", tt.wantOK, tt.capacity)
			}
			if a.Used() != tt.wantOK*size {
				t.Errorf("Used() = %d, want %d", a.Used(), tt.wantOK*size)
			}
		})
	}
}

func TestArenaResetRestoresOffset(t *testing.T) {
	const size = int(unsafe.Sizeof(block{}))
	a := NewArena(2 * size)
	first := Make(a, block{1})
	Make(a, block{2})
	if Make(a, block{3}) != nil {
		t.Fatal("expected arena to be exhausted")
	}
	gen := a.Generation()

	if err := a.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if a.Used() != 0 {
		t.Errorf("Used() after reset = %d, want 0", a.Used())
	}
	if a.Generation() == gen {
		t.Error("generation did not change on reset")
	}
	again := Make(a, block{9})
	if again == nil {
		t.Fatal("allocation after reset failed")
	}
	if again != first {
		t.Error("first allocation after reset should reuse the start of the region")
	}
	if a.Used() != size {
		t.Errorf("Used() = %d, want %d", a.Used(), size)
	}
}

func TestArenaAlignment(t *testing.T) {
	a := NewArena(64)
	if Make(a, byte(1)) == nil {
		t.Fatal("byte allocation failed")
	}
	if Make(a, uint64(2)) == nil {
		t.Fatal("uint64 allocation failed")
	}
	if a.Used() != 16 {
		t.Errorf("Used() = %d, want 16 (1 byte padded to 8, plus 8)", a.Used())
	}
}

func TestArenaKeepsPointerValues(t *testing.T) {
	type named struct {
		name string
	}
	a := NewArena(256)
	p := Make(a, named{name: "retained"})
	if p == nil || p.name != "retained" {
		t.Fatalf("Make = %+v", p)
	}
	if err := a.Reset(); err != nil {
		t.Fatal(err)
	}
	if p.name != "" {
		t.Error("reset should clear slab contents")
	}
}

func TestArenaScope(t *testing.T) {
	a := NewArena(128)
	Make(a, uint64(1))

	ran := false
	err := a.Scope(func(inner *Arena) {
		ran = true
		if inner.Used() != 0 {
			t.Errorf("scope should start from a reset arena, used=%d", inner.Used())
		}
		Make(inner, uint64(2))
		if err := inner.Reset(); !errors.Is(err, ErrArenaInUse) {
			t.Errorf("Reset inside scope = %v, want ErrArenaInUse", err)
		}
		if err := inner.Scope(func(*Arena) {}); !errors.Is(err, ErrArenaInUse) {
			t.Errorf("nested Scope = %v, want ErrArenaInUse", err)
		}
		if inner.Used() == 0 {
			t.Error("failed reset must not release allocations")
		}
	})
	if err != nil {
		t.Fatalf("Scope: %v", err)
	}
	if !ran {
		t.Fatal("scope function did not run")
	}
	if a.Used() != 0 {
		t.Errorf("Used() after scope = %d, want 0", a.Used())
	}
}

func TestNilArena(t *testing.T) {
	if New[int](nil) != nil {
		t.Error("nil arena must not allocate")
	}
}

// reserved reports how many values of T fit in already allocated storage.
func reserved[T any](a *Arena) int {
	var t *T
	if s, ok := a.slabs[reflect.TypeOf(t).Elem()]; ok {
		ts := s.(*typedSlab[T])
		return len(ts.chunks) * ts.per
	}
	return 0
}

func TestArenaFirstAllocationIsBounded(t *testing.T) {
	const size = int(unsafe.Sizeof(block{}))
	a := NewArena(1 << 20)
	Make(a, block{1})
	Make(a, uint64(2))

	if got := reserved[block](a); got*size > slabBytes {
		t.Errorf("first allocation backed %d bytes, want at most %d", got*size, slabBytes)
	}
	if got := reserved[uint64](a); got*8 > slabBytes {
		t.Errorf("uint64 slab backs %d bytes", got*8)
	}
}

func TestArenaPointersSurviveSlabGrowth(t *testing.T) {
	const size = int(unsafe.Sizeof(block{}))
	n := 3*slabBytes/size + 1
	a := NewArena(n * size)
	ptrs := make([]*block, 0, n)
	for i := 0; i < n; i++ {
		p := Make(a, block{uint64(i)})
		if p == nil {
			t.Fatalf("allocation %d failed", i)
		}
		ptrs = append(ptrs, p)
	}
	for i, p := range ptrs {
		if p[0] != uint64(i) {
			t.Fatalf("value %d = %d after slab growth", i, p[0])
		}
	}
}

func TestReserveKeepsAllocationsOffHeap(t *testing.T) {
	a := NewArena(4096)
	Reserve[block](a, 8)
	if got := reserved[block](a); got < 8 {
		t.Fatalf("reserved %d blocks, want at least 8", got)
	}

	allocs := testing.AllocsPerRun(10, func() {
		_ = a.Reset()
		for i := 0; i < 8; i++ {
			if Make(a, block{uint64(i)}) == nil {
				t.Fatal("reserved allocation failed")
			}
		}
	})
	if allocs != 0 {
		t.Errorf("allocations after Reserve = %v, want 0", allocs)
	}
	if a.Used() != 8*int(unsafe.Sizeof(block{})) {
		t.Errorf("Used() = %d after eight allocations", a.Used())
	}
}

func TestReserveCappedByCapacity(t *testing.T) {
	const size = int(unsafe.Sizeof(block{}))
	a := NewArena(2 * size)
	Reserve[block](a, 100)
	if got := reserved[block](a); got != 2 {
		t.Errorf("reserved %d blocks in a 2-block arena", got)
	}
	Reserve[block](nil, 4)
}
