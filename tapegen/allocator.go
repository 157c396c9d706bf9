package tapegen

import "fmt"

// Allocator hands out the lowest free slot of a fixed pool.
type Allocator struct {
	used []bool
	// cursor is a free slot, or len(used) when the pool is full
	cursor int
	live   int
}

func NewAllocator(size int) *Allocator {
	if size <= 0 {
		panic(ErrZeroSize)
	}
	return &Allocator{
		used: make([]bool, size),
	}
}

func (a *Allocator) Allocate() int {
	if a.cursor >= len(a.used) {
		panic(fmt.Errorf("%w: all %d slots are in use", ErrOutOfMemory, len(a.used)))
	}
	slot := a.cursor
	a.used[slot] = true
	a.live++
	a.cursor = len(a.used)
	for i := slot + 1; i < len(a.used); i++ {
		if !a.used[i] {
			a.cursor = i
			break
		}
	}
	return slot
}

func (a *Allocator) Deallocate(slot int) {
	if slot < 0 || slot >= len(a.used) || !a.used[slot] {
		panic(fmt.Errorf("%w: %d", ErrDoubleFree, slot))
	}
	a.used[slot] = false
	a.live--
	a.cursor = min(a.cursor, slot)
}

func (a *Allocator) IsAllocated(slot int) bool {
	return slot >= 0 && slot < len(a.used) && a.used[slot]
}

// Live returns the number of allocated slots.
func (a *Allocator) Live() int {
	return a.live
}

func (a *Allocator) Size() int {
	return len(a.used)
}
