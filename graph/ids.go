package graph

import (
	"sync/atomic"
	"unsafe"
)

// ID is the node identifier constraint. Every container and algorithm in
// this module is polymorphic over ID; no algorithm embeds a specific width.
//
// Only 32- and 64-bit integer types are admitted because every ID must have
// an atomic counterpart of identical size and alignment, and sync/atomic
// provides no 8- or 16-bit operations.
type ID interface {
	~int32 | ~int64 | ~uint32 | ~uint64 | ~int | ~uint
}

// The atomic free functions below operate directly on cells of a plain
// []NI. They dispatch on unsafe.Sizeof(NI) to the matching sync/atomic
// primitive; the size is a compile-time constant per instantiation, so the
// branch folds away. Operating on plain slices keeps the dual nature of the
// hot arrays: written through atomics during a parallel phase, then read as
// ordinary values after the join, without a copy in between.

// LoadID atomically loads the cell p points to.
func LoadID[NI ID](p *NI) NI {
	if unsafe.Sizeof(*p) == 4 {
		return NI(atomic.LoadUint32((*uint32)(unsafe.Pointer(p))))
	}

	return NI(atomic.LoadUint64((*uint64)(unsafe.Pointer(p))))
}

// StoreID atomically stores v into the cell p points to.
func StoreID[NI ID](p *NI, v NI) {
	if unsafe.Sizeof(*p) == 4 {
		atomic.StoreUint32((*uint32)(unsafe.Pointer(p)), uint32(v))
		return
	}
	atomic.StoreUint64((*uint64)(unsafe.Pointer(p)), uint64(v))
}

// AddID atomically adds delta to the cell p points to and returns the
// previous value, i.e. fetch-and-add semantics.
func AddID[NI ID](p *NI, delta NI) NI {
	if unsafe.Sizeof(*p) == 4 {
		d := uint32(delta)
		return NI(atomic.AddUint32((*uint32)(unsafe.Pointer(p)), d) - d)
	}
	d := uint64(delta)

	return NI(atomic.AddUint64((*uint64)(unsafe.Pointer(p)), d) - d)
}

// GetAndIncrementID atomically increments the cell p points to and returns
// the previous value. This is the slot-claim primitive of the CSR scatter
// phase.
func GetAndIncrementID[NI ID](p *NI) NI {
	return AddID(p, NI(1))
}

// CompareAndSwapID atomically replaces the cell value old with new and
// reports whether the swap happened.
func CompareAndSwapID[NI ID](p *NI, old, new NI) bool {
	if unsafe.Sizeof(*p) == 4 {
		return atomic.CompareAndSwapUint32((*uint32)(unsafe.Pointer(p)), uint32(old), uint32(new))
	}

	return atomic.CompareAndSwapUint64((*uint64)(unsafe.Pointer(p)), uint64(old), uint64(new))
}

// maxID returns the larger of two ids.
func maxID[NI ID](a, b NI) NI {
	if a > b {
		return a
	}

	return b
}
