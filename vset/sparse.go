// Package vset: sparse sorted-slice backend.
package vset

import (
	"encoding/binary"
	"sort"
)

// Sparse is the fallback vertex-set backend: a sorted, duplicate-free
// slice of indices. It removes the 128-vertex bound of Bits128 at the
// cost of linear-merge set operations. The zero value is the empty set.
type Sparse struct {
	ix []int
}

// Compile-time assertion: *Sparse implements the Set contract.
var _ Set = (*Sparse)(nil)

// NewSparse builds a sparse set from the given indices.
// Complexity: O(n²) worst case, one sorted Insert per index.
func NewSparse(indices ...int) *Sparse {
	s := &Sparse{}
	for _, v := range indices {
		s.Insert(v)
	}
	return s
}

// asSparse unwraps other or panics on a backend mismatch.
func asSparse(other Set) *Sparse {
	sp, ok := other.(*Sparse)
	if !ok {
		panic("vset: mixed set backends in one operation")
	}
	return sp
}

// Insert adds v, keeping the slice sorted and duplicate-free.
// Complexity: O(log n) search + O(n) shift.
func (s *Sparse) Insert(v int) {
	i := sort.SearchInts(s.ix, v)
	if i < len(s.ix) && s.ix[i] == v {
		return
	}
	s.ix = append(s.ix, 0)
	copy(s.ix[i+1:], s.ix[i:])
	s.ix[i] = v
}

// Len returns the element count. Complexity: O(1).
func (s *Sparse) Len() int { return len(s.ix) }

// IsEmpty reports whether the set has no elements. Complexity: O(1).
func (s *Sparse) IsEmpty() bool { return len(s.ix) == 0 }

// Contains reports membership of v. Complexity: O(log n).
func (s *Sparse) Contains(v int) bool {
	i := sort.SearchInts(s.ix, v)
	return i < len(s.ix) && s.ix[i] == v
}

// Union merges other into the receiver. Complexity: O(n + m).
func (s *Sparse) Union(other Set) {
	o := asSparse(other)
	if len(o.ix) == 0 {
		return
	}
	merged := make([]int, 0, len(s.ix)+len(o.ix))
	i, j := 0, 0
	for i < len(s.ix) && j < len(o.ix) {
		switch {
		case s.ix[i] < o.ix[j]:
			merged = append(merged, s.ix[i])
			i++
		case s.ix[i] > o.ix[j]:
			merged = append(merged, o.ix[j])
			j++
		default:
			merged = append(merged, s.ix[i])
			i++
			j++
		}
	}
	merged = append(merged, s.ix[i:]...)
	merged = append(merged, o.ix[j:]...)
	s.ix = merged
}

// Minus returns the set difference as a new set. Complexity: O(n + m).
func (s *Sparse) Minus(other Set) Set {
	o := asSparse(other)
	out := make([]int, 0, len(s.ix))
	i, j := 0, 0
	for i < len(s.ix) {
		for j < len(o.ix) && o.ix[j] < s.ix[i] {
			j++
		}
		if j < len(o.ix) && o.ix[j] == s.ix[i] {
			i++
			continue
		}
		out = append(out, s.ix[i])
		i++
	}
	return &Sparse{ix: out}
}

// IsSubset reports receiver ⊆ other via a linear merge walk.
// Complexity: O(n + m).
func (s *Sparse) IsSubset(other Set) bool {
	o := asSparse(other)
	j := 0
	for _, v := range s.ix {
		for j < len(o.ix) && o.ix[j] < v {
			j++
		}
		if j >= len(o.ix) || o.ix[j] != v {
			return false
		}
		j++
	}
	return true
}

// Intersects reports a common element via a linear merge walk.
// Complexity: O(n + m).
func (s *Sparse) Intersects(other Set) bool {
	o := asSparse(other)
	i, j := 0, 0
	for i < len(s.ix) && j < len(o.ix) {
		switch {
		case s.ix[i] < o.ix[j]:
			i++
		case s.ix[i] > o.ix[j]:
			j++
		default:
			return true
		}
	}
	return false
}

// Each calls fn for every element in ascending order.
// Complexity: O(n).
func (s *Sparse) Each(fn func(v int) bool) {
	for _, v := range s.ix {
		if !fn(v) {
			return
		}
	}
}

// Values returns a copy of the elements in ascending order.
// Complexity: O(n).
func (s *Sparse) Values() []int {
	out := make([]int, len(s.ix))
	copy(out, s.ix)
	return out
}

// Pop removes and returns the largest element. Complexity: O(1).
func (s *Sparse) Pop() (int, bool) {
	if len(s.ix) == 0 {
		return 0, false
	}
	v := s.ix[len(s.ix)-1]
	s.ix = s.ix[:len(s.ix)-1]
	return v, true
}

// Clone returns an independent copy. Complexity: O(n).
func (s *Sparse) Clone() Set {
	return &Sparse{ix: append([]int(nil), s.ix...)}
}

// Empty returns a fresh empty sparse set. Complexity: O(1).
func (s *Sparse) Empty() Set { return &Sparse{} }

// Equal reports element-wise equality. Complexity: O(n).
func (s *Sparse) Equal(other Set) bool {
	o := asSparse(other)
	if len(s.ix) != len(o.ix) {
		return false
	}
	for i, v := range s.ix {
		if o.ix[i] != v {
			return false
		}
	}
	return true
}

// ApplyNodeMap relabels through perm (perm[new] = old). New indices are
// emitted in ascending order, so the result stays sorted without a
// second pass. Complexity: O(len(perm) · log n).
func (s *Sparse) ApplyNodeMap(perm []int) {
	out := make([]int, 0, len(s.ix))
	for newIdx, oldIdx := range perm {
		if s.Contains(oldIdx) {
			out = append(out, newIdx)
		}
	}
	s.ix = out
}

// IsFlattened reports whether the set is exactly {0, …, k-1}.
// A sorted duplicate-free slice is flattened iff its last element is
// len-1. Complexity: O(1).
func (s *Sparse) IsFlattened() bool {
	return len(s.ix) == 0 || s.ix[len(s.ix)-1] == len(s.ix)-1
}

// Partition collects the elements falling in each block.
// Complexity: O(n + len(blocks) · log n).
func (s *Sparse) Partition(blocks []Range) []Set {
	out := make([]Set, 0, len(blocks))
	for _, b := range blocks {
		lo := sort.SearchInts(s.ix, b.Start)
		hi := sort.SearchInts(s.ix, b.End)
		part := make([]int, hi-lo)
		copy(part, s.ix[lo:hi])
		out = append(out, &Sparse{ix: part})
	}
	return out
}

// AppendKey appends a length-prefixed big-endian encoding of the
// elements. Complexity: O(n).
func (s *Sparse) AppendKey(dst []byte) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(len(s.ix)))
	dst = append(dst, buf[:]...)
	for _, v := range s.ix {
		binary.BigEndian.PutUint64(buf[:], uint64(v))
		dst = append(dst, buf[:]...)
	}
	return dst
}
