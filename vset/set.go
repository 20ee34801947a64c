// Package vset: the Set contract shared by the dense and sparse backends.
//
// This file declares Range and the Set interface. Implementations live
// in bits128.go and sparse.go.
package vset

// Range is a half-open block [Start, End) of vertex or edge indices.
// The hypergraph package uses ordered, contiguous Ranges to describe
// structural partitions.
type Range struct {
	// Start is the first index in the block.
	Start int
	// End is one past the last index in the block.
	End int
}

// Len returns the number of indices covered by the block.
// Complexity: O(1).
func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether v lies inside the block.
// Complexity: O(1).
func (r Range) Contains(v int) bool { return r.Start <= v && v < r.End }

// Set is the vertex-set contract. Both backends implement it with
// pointer receivers; mutating methods change the receiver in place,
// and the remaining methods leave it untouched.
//
// Cross-backend calls (a Bits128 receiver with a Sparse argument, or
// vice versa) violate an internal invariant and panic.
type Set interface {
	// Insert adds v to the set. Inserting a present value is a no-op.
	Insert(v int)

	// Len returns the number of elements (popcount for Bits128).
	Len() int

	// IsEmpty reports whether the set has no elements.
	IsEmpty() bool

	// Contains reports whether v is a member.
	Contains(v int) bool

	// Union adds every element of other to the receiver.
	Union(other Set)

	// Minus returns a new set holding the receiver's elements that are
	// not in other. The receiver is unchanged.
	Minus(other Set) Set

	// IsSubset reports whether every element of the receiver is in other.
	IsSubset(other Set) bool

	// Intersects reports whether the receiver and other share an element.
	Intersects(other Set) bool

	// Each calls fn for every element in ascending order until fn
	// returns false or the elements are exhausted.
	Each(fn func(v int) bool)

	// Values returns the elements in ascending order.
	Values() []int

	// Pop removes and returns the largest element.
	// The second result is false when the set is empty.
	Pop() (int, bool)

	// Clone returns an independent copy of the set.
	Clone() Set

	// Empty returns a fresh empty set of the same backend.
	Empty() Set

	// Equal reports whether the receiver and other hold the same elements.
	Equal(other Set) bool

	// ApplyNodeMap relabels the set through perm, where perm[new] = old:
	// the result contains new exactly when the receiver contained
	// perm[new]. Elements whose old index does not appear in perm are
	// dropped.
	ApplyNodeMap(perm []int)

	// IsFlattened reports whether the set is exactly {0, 1, …, k-1}.
	IsFlattened() bool

	// Partition splits the set along the given disjoint index blocks,
	// returning one (possibly empty) set per block.
	Partition(blocks []Range) []Set

	// AppendKey appends a self-delimiting, order-deterministic byte
	// encoding of the set to dst and returns the extended slice. Equal
	// sets of the same backend produce identical encodings.
	AppendKey(dst []byte) []byte
}
