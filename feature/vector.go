package feature

import (
	"errors"
	"fmt"
	"math"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/viterin/vek"
)

// Sentinel errors for vector and matrix operations.
var (
	// ErrDimMismatch indicates two vectors of different dimensionality.
	ErrDimMismatch = errors.New("feature: dimensionality mismatch")

	// ErrEmptyMatrix indicates an export requested from a rowless matrix.
	ErrEmptyMatrix = errors.New("feature: empty matrix")
)

// MaxBits bounds the log2 dimensionality so indices fit a uint64 mask.
const MaxBits = 63

// Entry is one nonzero vector component.
type Entry struct {
	Index uint64
	Value float64
}

// Vector is a sparse feature vector over the index space [0, 2^bits).
// Nonzero entries live in an ordered red-black tree, so all iteration is
// index-ascending and deterministic. Not safe for concurrent mutation;
// the vectorizer builds each vector on a single goroutine.
type Vector struct {
	bits uint
	tree *redblacktree.Tree
}

// NewVector returns an all-zero vector of length 2^bits.
// Panics if bits is outside [1, MaxBits]: an invalid dimensionality is a
// programmer error, caught before any accumulation starts.
func NewVector(bits uint) *Vector {
	if bits < 1 || bits > MaxBits {
		panic(fmt.Sprintf("feature.NewVector: bits must be in [1,%d], got %d", MaxBits, bits))
	}
	return &Vector{bits: bits, tree: redblacktree.NewWith(utils.UInt64Comparator)}
}

// Bits returns the configured log2 dimensionality.
func (v *Vector) Bits() uint { return v.bits }

// Len returns the vector's dimensionality, 2^bits.
func (v *Vector) Len() uint64 { return 1 << v.bits }

// NNZ returns the number of nonzero entries.
func (v *Vector) NNZ() int { return v.tree.Size() }

// Add accumulates w at index idx, summing on repeat: index collisions
// are accepted fold noise. Panics if idx is out of range: callers fold
// hashes into range before accumulating.
// Complexity: O(log NNZ)
func (v *Vector) Add(idx uint64, w float64) {
	if idx >= v.Len() {
		panic(fmt.Sprintf("feature.Vector.Add: index %d out of range [0,%d)", idx, v.Len()))
	}
	if cur, found := v.tree.Get(idx); found {
		w += cur.(float64)
	}
	v.tree.Put(idx, w)
}

// Get returns the component at idx (zero when absent or out of range).
// Complexity: O(log NNZ)
func (v *Vector) Get(idx uint64) float64 {
	if cur, found := v.tree.Get(idx); found {
		return cur.(float64)
	}
	return 0
}

// Entries returns all nonzero components in ascending index order.
// Complexity: O(NNZ)
func (v *Vector) Entries() []Entry {
	out := make([]Entry, 0, v.tree.Size())
	it := v.tree.Iterator()
	for it.Next() {
		out = append(out, Entry{Index: it.Key().(uint64), Value: it.Value().(float64)})
	}
	return out
}

// values returns the nonzero components (ascending index order) as a
// plain slice for SIMD kernels, plus the matching keys.
func (v *Vector) values() ([]uint64, []float64) {
	keys := make([]uint64, 0, v.tree.Size())
	vals := make([]float64, 0, v.tree.Size())
	it := v.tree.Iterator()
	for it.Next() {
		keys = append(keys, it.Key().(uint64))
		vals = append(vals, it.Value().(float64))
	}
	return keys, vals
}

// Norm returns the Euclidean (L2) norm.
// Complexity: O(NNZ)
func (v *Vector) Norm() float64 {
	if v.tree.Size() == 0 {
		return 0
	}
	_, vals := v.values()
	return math.Sqrt(vek.Dot(vals, vals))
}

// Normalize scales the vector in place to unit L2 norm. A zero vector is
// returned unchanged: zero stays zero, never an error. Returns the
// receiver for chaining.
// Complexity: O(NNZ log NNZ)
func (v *Vector) Normalize() *Vector {
	keys, vals := v.values()
	if len(vals) == 0 {
		return v
	}
	norm := math.Sqrt(vek.Dot(vals, vals))
	if norm == 0 {
		return v
	}
	vek.DivNumber_Inplace(vals, norm)
	for i, k := range keys {
		v.tree.Put(k, vals[i])
	}
	return v
}

// Dot returns the inner product of two equal-dimension vectors.
// Complexity: O(NNZ_a + NNZ_b)
func (v *Vector) Dot(other *Vector) (float64, error) {
	if other == nil || other.bits != v.bits {
		return 0, fmt.Errorf("%w: %d vs %d bits", ErrDimMismatch, v.bits, otherBits(other))
	}
	a, b := v.Entries(), other.Entries()
	var sum float64
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i].Index < b[j].Index:
			i++
		case a[i].Index > b[j].Index:
			j++
		default:
			sum += a[i].Value * b[j].Value
			i++
			j++
		}
	}
	return sum, nil
}

// Cosine returns the cosine similarity of two equal-dimension vectors;
// zero if either vector has zero norm.
// Complexity: O(NNZ_a + NNZ_b)
func (v *Vector) Cosine(other *Vector) (float64, error) {
	dot, err := v.Dot(other)
	if err != nil {
		return 0, err
	}
	na, nb := v.Norm(), other.Norm()
	if na == 0 || nb == 0 {
		return 0, nil
	}
	return dot / (na * nb), nil
}

// Equal reports exact equality of dimensionality and all components.
// Complexity: O(NNZ)
func (v *Vector) Equal(other *Vector) bool {
	if other == nil || other.bits != v.bits || other.NNZ() != v.NNZ() {
		return false
	}
	a, b := v.Entries(), other.Entries()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
// Complexity: O(NNZ log NNZ)
func (v *Vector) Clone() *Vector {
	out := NewVector(v.bits)
	it := v.tree.Iterator()
	for it.Next() {
		out.tree.Put(it.Key(), it.Value())
	}
	return out
}

// Dense materializes the full 2^bits-length array. Intended for small
// bitsizes; a bitsize of 20 allocates 8 MiB per call.
// Complexity: O(2^bits)
func (v *Vector) Dense() []float64 {
	out := make([]float64, v.Len())
	it := v.tree.Iterator()
	for it.Next() {
		out[it.Key().(uint64)] = it.Value().(float64)
	}
	return out
}

// otherBits reports a vector's bits for error text, tolerating nil.
func otherBits(v *Vector) uint {
	if v == nil {
		return 0
	}
	return v.bits
}
