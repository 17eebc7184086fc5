// Package nodeidx defines NodeIdx, the opaque identifier by which every
// dynamic-forest implementation in this module addresses a node.
//
// NodeIdx is deliberately not a bare int: wrapping it lets every package
// reject an accidentally-raw array index at compile time, the same role
// core.Vertex.ID plays for graph vertices.
package nodeidx

import "fmt"

// NodeIdx identifies a node in a dynamic forest. The zero value is a valid
// index (index 0); forests never special-case it.
type NodeIdx struct {
	raw int
}

// New converts idx into a NodeIdx. Use with care: it bypasses any bounds
// checking a particular forest implementation performs on construction.
func New(idx int) NodeIdx {
	if idx < 0 {
		panic(fmt.Sprintf("nodeidx: negative index %d", idx))
	}
	return NodeIdx{raw: idx}
}

// Index converts this NodeIdx back into a plain int, e.g. for slice indexing.
func (v NodeIdx) Index() int { return v.raw }

// String renders the underlying index.
func (v NodeIdx) String() string { return fmt.Sprintf("%d", v.raw) }

// Less provides a total order over NodeIdx, used wherever deterministic
// iteration (sorted edge lists, sorted LCA ancestor sets) is required.
func Less(a, b NodeIdx) bool { return a.raw < b.raw }

// NodeIdx2 is an unordered pair of nodes, used to represent an edge
// endpoint-pair wherever a dynamic forest reports edges to its caller.
type NodeIdx2 struct {
	A, B NodeIdx
}

// packedNone is the sentinel raw value used by the space-efficient encoding
// to mean "no node" without a separate boolean/pointer.
const packedNone = -1

// Packed is a space-efficient optional-NodeIdx encoding: it reserves one
// raw value as "none" instead of wrapping every optional NodeIdx in a
// separate validity flag. It is a standalone type; no forest constructor in
// this module selects it, and the forests store optional indices with a
// validity flag. It mirrors the Rust
// space_efficient_nodes feature, which packs the "no node" niche into the
// same machine word as the index instead of an Option<NodeIdx>.
type Packed struct {
	raw int
}

// NoPacked is the packed "no node" sentinel.
var NoPacked = Packed{raw: packedNone}

// NewPacked converts idx into a Packed NodeIdx. Panics if idx is the
// reserved sentinel value, mirroring the Rust implementation's panic when
// usize::MAX is used with space_efficient_nodes enabled.
func NewPacked(idx int) Packed {
	if idx == packedNone {
		panic(fmt.Sprintf("nodeidx: index %d is reserved as the none sentinel", idx))
	}
	return Packed{raw: idx}
}

// Valid reports whether p holds a real node index (as opposed to NoPacked).
func (p Packed) Valid() bool { return p.raw != packedNone }

// Index converts this Packed NodeIdx back into a plain int. Panics if p is
// NoPacked.
func (p Packed) Index() int {
	if !p.Valid() {
		panic("nodeidx: Index() called on NoPacked")
	}
	return p.raw
}

// ToNodeIdx converts a valid Packed value into a plain NodeIdx.
func (p Packed) ToNodeIdx() NodeIdx { return New(p.Index()) }

// PackedOf wraps a plain NodeIdx as a (necessarily valid) Packed value.
func PackedOf(v NodeIdx) Packed { return Packed{raw: v.raw} }
