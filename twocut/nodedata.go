package twocut

import (
	"fmt"

	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/weight"
)

// PathWeight is implemented by node-data payloads that know the weight of
// the path from the associated node to its parent.
type PathWeight[W any] interface {
	ParentPathWeight() W
}

// Hooks lets a Forest update a node-data payload around structural
// changes, without the structural Tree/Rotator code needing to know
// anything about weights. Each hook is called on the already-performed (or
// about-to-happen) structural state, exactly as Tree.Rotate/Attach/Detach
// leaves or expects it.
type Hooks[D any, W any] interface {
	// BeforeRotation is called immediately before t.Rotate(v), with the
	// pre-rotation structure still intact.
	BeforeRotation(t *Tree[D], v nodeidx.NodeIdx)

	// AfterAttached is called immediately after v has been attached to a
	// new parent with the given edge weight.
	AfterAttached(t *Tree[D], v nodeidx.NodeIdx, w W)

	// BeforeDetached is called immediately before v is detached from its
	// parent.
	BeforeDetached(t *Tree[D], v nodeidx.NodeIdx)
}

// EmptyData is the node-data payload for connectivity-only forests: it
// carries nothing and requires no rotation bookkeeping.
type EmptyData struct{}

// NewEmptyData is the Tree node-data constructor for EmptyData.
func NewEmptyData(nodeidx.NodeIdx) EmptyData { return EmptyData{} }

// ParentPathWeight implements PathWeight[weight.Empty].
func (EmptyData) ParentPathWeight() weight.Empty { return weight.Empty{} }

// String renders the empty payload as the empty string.
func (EmptyData) String() string { return "" }

// EmptyHooks is the (trivial) Hooks implementation for EmptyData.
type EmptyHooks struct{}

// BeforeRotation does nothing: EmptyData carries no weight information.
func (EmptyHooks) BeforeRotation(*Tree[EmptyData], nodeidx.NodeIdx) {}

// AfterAttached does nothing: EmptyData carries no weight information.
func (EmptyHooks) AfterAttached(*Tree[EmptyData], nodeidx.NodeIdx, weight.Empty) {}

// BeforeDetached does nothing: EmptyData carries no weight information.
func (EmptyHooks) BeforeDetached(*Tree[EmptyData], nodeidx.NodeIdx) {}

// MonoidData stores the distance (path weight) to its parent and to the
// adjacent ancestor reachable through its subtree's boundary, both lifted
// into weight.OrInfinity. This is the node-data payload to use when the
// edge-weight type is only known to be a commutative monoid.
type MonoidData[W weight.Monoid[W]] struct {
	pdist weight.OrInfinity[W]
	adist weight.OrInfinity[W]
}

// NewMonoidData is the Tree node-data constructor for MonoidData.
func NewMonoidData[W weight.Monoid[W]](nodeidx.NodeIdx) MonoidData[W] {
	return MonoidData[W]{pdist: weight.Infinite[W](), adist: weight.Infinite[W]()}
}

// ParentPathWeight implements PathWeight[W].
func (d MonoidData[W]) ParentPathWeight() W { return d.pdist.Unwrap() }

// String renders "pdist/adist".
func (d MonoidData[W]) String() string { return fmt.Sprintf("%s/%s", d.pdist, d.adist) }

// MonoidHooks is the Hooks implementation for MonoidData: it works for any
// commutative monoid weight, at the cost of also tracking adist.
type MonoidHooks[W weight.Monoid[W]] struct{}

// BeforeRotation implements Hooks, following the exact pdist/adist
// reassignment used by the reference 2-cut STT rotation.
func (MonoidHooks[W]) BeforeRotation(t *Tree[MonoidData[W]], v nodeidx.NodeIdx) {
	p, _ := t.GetParent(v)

	if c, ok := t.GetDirectSeparatorChild(v); ok {
		cData := t.DataPtr(c)
		cData.pdist, cData.adist = cData.adist, cData.pdist
	}

	oldV := t.Data(v)
	oldP := t.Data(p)

	t.DataPtr(p).pdist = oldV.pdist

	if d, ok := t.GetDirectSeparatorChild(p); ok && d == v {
		// v is between p and gp.
		t.DataPtr(v).pdist = oldV.adist
		t.DataPtr(v).adist = oldV.pdist.Add(oldP.adist)
	} else {
		// p is between v and gp, or gp doesn't exist.
		t.DataPtr(v).pdist = oldV.pdist.Add(oldP.pdist)
		t.DataPtr(p).adist = oldP.pdist
	}
}

// AfterAttached implements Hooks.
func (MonoidHooks[W]) AfterAttached(t *Tree[MonoidData[W]], v nodeidx.NodeIdx, w W) {
	t.DataPtr(v).pdist = weight.Finite(w)
}

// BeforeDetached implements Hooks.
func (MonoidHooks[W]) BeforeDetached(t *Tree[MonoidData[W]], v nodeidx.NodeIdx) {
	t.DataPtr(v).pdist = weight.Infinite[W]()
}

// GroupData stores only the distance to its parent; reconstructing the
// adjacent-ancestor distance the monoid variant tracks separately is done
// via subtraction, which requires a group weight.
type GroupData[W weight.Group[W]] struct {
	pdist weight.OrInfinity[W]
}

// NewGroupData is the Tree node-data constructor for GroupData.
func NewGroupData[W weight.Group[W]](nodeidx.NodeIdx) GroupData[W] {
	return GroupData[W]{pdist: weight.Infinite[W]()}
}

// ParentPathWeight implements PathWeight[W].
func (d GroupData[W]) ParentPathWeight() W { return d.pdist.Unwrap() }

// String renders the pdist value.
func (d GroupData[W]) String() string { return d.pdist.String() }

// GroupHooks is the Hooks implementation for GroupData: cheaper than
// MonoidHooks, but only valid when W forms a group (subtraction is
// meaningful).
type GroupHooks[W weight.Group[W]] struct{}

// BeforeRotation implements Hooks, following the group-weight pdist
// reassignment: every distance not directly attached is recovered by
// subtracting (or adding) the rotated edge's old weight.
func (GroupHooks[W]) BeforeRotation(t *Tree[GroupData[W]], v nodeidx.NodeIdx) {
	p, _ := t.GetParent(v)
	vPdistOld := t.Data(v).pdist.Unwrap()
	pPdistOldOpt := t.Data(p).pdist

	if c, ok := t.GetDirectSeparatorChild(v); ok {
		cPdistOld := t.Data(c).pdist.Unwrap()
		t.DataPtr(c).pdist = weight.Finite(vPdistOld.Sub(cPdistOld))
	}

	t.DataPtr(p).pdist = weight.Finite(vPdistOld)

	if pPdistOldOpt.IsFinite() {
		pPdistOld := pPdistOldOpt.Unwrap()
		var newV W
		if d, ok := t.GetDirectSeparatorChild(p); ok && d == v {
			newV = pPdistOld.Sub(vPdistOld)
		} else {
			newV = pPdistOld.Add(vPdistOld)
		}
		t.DataPtr(v).pdist = weight.Finite(newV)
	} else {
		t.DataPtr(v).pdist = weight.Infinite[W]()
	}
}

// AfterAttached implements Hooks.
func (GroupHooks[W]) AfterAttached(t *Tree[GroupData[W]], v nodeidx.NodeIdx, w W) {
	t.DataPtr(v).pdist = weight.Finite(w)
}

// BeforeDetached implements Hooks.
func (GroupHooks[W]) BeforeDetached(t *Tree[GroupData[W]], v nodeidx.NodeIdx) {
	t.DataPtr(v).pdist = weight.Infinite[W]()
}
