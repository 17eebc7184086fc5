package linkcut

import (
	"fmt"

	"github.com/katalvlaran/stt/internal/assert"
	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/weight"
)

// EmptyData is the node-data payload for connectivity-only link-cut
// forests: it carries nothing and requires no rotation bookkeeping.
type EmptyData struct{}

// NewEmptyData is the Forest node-data constructor for EmptyData.
func NewEmptyData(nodeidx.NodeIdx) EmptyData { return EmptyData{} }

// ParentPathWeight implements dataConstraint[weight.Empty].
func (EmptyData) ParentPathWeight() weight.Empty { return weight.Empty{} }

// String renders the empty payload as the empty string.
func (EmptyData) String() string { return "" }

// EmptyHooks is the (trivial) Hooks implementation for EmptyData.
type EmptyHooks struct{}

// BeforeRotation does nothing: EmptyData carries no weight information.
func (EmptyHooks) BeforeRotation(*Forest[EmptyData, weight.Empty], nodeidx.NodeIdx) {}

// BeforeSplice does nothing: EmptyData carries no weight information.
func (EmptyHooks) BeforeSplice(*Forest[EmptyData, weight.Empty], nodeidx.NodeIdx) {}

// AfterAttached does nothing: EmptyData carries no weight information.
func (EmptyHooks) AfterAttached(*Forest[EmptyData, weight.Empty], nodeidx.NodeIdx, weight.Empty) {}

// BeforeDetached does nothing: EmptyData carries no weight information.
func (EmptyHooks) BeforeDetached(*Forest[EmptyData, weight.Empty], nodeidx.NodeIdx) {}

// MonoidData stores the distance to its parent and to the lowest ancestor
// reachable on the other side of this node than its parent ("dashed
// parents" are considered left parents), both lifted into
// weight.OrInfinity. This is the node-data payload to use when the
// edge-weight type is only known to be a commutative monoid.
type MonoidData[W weight.Monoid[W]] struct {
	pdist weight.OrInfinity[W]
	adist weight.OrInfinity[W]
}

// NewMonoidData is the Forest node-data constructor for MonoidData.
func NewMonoidData[W weight.Monoid[W]](nodeidx.NodeIdx) MonoidData[W] {
	return MonoidData[W]{pdist: weight.Infinite[W](), adist: weight.Infinite[W]()}
}

// ParentPathWeight implements dataConstraint[W].
func (d MonoidData[W]) ParentPathWeight() W { return d.pdist.Unwrap() }

// String renders "pdist/adist".
func (d MonoidData[W]) String() string { return fmt.Sprintf("%s/%s", d.pdist, d.adist) }

// MonoidHooks is the Hooks implementation for MonoidData: works for any
// commutative monoid weight, at the cost of also tracking adist.
type MonoidHooks[W weight.Monoid[W]] struct{}

// BeforeRotation implements Hooks, following the exact pdist/adist
// reassignment used by the reference link-cut rotate().
func (MonoidHooks[W]) BeforeRotation(f *Forest[MonoidData[W], W], v nodeidx.NodeIdx) {
	p, _ := f.at(v).parent.get()
	if g, ok := f.at(p).parent.get(); ok {
		f.pushReverseBit(g)
	}
	f.pushReverseBit(p)
	f.pushReverseBit(v)

	var cOpt optIdx
	if f.isLeftChild(v) {
		cOpt = f.at(v).right
	} else {
		cOpt = f.at(v).left
	}
	if c, ok := cOpt.get(); ok {
		cData := f.DataPtr(c)
		cData.pdist, cData.adist = cData.adist, cData.pdist
	}

	oldV := f.Data(v)
	oldP := f.Data(p)

	f.DataPtr(p).pdist = oldV.pdist

	pLeft, pLeftOK := f.at(p).left.get()
	vIsPLeft := pLeftOK && pLeft == v
	if vIsPLeft != f.isLeftChild(p) {
		// v is between p and g in the represented tree, or p is the root
		// of the whole link-cut tree.
		f.DataPtr(v).pdist = oldV.adist
		f.DataPtr(v).adist = oldV.pdist.Add(oldP.adist)
	} else {
		// p is between v and g in the represented tree, or p is the root
		// of the whole link-cut tree.
		f.DataPtr(v).pdist = oldV.pdist.Add(oldP.pdist)
		f.DataPtr(p).adist = oldP.pdist
	}
}

// BeforeSplice implements Hooks: under the invariant that v's parent is
// always a middle child when splicing, there is nothing to update.
func (MonoidHooks[W]) BeforeSplice(f *Forest[MonoidData[W], W], v nodeidx.NodeIdx) {
	p, _ := f.at(v).parent.get()
	assert.Invariant(!f.isNonMiddleChild(p), "linkcut: BeforeSplice(%s) expected %s's parent to be a middle child", v, v)
}

// AfterAttached implements Hooks.
func (MonoidHooks[W]) AfterAttached(f *Forest[MonoidData[W], W], v nodeidx.NodeIdx, w W) {
	f.DataPtr(v).pdist = weight.Finite(w)
}

// BeforeDetached implements Hooks.
func (MonoidHooks[W]) BeforeDetached(f *Forest[MonoidData[W], W], v nodeidx.NodeIdx) {
	f.DataPtr(v).pdist = weight.Infinite[W]()
}

// GroupData stores only the distance to its parent; reconstructing the
// adjacent-ancestor distance the monoid variant tracks separately is done
// via subtraction, which requires a group weight.
type GroupData[W weight.Group[W]] struct {
	pdist weight.OrInfinity[W]
}

// NewGroupData is the Forest node-data constructor for GroupData.
func NewGroupData[W weight.Group[W]](nodeidx.NodeIdx) GroupData[W] {
	return GroupData[W]{pdist: weight.Infinite[W]()}
}

// ParentPathWeight implements dataConstraint[W].
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
func (GroupHooks[W]) BeforeRotation(f *Forest[GroupData[W], W], v nodeidx.NodeIdx) {
	p, _ := f.at(v).parent.get()
	if g, ok := f.at(p).parent.get(); ok {
		f.pushReverseBit(g)
	}
	f.pushReverseBit(p)
	f.pushReverseBit(v)

	var cOpt optIdx
	if f.isLeftChild(v) {
		cOpt = f.at(v).right
	} else {
		cOpt = f.at(v).left
	}

	vPdistOld := f.Data(v).pdist.Unwrap()
	pPdistOldOpt := f.Data(p).pdist

	if c, ok := cOpt.get(); ok {
		cPdistOld := f.Data(c).pdist.Unwrap()
		f.DataPtr(c).pdist = weight.Finite(vPdistOld.Sub(cPdistOld))
	}

	f.DataPtr(p).pdist = weight.Finite(vPdistOld)

	pLeft, pLeftOK := f.at(p).left.get()
	vIsPLeft := pLeftOK && pLeft == v

	if pPdistOldOpt.IsFinite() {
		pPdistOld := pPdistOldOpt.Unwrap()
		var newV W
		if vIsPLeft != f.isLeftChild(p) {
			newV = pPdistOld.Sub(vPdistOld)
		} else {
			newV = pPdistOld.Add(vPdistOld)
		}
		f.DataPtr(v).pdist = weight.Finite(newV)
	} else {
		f.DataPtr(v).pdist = weight.Infinite[W]()
	}
}

// BeforeSplice implements Hooks: nothing to do, group subtraction needs no
// extra bookkeeping at splice time.
func (GroupHooks[W]) BeforeSplice(*Forest[GroupData[W], W], nodeidx.NodeIdx) {}

// AfterAttached implements Hooks.
func (GroupHooks[W]) AfterAttached(f *Forest[GroupData[W], W], v nodeidx.NodeIdx, w W) {
	f.DataPtr(v).pdist = weight.Finite(w)
}

// BeforeDetached implements Hooks.
func (GroupHooks[W]) BeforeDetached(f *Forest[GroupData[W], W], v nodeidx.NodeIdx) {
	f.DataPtr(v).pdist = weight.Infinite[W]()
}
