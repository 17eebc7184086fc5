package weight_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/weight"
)

func TestSignedAddGroup(t *testing.T) {
	a := weight.NewSignedAdd(3)
	b := weight.NewSignedAdd(-5)

	require.Equal(t, weight.NewSignedAdd(-2), a.Add(b))
	require.Equal(t, weight.NewSignedAdd(8), a.Sub(b))
	require.Equal(t, weight.NewSignedAdd(-3), a.Neg())
	require.Equal(t, weight.SignedAdd[int]{}, a.Identity())
}

func TestUnsignedMaxMonoid(t *testing.T) {
	a := weight.NewUnsignedMax(uint(3))
	b := weight.NewUnsignedMax(uint(7))

	require.Equal(t, b, a.Add(b))
	require.Equal(t, b, b.Add(a))
	require.True(t, a.Less(b))
}

func TestEmptyGroup(t *testing.T) {
	var a, b weight.Empty
	require.Equal(t, weight.Empty{}, a.Add(b))
	require.Equal(t, weight.Empty{}, a.Neg())
	require.Equal(t, "", a.String())
}

func TestOrInfinity(t *testing.T) {
	fin := weight.Finite(weight.NewSignedAdd(5))
	inf := weight.Infinite[weight.SignedAdd[int]]()

	require.True(t, fin.IsFinite())
	require.False(t, inf.IsFinite())
	require.False(t, fin.Add(inf).IsFinite())
	require.Equal(t, weight.NewSignedAdd(8), fin.Add(weight.Finite(weight.NewSignedAdd(3))).Unwrap())
	require.True(t, weight.Less(fin, inf))
	require.False(t, weight.Less(inf, fin))
}

func TestMaxEdge(t *testing.T) {
	u, v, w := nodeidx.New(0), nodeidx.New(1), nodeidx.New(2)
	e1 := weight.NewMaxEdge(weight.NewUnsignedMax(uint(4)), weight.Edge{U: u, V: v})
	e2 := weight.NewMaxEdge(weight.NewUnsignedMax(uint(9)), weight.Edge{U: v, V: w})

	sum := e1.Add(e2)
	require.Equal(t, weight.NewUnsignedMax(uint(9)), sum.Weight())
	require.Equal(t, weight.Edge{U: v, V: w}, sum.Edge())

	id := sum.Identity()
	require.False(t, id.HasEdge())
}
