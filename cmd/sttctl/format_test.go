package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryFileConnectivity(t *testing.T) {
	src := "con 4 3\ni 0 1\ni 1 2\nc a comment line\np 0 2\nd 0 1\n"
	qf, err := ParseQueryFile(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, KindConnectivity, qf.Kind)
	assert.Equal(t, 4, qf.NumVertices)
	assert.Equal(t, 3, qf.NumEdges)
	require.Len(t, qf.Queries, 4)
	assert.Equal(t, insertQuery{u: 0, v: 1}, qf.Queries[0])
	assert.Equal(t, insertQuery{u: 1, v: 2}, qf.Queries[1])
	assert.Equal(t, pathQuery{u: 0, v: 2}, qf.Queries[2])
	assert.Equal(t, deleteQuery{u: 0, v: 1}, qf.Queries[3])
}

func TestParseQueryFileLCA(t *testing.T) {
	src := "lca 6 4\nl 0 1\nl 1 2\na 0 2\nc 1\n"
	qf, err := ParseQueryFile(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, KindLCA, qf.Kind)
	require.Len(t, qf.Queries, 4)
	assert.Equal(t, linkQuery{u: 0, v: 1}, qf.Queries[0])
	assert.Equal(t, linkQuery{u: 1, v: 2}, qf.Queries[1])
	assert.Equal(t, lcaQuery{u: 0, v: 2}, qf.Queries[2])
	assert.Equal(t, cutQuery{v: 1}, qf.Queries[3])
}

func TestParseQueryFileMST(t *testing.T) {
	src := "mst 5 3\ne 0 1 5\ne 1 2 3\ne 0 2 4\n"
	qf, err := ParseQueryFile(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, KindMST, qf.Kind)
	require.Len(t, qf.Queries, 3)
	assert.Equal(t, mstEdgeQuery{u: 0, v: 1, w: 5}, qf.Queries[0])
}

func TestParseQueryFileRejectsUnknownToken(t *testing.T) {
	src := "con 2 1\nx 0 1\n"
	_, err := ParseQueryFile(strings.NewReader(src))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLine)
}

func TestParseQueryFileRejectsUnknownKind(t *testing.T) {
	_, err := ParseQueryFile(strings.NewReader("bogus 2 1\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLine)
}

func TestParseQueryFileRejectsMissingHeader(t *testing.T) {
	_, err := ParseQueryFile(strings.NewReader(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLine)
}
