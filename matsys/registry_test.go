package matsys

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/moment/momenterr"
)

type fakeIndex struct{ level int }

func (f fakeIndex) Key() string {
	if f.level == 0 {
		return "level:0"
	}
	return "level:n"
}

func TestMatrixIndicesGetMissingReturnsNotFound(t *testing.T) {
	reg := NewMatrixIndices[fakeIndex](8)
	_, err := reg.Get(fakeIndex{level: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, momenterr.ErrNotFound))
}

func TestMatrixIndicesCreateBuildsOnceAndCaches(t *testing.T) {
	reg := NewMatrixIndices[fakeIndex](8)
	calls := 0
	build := func() (int, error) {
		calls++
		return 42, nil
	}

	offset, err := reg.Create(fakeIndex{level: 0}, build)
	require.NoError(t, err)
	assert.Equal(t, 42, offset)

	offset2, err := reg.Create(fakeIndex{level: 0}, build)
	require.NoError(t, err)
	assert.Equal(t, 42, offset2)
	assert.Equal(t, 1, calls, "build must not be re-invoked on a cache hit")
}

func TestMatrixIndicesCreatePropagatesBuildError(t *testing.T) {
	reg := NewMatrixIndices[fakeIndex](8)
	wantErr := momenterr.BadInput("boom")
	_, err := reg.Create(fakeIndex{level: 0}, func() (int, error) { return 0, wantErr })
	require.Error(t, err)

	_, getErr := reg.Get(fakeIndex{level: 0})
	require.Error(t, getErr, "a failed build must not register anything")
}

func TestMatrixIndicesInsertAliasCrossRegisters(t *testing.T) {
	reg := NewMatrixIndices[fakeIndex](8)
	reg.InsertAlias(fakeIndex{level: 0}, 7)
	reg.InsertAlias(fakeIndex{level: 1}, 7)

	a, err := reg.Get(fakeIndex{level: 0})
	require.NoError(t, err)
	b, err := reg.Get(fakeIndex{level: 1})
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 2, reg.Len(), "each alias key is registered separately, both pointing at offset 7")
}
