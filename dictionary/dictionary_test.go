package dictionary_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/moment/dictionary"
	"github.com/katalvlaran/moment/opctx"
	"github.com/stretchr/testify/require"
)

func TestOSGUpToEnumeratesIdentityAndAllWords(t *testing.T) {
	ctx, err := opctx.NewGeneric(2)
	require.NoError(t, err)
	d := dictionary.New(ctx)

	osg := d.OSGUpTo(2)
	// identity + 2 length-1 + 4 length-2 = 7
	require.Equal(t, 7, osg.Len())

	found := map[string]bool{}
	for _, s := range osg.Sequences() {
		found[s.String()] = true
	}
	require.True(t, found["1"])
}

func TestOSGUpToZeroAlphabetOnlyIdentity(t *testing.T) {
	ctx, err := opctx.NewGeneric(0)
	require.NoError(t, err)
	d := dictionary.New(ctx)

	osg := d.OSGUpTo(5)
	require.Equal(t, 1, osg.Len())
}

func TestOSGUpToCachesByLength(t *testing.T) {
	ctx, err := opctx.NewGeneric(3)
	require.NoError(t, err)
	d := dictionary.New(ctx)

	a := d.OSGUpTo(2)
	b := d.OSGUpTo(2)
	require.Same(t, a, b)

	c := d.OSGUpTo(3)
	require.NotSame(t, a, c)
}

func TestOSGUpToConcurrentRequestsConverge(t *testing.T) {
	ctx, err := opctx.NewGeneric(4)
	require.NoError(t, err)
	d := dictionary.New(ctx)

	const n = 32
	results := make([]*dictionary.OSG, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = d.OSGUpTo(3)
		}(i)
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		require.Same(t, results[0], results[i])
	}
}
