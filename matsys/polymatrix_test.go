package matsys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/moment/polynomial"
)

func TestBuildPolynomialLocalizingMatchesMonomialCase(t *testing.T) {
	s := newGenericSystem(t, 2)
	_, moment, err := s.BuildMoment(1)
	require.NoError(t, err)

	poly := polynomial.Polynomial{{Symbol: 1, Coefficient: 1}} // identity, coefficient 1
	_, pm, err := s.BuildPolynomialLocalizing(1, poly)
	require.NoError(t, err)
	assert.Equal(t, moment.Dim, pm.Dim)

	for r := 0; r < moment.Dim; r++ {
		for c := 0; c < moment.Dim; c++ {
			cell := moment.At(r, c)
			entry := pm.At(r, c)
			if cell.Zero {
				assert.True(t, entry.IsZero())
				continue
			}
			require.Len(t, entry, 1)
			assert.Equal(t, cell.Symbol, entry[0].Symbol)
		}
	}
}

func TestBuildPolynomialLocalizingIsIdempotentByOffset(t *testing.T) {
	s := newGenericSystem(t, 2)
	poly := polynomial.Polynomial{{Symbol: 1, Coefficient: 2}}

	offset1, _, err := s.BuildPolynomialLocalizing(0, poly)
	require.NoError(t, err)
	offset2, _, err := s.BuildPolynomialLocalizing(0, poly)
	require.NoError(t, err)
	assert.Equal(t, offset1, offset2)
}

func TestBuildPolynomialLocalizingRejectsUnregisteredSymbol(t *testing.T) {
	s := newGenericSystem(t, 2)
	poly := polynomial.Polynomial{{Symbol: 999, Coefficient: 1}}
	_, _, err := s.BuildPolynomialLocalizing(0, poly)
	require.Error(t, err)
}
