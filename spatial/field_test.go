package spatial_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clemens865/phago/spatial"
)

func TestDepositAndSample(t *testing.T) {
	f := spatial.NewField()
	f.Deposit(spatial.Position{X: 0, Y: 0}, 1.0)
	f.Deposit(spatial.Position{X: 0.4, Y: 0.4}, 1.0)

	sum := f.Sample(spatial.Position{X: 0, Y: 0}, 2.0)
	require.InDelta(t, 2.0, sum, 1e-9)
}

func TestSampleRadiusExcludesFarCells(t *testing.T) {
	f := spatial.NewField()
	f.Deposit(spatial.Position{X: 0, Y: 0}, 1.0)
	f.Deposit(spatial.Position{X: 50, Y: 50}, 1.0)

	sum := f.Sample(spatial.Position{X: 0, Y: 0}, 2.0)
	require.InDelta(t, 1.0, sum, 1e-9)
}

func TestDecayRemovesBelowEpsilon(t *testing.T) {
	f := spatial.NewField()
	f.Deposit(spatial.Position{X: 0, Y: 0}, 0.1)

	for i := 0; i < 200; i++ {
		f.Decay(0.05, 0.01)
	}

	require.Equal(t, 0, f.CellCount())
}

func TestPeakNearFindsHighestCell(t *testing.T) {
	f := spatial.NewField()
	f.Deposit(spatial.Position{X: 0, Y: 0}, 0.5)
	f.Deposit(spatial.Position{X: 1, Y: 0}, 2.0)

	peak, intensity, ok := f.PeakNear(spatial.Position{X: 0, Y: 0}, 3.0)
	require.True(t, ok)
	require.InDelta(t, 2.0, intensity, 1e-9)
	require.InDelta(t, 1.5, peak.X, 1.0) // within the neighboring cell
}

func TestPositionFinite(t *testing.T) {
	require.True(t, spatial.Position{X: 1, Y: 2}.Finite())
	require.False(t, spatial.Position{X: math.NaN(), Y: 0}.Finite())
}
