// Package spatial implements the uniform-grid scalar fields spec §4.2 and
// §9 call for: SignalField gradients sampled by agents during Sense, and the
// TraceLayer stigmergic deposits left during Act.
//
// Both are the same underlying shape — a sparse, cell-binned scalar field
// that decays multiplicatively each tick and drops cells below an epsilon —
// so a single Field type serves both; Substrate keeps one Field per signal
// label and one per trace kind.
//
// The binning scheme (floor(x/cellSize), floor(y/cellSize)) is adapted from
// github.com/katalvlaran/lvlath/gridgraph's integer-grid cell model (Cell,
// Width/Height, neighbor offsets) generalized from a dense fixed-size grid
// to a sparse map keyed by cell coordinates, since Phago's positions are
// continuous floats over an unbounded plane rather than a fixed W×H grid.
package spatial

import "math"

// CellSize is the fixed edge length of one spatial bin, in position units
// (spec §9: "cell size ≈ 1.0 in position units").
const CellSize = 1.0

// Position is a 2-D coordinate in the colony's shared space.
type Position struct {
	X, Y float64
}

// Finite reports whether both coordinates are finite numbers (data-model
// invariant: "Document positions and agent positions are finite").
func (p Position) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// cellKey identifies one spatial bin.
type cellKey struct {
	cx, cy int64
}

// lessCellKey orders cellKeys by cx then cy, giving PeakNear a total order
// to break exact-intensity ties with, independent of scan or map order.
func lessCellKey(a, b cellKey) bool {
	if a.cx != b.cx {
		return a.cx < b.cx
	}
	return a.cy < b.cy
}

func cellOf(p Position) cellKey {
	return cellKey{
		cx: int64(math.Floor(p.X / CellSize)),
		cy: int64(math.Floor(p.Y / CellSize)),
	}
}

// Field is one sparse scalar field over the plane: a (position -> intensity)
// sample set, binned into fixed-size cells for O(1) deposit and O(radius²)
// sample (spec §9 Spatial index).
type Field struct {
	cells map[cellKey]float64
}

// NewField constructs an empty Field.
func NewField() *Field {
	return &Field{cells: make(map[cellKey]float64)}
}

// Deposit adds intensity at the cell nearest to pos.
func (f *Field) Deposit(pos Position, intensity float64) {
	k := cellOf(pos)
	f.cells[k] += intensity
}

// Sample sums the intensities of every cell whose center lies within radius
// (L2 distance from pos) of pos.
func (f *Field) Sample(pos Position, radius float64) float64 {
	if radius < 0 {
		return 0
	}

	cellRadius := int64(math.Ceil(radius / CellSize))
	center := cellOf(pos)
	r2 := radius * radius

	var sum float64
	for dx := -cellRadius; dx <= cellRadius; dx++ {
		for dy := -cellRadius; dy <= cellRadius; dy++ {
			k := cellKey{cx: center.cx + dx, cy: center.cy + dy}
			v, ok := f.cells[k]
			if !ok {
				continue
			}
			cellCenterX := float64(k.cx)*CellSize + CellSize/2
			cellCenterY := float64(k.cy)*CellSize + CellSize/2
			ddx := cellCenterX - pos.X
			ddy := cellCenterY - pos.Y
			if ddx*ddx+ddy*ddy <= r2 {
				sum += v
			}
		}
	}

	return sum
}

// PeakNear returns the position of the highest-intensity cell within radius
// of pos, used by Digester.Sense's gradient-ascent blend. ok is false if no
// cell in range has positive intensity.
func (f *Field) PeakNear(pos Position, radius float64) (peak Position, intensity float64, ok bool) {
	cellRadius := int64(math.Ceil(radius / CellSize))
	center := cellOf(pos)
	r2 := radius * radius

	best := 0.0
	var bestKey cellKey
	found := false

	for dx := -cellRadius; dx <= cellRadius; dx++ {
		for dy := -cellRadius; dy <= cellRadius; dy++ {
			k := cellKey{cx: center.cx + dx, cy: center.cy + dy}
			v, exists := f.cells[k]
			if !exists || v <= 0 {
				continue
			}
			cellCenterX := float64(k.cx)*CellSize + CellSize/2
			cellCenterY := float64(k.cy)*CellSize + CellSize/2
			ddx := cellCenterX - pos.X
			ddy := cellCenterY - pos.Y
			if ddx*ddx+ddy*ddy > r2 {
				continue
			}
			// Strict improvement only; on an exact tie keep whichever key
			// compares smaller (cx then cy), so the result never depends on
			// iteration order — map-backed storage gives no ordering
			// guarantee of its own (spec §9 Determinism, Property 3).
			switch {
			case !found:
				best, bestKey, found = v, k, true
			case v > best:
				best, bestKey = v, k
			case v == best && lessCellKey(k, bestKey):
				bestKey = k
			}
		}
	}

	if !found {
		return Position{}, 0, false
	}

	return Position{
		X: float64(bestKey.cx)*CellSize + CellSize/2,
		Y: float64(bestKey.cy)*CellSize + CellSize/2,
	}, best, true
}

// Decay multiplies every cell's intensity by (1-rate) and removes any cell
// that falls below epsilon (spec §4.2 decay_fields).
func (f *Field) Decay(rate, epsilon float64) {
	for k, v := range f.cells {
		nv := v * (1 - rate)
		if nv < epsilon {
			delete(f.cells, k)
			continue
		}
		f.cells[k] = nv
	}
}

// CellCount reports how many non-empty cells the field currently holds,
// used for stats/diagnostics.
func (f *Field) CellCount() int {
	return len(f.cells)
}
