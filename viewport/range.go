package viewport

import (
	"fmt"
	"math"

	"github.com/arloliu/mathviz/errs"
	"github.com/arloliu/mathviz/geom"
)

// DefaultMarginRatio is the fraction of the data extent added on each side by FitYRange.
const DefaultMarginRatio = 0.2

// EmptyRange is what FitYRange returns when there is no finite sample to fit.
var EmptyRange = Range{Min: -1, Max: 1}

// Range is a closed interval [Min, Max] of domain values.
type Range struct {
	Min float64
	Max float64
}

// R is shorthand for Range{Min: lo, Max: hi}.
func R(lo, hi float64) Range {
	return Range{Min: lo, Max: hi}
}

// NewRange returns the range [lo, hi], or ErrInvalidRange if a bound is not finite
// or lo > hi.
func NewRange(lo, hi float64) (Range, error) {
	r := Range{Min: lo, Max: hi}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}

	return r, nil
}

// Validate reports whether r can be used as a domain range.
func (r Range) Validate() error {
	if !geom.IsFinite(r.Min) || !geom.IsFinite(r.Max) {
		return fmt.Errorf("%w: [%g, %g] has a non-finite bound", errs.ErrInvalidRange, r.Min, r.Max)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %g is greater than max %g", errs.ErrInvalidRange, r.Min, r.Max)
	}

	return nil
}

// Span returns Max - Min, or 1 when the range is degenerate.
func (r Range) Span() float64 {
	s := r.Max - r.Min
	if s == 0 {
		return 1
	}

	return s
}

// Contains reports whether v lies within the range, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp returns v limited to the range.
func (r Range) Clamp(v float64) float64 {
	return math.Min(math.Max(v, r.Min), r.Max)
}

// Ticks returns divisions+1 evenly spaced values from Min to Max, the positions of
// grid lines for the axis. It returns just the bounds when divisions < 1.
func (r Range) Ticks(divisions int) []float64 {
	if divisions < 1 {
		return []float64{r.Min, r.Max}
	}

	step := (r.Max - r.Min) / float64(divisions)
	ticks := make([]float64, divisions+1)
	for i := range ticks {
		ticks[i] = r.Min + float64(i)*step
	}
	ticks[divisions] = r.Max

	return ticks
}

// String returns "[min, max]".
func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// FitYRange returns a Y range covering the Y values of the finite samples plus a
// DefaultMarginRatio margin on each side. A sample with a non-finite X or Y is skipped.
func FitYRange(samples []geom.Point) Range {
	ys := make([]float64, 0, len(samples))
	for _, p := range samples {
		if !p.IsFinite() {
			continue
		}
		ys = append(ys, p.Y)
	}

	return FitRange(ys, DefaultMarginRatio)
}

// FitRange returns a range covering every finite value plus marginRatio times the extent on
// each side. When the extent is zero (a single distinct value) the margin is one unit, so the
// axis never degenerates. NaN and ±Inf values are ignored; if none remain, EmptyRange is returned.
func FitRange(values []float64, marginRatio float64) Range {
	lo, hi, ok := extent(values)
	if !ok {
		return EmptyRange
	}

	margin := (hi - lo) * marginRatio
	if margin == 0 || !geom.IsFinite(margin) {
		margin = 1
	}

	return Range{Min: lo - margin, Max: hi + margin}
}

// FitBounds returns X and Y ranges covering the finite points, each widened by bufferRatio
// times its extent and then extended to include floor. With no finite points the floor
// itself is returned for both axes.
func FitBounds(points []geom.Point, bufferRatio float64, floor Range) (x, y Range) {
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		if p.IsFinite() {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	}

	return bufferedRange(xs, bufferRatio, floor), bufferedRange(ys, bufferRatio, floor)
}

func bufferedRange(values []float64, bufferRatio float64, floor Range) Range {
	lo, hi, ok := extent(values)
	if !ok {
		return floor
	}
	buffer := (hi - lo) * bufferRatio

	return Range{
		Min: math.Min(floor.Min, lo-buffer),
		Max: math.Max(floor.Max, hi+buffer),
	}
}

// extent returns the minimum and maximum finite value.
func extent(values []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if !geom.IsFinite(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		ok = true
	}

	return lo, hi, ok
}
