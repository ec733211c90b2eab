package viewport

import (
	"fmt"

	"github.com/arloliu/mathviz/errs"
	"github.com/arloliu/mathviz/geom"
)

// Viewport is a rectangular pixel surface together with the domain ranges it displays.
type Viewport struct {
	width   float64
	height  float64
	padding float64
	x       Range
	y       Range
}

// New creates a viewport of width×height pixels with padding on every side, displaying
// the domain x×y.
//
// It returns ErrInvalidViewport if the dimensions are not positive or the padding leaves
// no drawable area, and ErrInvalidRange if either domain range is invalid.
func New(width, height, padding float64, x, y Range) (Viewport, error) {
	if !geom.IsFinite(width) || !geom.IsFinite(height) || !geom.IsFinite(padding) ||
		padding < 0 || width-2*padding <= 0 || height-2*padding <= 0 {
		return Viewport{}, fmt.Errorf("%w: %gx%g with padding %g", errs.ErrInvalidViewport, width, height, padding)
	}
	if err := x.Validate(); err != nil {
		return Viewport{}, fmt.Errorf("x range: %w", err)
	}
	if err := y.Validate(); err != nil {
		return Viewport{}, fmt.Errorf("y range: %w", err)
	}

	return Viewport{width: width, height: height, padding: padding, x: x, y: y}, nil
}

// Width returns the pixel width.
func (v Viewport) Width() float64 { return v.width }

// Height returns the pixel height.
func (v Viewport) Height() float64 { return v.height }

// Padding returns the pixel padding on each side.
func (v Viewport) Padding() float64 { return v.padding }

// PlotWidth returns the drawable width, width - 2*padding.
func (v Viewport) PlotWidth() float64 { return v.width - 2*v.padding }

// PlotHeight returns the drawable height, height - 2*padding.
func (v Viewport) PlotHeight() float64 { return v.height - 2*v.padding }

// XRange returns the displayed domain X range.
func (v Viewport) XRange() Range { return v.x }

// YRange returns the displayed domain Y range.
func (v Viewport) YRange() Range { return v.y }

// WithXRange returns a copy of v displaying the domain X range r.
// An invalid range leaves the X range unchanged.
func (v Viewport) WithXRange(r Range) Viewport {
	if r.Validate() == nil {
		v.x = r
	}

	return v
}

// WithYRange returns a copy of v displaying the domain Y range r.
// An invalid range leaves the Y range unchanged.
func (v Viewport) WithYRange(r Range) Viewport {
	if r.Validate() == nil {
		v.y = r
	}

	return v
}

// ToPixelX maps a domain X value to a pixel column.
func (v Viewport) ToPixelX(x float64) float64 {
	return v.padding + (x-v.x.Min)/v.x.Span()*v.PlotWidth()
}

// ToPixelY maps a domain Y value to a pixel row. Larger Y values map to smaller rows.
func (v Viewport) ToPixelY(y float64) float64 {
	return v.height - v.padding - (y-v.y.Min)/v.y.Span()*v.PlotHeight()
}

// ToDomainX is the inverse of ToPixelX.
func (v Viewport) ToDomainX(px float64) float64 {
	return v.x.Min + (px-v.padding)/v.PlotWidth()*v.x.Span()
}

// ToDomainY is the inverse of ToPixelY.
func (v Viewport) ToDomainY(py float64) float64 {
	return v.y.Min + (v.height-v.padding-py)/v.PlotHeight()*v.y.Span()
}

// ToPixel maps a domain point to pixel space.
func (v Viewport) ToPixel(p geom.Point) geom.Point {
	return geom.Point{X: v.ToPixelX(p.X), Y: v.ToPixelY(p.Y)}
}

// ToDomain maps a pixel point to domain space.
func (v Viewport) ToDomain(p geom.Point) geom.Point {
	return geom.Point{X: v.ToDomainX(p.X), Y: v.ToDomainY(p.Y)}
}

// SegmentToPixel maps both ends of a domain segment to pixel space.
func (v Viewport) SegmentToPixel(s geom.Segment) geom.Segment {
	return geom.Segment{From: v.ToPixel(s.From), To: v.ToPixel(s.To)}
}

// PathToPixel maps a polyline to pixel space, dropping points that are not finite.
func (v Viewport) PathToPixel(points []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(points))
	for _, p := range points {
		if !p.IsFinite() {
			continue
		}
		out = append(out, v.ToPixel(p))
	}

	return out
}

// String returns a short description of the viewport.
func (v Viewport) String() string {
	return fmt.Sprintf("Viewport{%gx%g pad=%g x=%s y=%s}", v.width, v.height, v.padding, v.x, v.y)
}
