// Package viewport maps points between domain space and pixel space.
//
// Domain space is the abstract coordinate system of the data: X grows to the right and
// Y grows upward. Pixel space is the bounded rectangle a presentation layer draws on: X grows
// to the right and Y grows downward. A Viewport ties the two together through an affine map
// over the drawable area left after padding:
//
//	pixelX = padding + (x - xMin) / (xMax - xMin) * (width  - 2*padding)
//	pixelY = height - padding - (y - yMin) / (yMax - yMin) * (height - 2*padding)
//
// A degenerate range (Min == Max) maps with a unit span instead of dividing by zero.
//
// Viewports are immutable values. Changing a domain range produces a new Viewport, which is
// how a session "recomputes" its mapping when, for example, a different function is plotted:
//
//	vp, err := viewport.New(600, 400, 40, viewport.R(-5, 5), viewport.R(-1, 1))
//	if err != nil {
//	    return err
//	}
//	samples := calculus.Sample(fn, vp.XRange(), 100)
//	vp = vp.WithYRange(viewport.FitYRange(samples))
//	px := vp.ToPixel(geom.Pt(1, fn(1)))
//
// FitYRange and FitBounds derive domain ranges from data, skipping NaN and infinite samples
// so that one bad sample cannot corrupt an axis.
package viewport
