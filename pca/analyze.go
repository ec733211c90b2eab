package pca

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/mathviz/geom"
)

// Result holds every intermediate and final quantity of a 2-D PCA.
type Result struct {
	// Points is the input dataset.
	Points []geom.Point
	// Mean is the centroid of Points.
	Mean geom.Point
	// Centered holds Points shifted so that Mean is the origin.
	Centered []geom.Point
	// Covariance is the sample covariance of Centered.
	Covariance Covariance
	// Components are the principal axes, ordered by descending eigenvalue.
	Components [2]EigenPair
	// Projected holds the PCA-space coordinates (score on PC1, score on PC2) of each point.
	Projected []geom.Point
	// Reconstructed holds each centered point reduced to its PC1 component,
	// i.e. the point's orthogonal projection onto the first principal axis.
	Reconstructed []geom.Point
	// ExplainedVariance is λᵢ / (λ₁ + λ₂) for each component; both are 0 when the
	// total variance is 0.
	ExplainedVariance [2]float64
}

// Analyze runs the full PCA pipeline on points: centering, sample covariance, closed-form
// eigen decomposition, projection onto both components and explained variance.
//
// Parameters:
//   - points: Dataset to analyze; fewer than two points yield the identity covariance
//
// Returns:
//   - *Result: Every intermediate quantity, with Components ordered by descending eigenvalue
//
// Example:
//
//	points, _ := pca.Generate(pca.WithShape(pca.Correlated))
//	r := pca.Analyze(points)
//	fmt.Printf("PC1 explains %.0f%%\n", r.ExplainedVariance[0]*100)
func Analyze(points []geom.Point) *Result {
	mean := geom.Mean(points)
	centered := make([]geom.Point, len(points))
	for i, p := range points {
		centered[i] = p.Sub(mean)
	}

	cov := CovarianceOf(centered)
	components := cov.Eigen()
	v1, v2 := components[0].Vector, components[1].Vector

	projected := make([]geom.Point, len(centered))
	reconstructed := make([]geom.Point, len(centered))
	for i, p := range centered {
		s1 := p.Dot(v1)
		projected[i] = geom.Point{X: s1, Y: p.Dot(v2)}
		reconstructed[i] = v1.Scale(s1)
	}

	return &Result{
		Points:            points,
		Mean:              mean,
		Centered:          centered,
		Covariance:        cov,
		Components:        components,
		Projected:         projected,
		Reconstructed:     reconstructed,
		ExplainedVariance: explainedVariance(components),
	}
}

// Clone returns a deep copy of r, or nil when r is nil.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	c := *r
	c.Points = slices.Clone(r.Points)
	c.Centered = slices.Clone(r.Centered)
	c.Projected = slices.Clone(r.Projected)
	c.Reconstructed = slices.Clone(r.Reconstructed)

	return &c
}

func explainedVariance(components [2]EigenPair) [2]float64 {
	total := components[0].Value + components[1].Value
	if total <= 0 {
		return [2]float64{}
	}

	return [2]float64{components[0].Value / total, components[1].Value / total}
}

// Axis returns the segment along component i (0 or 1), centered on the mean and scaled to
// scale standard deviations in each direction.
func (r *Result) Axis(i int, scale float64) geom.Segment {
	c := r.Components[i]
	half := c.Vector.Scale(scale * sqrtNonNeg(c.Value))

	return geom.Segment{From: r.Mean.Sub(half), To: r.Mean.Add(half)}
}

// String returns a short summary of the result.
func (r *Result) String() string {
	return fmt.Sprintf("Result{n: %d, λ: [%.4f %.4f], PC1: %s, explained: [%.1f%% %.1f%%]}",
		len(r.Points), r.Components[0].Value, r.Components[1].Value, r.Components[0].Vector,
		r.ExplainedVariance[0]*100, r.ExplainedVariance[1]*100)
}

func sqrtNonNeg(v float64) float64 {
	if v <= 0 {
		return 0
	}

	return math.Sqrt(v)
}
