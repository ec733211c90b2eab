// Package bayes updates a prior belief with a single piece of binary evidence.
//
// Given P(A), P(B|A) and P(B|¬A):
//
//	P(B)   = P(B|A)·P(A) + P(B|¬A)·(1 - P(A))
//	P(A|B) = P(B|A)·P(A) / P(B)
//
// When P(B) is zero the posterior is defined as 0. Inputs are not clamped: values outside
// [0, 1] are computed numerically and the caller is responsible for constraining them.
package bayes

import (
	"fmt"
	"math"
)

// DefaultPopulation is the population size used by the population view.
const DefaultPopulation = 100

// Evidence holds the three probabilities that determine a Bayesian update.
type Evidence struct {
	// Prior is P(A), the probability of the hypothesis before seeing the evidence.
	Prior float64 `yaml:"prior"`
	// Likelihood is P(B|A), the probability of the evidence when the hypothesis holds.
	Likelihood float64 `yaml:"likelihood"`
	// FalsePositiveRate is P(B|¬A), the probability of the evidence when it does not.
	FalsePositiveRate float64 `yaml:"false_positive_rate"`
}

// Result is the outcome of a Bayesian update.
type Result struct {
	Evidence
	// Marginal is P(B), the total probability of observing the evidence.
	Marginal float64
	// Posterior is P(A|B), the updated probability of the hypothesis.
	Posterior float64
}

// Marginal returns P(B).
func (e Evidence) Marginal() float64 {
	return e.Likelihood*e.Prior + e.FalsePositiveRate*(1-e.Prior)
}

// Posterior returns P(A|B), or 0 when P(B) is 0.
func (e Evidence) Posterior() float64 {
	num := e.Likelihood * e.Prior
	den := num + e.FalsePositiveRate*(1-e.Prior)
	if den == 0 {
		return 0
	}

	return num / den
}

// Update computes the marginal and posterior for e.
func Update(e Evidence) Result {
	return Result{
		Evidence:  e,
		Marginal:  e.Marginal(),
		Posterior: e.Posterior(),
	}
}

// String returns the result with probabilities formatted as percentages.
func (r Result) String() string {
	return fmt.Sprintf("P(A)=%s P(B|A)=%s P(B|¬A)=%s → P(B)=%s P(A|B)=%s",
		Percent(r.Prior), Percent(r.Likelihood), Percent(r.FalsePositiveRate),
		Percent(r.Marginal), Percent(r.Posterior))
}

// Percent formats a probability as a percentage with one decimal, e.g. "16.1%".
func Percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

// Population is the update expressed as counts in a population of Total individuals.
type Population struct {
	Total    float64
	A        float64 // individuals with the hypothesis
	NotA     float64 // individuals without it
	AAndB    float64 // with the hypothesis and the evidence
	NotAAndB float64 // without the hypothesis but with the evidence
	B        float64 // everyone showing the evidence
}

// Population distributes total individuals according to e.
func (e Evidence) Population(total float64) Population {
	a := e.Prior * total
	notA := total - a
	aAndB := a * e.Likelihood
	notAAndB := notA * e.FalsePositiveRate

	return Population{
		Total:    total,
		A:        a,
		NotA:     notA,
		AAndB:    aAndB,
		NotAAndB: notAAndB,
		B:        aAndB + notAAndB,
	}
}

// Share returns AAndB / B, the posterior read off the population, or 0 when nobody shows
// the evidence.
func (p Population) Share() float64 {
	if p.B == 0 {
		return 0
	}

	return p.AAndB / p.B
}

// Gauge returns the length of an arc of a circle of radius r that represents the posterior,
// and the remaining dash offset, as used by a circular progress indicator.
func (r Result) Gauge(radius float64) (arc, offset float64) {
	circumference := 2 * math.Pi * radius
	arc = circumference * r.Posterior

	return arc, circumference - arc
}
