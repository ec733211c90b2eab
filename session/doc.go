// Package session holds the mutable state of each visualization and the derived values
// a presentation layer renders.
//
// Every visualization kind has a session type: RegressionSession, DerivativeSession,
// BayesSession, PCASession and ProbabilitySession. Setters validate and store a parameter,
// then recompute the derived values synchronously. Derived values come from an Analyzer,
// a pure function from a parameter tuple to a result, wrapped in a Cached analyzer that
// keeps the last result keyed on the tuple's hash, so queries between changes are free.
//
// Sessions never block and are not safe for concurrent use. A host drives animation by
// attaching an animation.Scheduler with WithScheduler, or by calling the session's Step
// method once per frame.
//
// # Usage
//
//	s, err := session.NewRegressionSession(session.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	s.SetSlope(0.9)
//	fmt.Println(s.Result().Current.SSE, s.IsOptimal())
//	s.Optimize()
package session
