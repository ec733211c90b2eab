// Package pca performs principal component analysis on two-variable datasets.
//
// The analysis is closed-form and restricted to two dimensions:
//
//  1. compute the mean vector and center every point
//  2. compute the sample covariance matrix (divisor n-1)
//  3. solve the characteristic quadratic λ = (trace ± √(trace² - 4·det)) / 2
//  4. take the dominant eigenvector from (cov.xy, λ₁ - cov.xx), normalized
//  5. take the second eigenvector as the 90° rotation of the first
//  6. project centered points onto both eigenvectors
//  7. report the explained-variance fraction of each component
//
// Degenerate input never fails: with fewer than two points the covariance is the identity
// matrix, and axis-aligned data (cov.xy == 0) falls back to the coordinate axis with the larger
// variance, preferring the x-axis on a tie.
//
// Generate produces synthetic datasets (correlated, anti-correlated or uncorrelated clouds with
// noise and rotation) for the interactive PCA visualization.
package pca
