// Package batch standardizes many reported terms concurrently.
//
// Each standardization call is independent, so a Runner simply fans terms
// out over a worker pool sharing one read-only Standardizer and one frozen
// embedding model. Results come back in input order. Repeated terms are
// memoized by content ID so each distinct term is decided once per run
// regardless of how often it appears in the input.
package batch
