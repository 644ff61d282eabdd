// Package analytics derives descriptive statistics and natural-language
// insights from charger usage records. Every function is a pure function of
// its inputs: it never mutates the records it receives and keeps no state
// between calls, so it can be called concurrently.
//
// Empty input is not an error. Functions return a designated placeholder
// result (see Outcome) and the Analyzer converts computation faults into a
// fixed user-facing message instead of surfacing them to the caller.
package analytics
