// Package prediction projects daily charger usage one week ahead. The
// projection is a heuristic: a per-weekday seasonal average when the weekday
// has been observed, otherwise the overall average nudged by a linear trend,
// both multiplied by a bounded random jitter. Energy is always derived from
// the predicted sessions through the observed energy per session ratio.
package prediction
