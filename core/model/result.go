package model

import "time"

// Source identifies how an analysis result was produced.
type Source string

const (
	SourceLocalAnalysis Source = "local-analysis"
	SourceError         Source = "error"
)

// InsightResult carries the natural-language usage summary.
type InsightResult struct {
	Text   string
	Source Source
}

// PredictionPoint is the forecast for one future calendar day.
type PredictionPoint struct {
	Date              time.Time
	PredictedSessions int
	PredictedEnergy   float64
}

// PredictionResult holds the forward projection and its narrative.
type PredictionResult struct {
	Predictions []PredictionPoint
	Insight     string
	Source      Source
}
