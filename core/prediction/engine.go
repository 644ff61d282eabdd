package prediction

import "github.com/kilianp07/chargeinsight/core/model"

// Forecaster produces a forward projection from a daily usage series.
// Implementations never fail: faults are reported through the result's
// source tag.
type Forecaster interface {
	Predict(series []model.DailyRecord) model.PredictionResult
}
