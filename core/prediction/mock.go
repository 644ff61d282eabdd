package prediction

import "github.com/kilianp07/chargeinsight/core/model"

// MockForecaster returns a fixed result and remembers the series it was
// given last.
type MockForecaster struct {
	Result model.PredictionResult
	Last   []model.DailyRecord
}

// Predict returns a copy of the configured result.
func (m *MockForecaster) Predict(series []model.DailyRecord) model.PredictionResult {
	m.Last = series
	res := m.Result
	res.Predictions = append([]model.PredictionPoint(nil), m.Result.Predictions...)
	return res
}
