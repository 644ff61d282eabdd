package prediction

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/chargeinsight/core/logger"
	"github.com/kilianp07/chargeinsight/core/model"
	"github.com/kilianp07/chargeinsight/core/monitoring"
)

const (
	// Horizon is the number of days projected after the last observation.
	Horizon = 7

	InsufficientDataText = "Insufficient data for predictions"
	FaultText            = "Unable to generate predictions at this time."

	// minTrendDays is the series length from which a trend is measured.
	minTrendDays   = 3
	trendThreshold = 5.0
	jitterLow      = 0.9
	jitterSpan     = 0.2
)

var (
	// ErrNoData is returned by Forecast for an empty series.
	ErrNoData = errors.New("no daily usage data")
	// ErrComputation wraps panics recovered while forecasting.
	ErrComputation = errors.New("forecast computation failed")
)

// Forecast is the structured projection behind a PredictionResult.
type Forecast struct {
	Points []model.PredictionPoint
	// Bases holds the pre-jitter session estimate of each point.
	Bases []float64
	// Seasonal tells whether each point used its weekday average.
	Seasonal    []bool
	Trend       float64 // percent, second half against first half
	AvgSessions float64
	AvgEnergy   float64
	Days        int
}

// Insight describes the trend in one sentence.
func (f Forecast) Insight() string {
	switch {
	case f.Trend > trendThreshold:
		return fmt.Sprintf("Based on %d days of data, usage is trending upward (%.1f%%). Expect continued growth in the coming week.",
			f.Days, round1(f.Trend))
	case f.Trend < -trendThreshold:
		return fmt.Sprintf("Based on %d days of data, usage is trending downward (%.1f%%). Consider promotional activities to boost utilization.",
			f.Days, round1(f.Trend))
	default:
		return fmt.Sprintf("Based on %d days of data, usage is relatively stable. Expect similar patterns in the coming week.", f.Days)
	}
}

// Option configures a Seasonal forecaster.
type Option func(*Seasonal)

// WithRandom sets the jitter source. Use NewSeededSource for reproducible
// forecasts.
func WithRandom(r RandomSource) Option {
	return func(s *Seasonal) {
		if r != nil {
			s.rnd = r
		}
	}
}

// WithLogger sets the logger used to report faults.
func WithLogger(l logger.Logger) Option {
	return func(s *Seasonal) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMonitor sets the monitor absorbed faults are reported to.
func WithMonitor(m monitoring.Monitor) Option {
	return func(s *Seasonal) {
		if m != nil {
			s.mon = m
		}
	}
}

// Seasonal is the weekday-seasonal forecaster. It is safe for concurrent use
// when its random source is.
type Seasonal struct {
	rnd RandomSource
	log logger.Logger
	mon monitoring.Monitor
}

// NewSeasonal returns a forecaster drawing jitter from the global generator
// unless WithRandom is given.
func NewSeasonal(opts ...Option) *Seasonal {
	s := &Seasonal{rnd: globalSource{}, log: logger.Nop{}, mon: monitoring.NopMonitor{}}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Predict projects the Horizon days following the latest record. An empty
// series yields no predictions with InsufficientDataText; a fault yields no
// predictions with FaultText and the error source.
func (s *Seasonal) Predict(series []model.DailyRecord) model.PredictionResult {
	f, err := s.Forecast(series)
	switch {
	case errors.Is(err, ErrNoData):
		return model.PredictionResult{
			Predictions: []model.PredictionPoint{},
			Insight:     InsufficientDataText,
			Source:      model.SourceLocalAnalysis,
		}
	case err != nil:
		s.log.Errorf("error generating predictions: %v", err)
		s.mon.CaptureException(err, map[string]string{"component": "forecast"})
		return model.PredictionResult{
			Predictions: []model.PredictionPoint{},
			Insight:     FaultText,
			Source:      model.SourceError,
		}
	}
	return model.PredictionResult{Predictions: f.Points, Insight: f.Insight(), Source: model.SourceLocalAnalysis}
}

// Forecast computes the projection. Records are ordered by date before the
// trend halves are taken, so unsorted input gives the same result as sorted
// input.
func (s *Seasonal) Forecast(series []model.DailyRecord) (f Forecast, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrComputation, r)
		}
	}()
	if len(series) == 0 {
		return Forecast{}, ErrNoData
	}
	for _, r := range series {
		if err := r.Validate(); err != nil {
			return Forecast{}, fmt.Errorf("forecast: %w", err)
		}
	}

	sorted := make([]model.DailyRecord, len(series))
	copy(sorted, series)
	sort.SliceStable(sorted, func(i, j int) bool {
		return model.Day(sorted[i].Date).Before(model.Day(sorted[j].Date))
	})

	sessions := make([]float64, len(sorted))
	energy := make([]float64, len(sorted))
	var bucketSum, bucketCount [7]float64
	for i, r := range sorted {
		sessions[i] = float64(r.Sessions)
		energy[i] = r.EnergyDelivered
		wd := model.Day(r.Date).Weekday()
		bucketSum[wd] += sessions[i]
		bucketCount[wd]++
	}

	f.Days = len(sorted)
	f.AvgSessions = stat.Mean(sessions, nil)
	f.AvgEnergy = stat.Mean(energy, nil)
	f.Trend = trend(sessions)

	ratio := 0.0
	if f.AvgSessions > 0 {
		ratio = f.AvgEnergy / f.AvgSessions
	}

	last := model.Day(sorted[len(sorted)-1].Date)
	f.Points = make([]model.PredictionPoint, 0, Horizon)
	f.Bases = make([]float64, 0, Horizon)
	f.Seasonal = make([]bool, 0, Horizon)
	for i := 1; i <= Horizon; i++ {
		next := last.AddDate(0, 0, i)
		wd := next.Weekday()
		seasonal := bucketCount[wd] > 0
		var base float64
		if seasonal {
			base = bucketSum[wd] / bucketCount[wd]
		} else {
			base = f.AvgSessions * (1 + f.Trend/100*float64(i)/Horizon)
		}
		base = math.Max(base, 0)
		predicted := int(math.Round(base * s.jitter()))
		f.Points = append(f.Points, model.PredictionPoint{
			Date:              next,
			PredictedSessions: predicted,
			PredictedEnergy:   round1(float64(predicted) * ratio),
		})
		f.Bases = append(f.Bases, base)
		f.Seasonal = append(f.Seasonal, seasonal)
	}
	return f, nil
}

func (s *Seasonal) jitter() float64 {
	return jitterLow + s.rnd.Float64()*jitterSpan
}

// trend compares the mean of the second half of xs with the first half, in
// percent. The first half holds floor(n/2) values. Short series and a zero
// first-half mean have no trend.
func trend(xs []float64) float64 {
	if len(xs) < minTrendDays {
		return 0
	}
	half := len(xs) / 2
	first := stat.Mean(xs[:half], nil)
	second := stat.Mean(xs[half:], nil)
	if first == 0 {
		return 0
	}
	return (second - first) / first * 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

