package analytics

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/kilianp07/chargeinsight/core/model"
)

const (
	// NoInsightDataText is returned when the bundle holds no daily records.
	NoInsightDataText = "No data available for analysis."
	// InsightFaultText is returned when the analysis could not be completed.
	InsightFaultText = "Unable to analyze data at this time."
	// Placeholder stands in for values that cannot be derived.
	Placeholder = "N/A"

	shortDateLayout = "Jan 2"
)

var (
	// ErrNoData is returned by AnalyzeBundle for an empty daily series.
	ErrNoData = errors.New("no daily usage data")
	// ErrComputation wraps panics recovered while analysing a bundle.
	ErrComputation = errors.New("analysis computation failed")
)

// Insights are the structured values behind the insight text.
type Insights struct {
	Days                int
	StartDate           time.Time
	EndDate             time.Time
	TotalSessions       int
	TotalEnergy         float64
	AvgSessionsPerDay   float64
	AvgEnergyPerSession float64
	PeakDay             model.DailyRecord
	WeekdayMean         float64
	WeekendMean         float64
	// WeekdayWeekendDiff is the rounded percentage by which weekday usage
	// exceeds weekend usage. It is NaN or infinite when one of the
	// partitions is empty or the weekend mean is zero.
	WeekdayWeekendDiff float64
	PeakHour           string
	TopStation         string
	BottomStation      string
}

// WeekdayDiffDefined reports whether the weekday/weekend comparison is a
// finite number.
func (in Insights) WeekdayDiffDefined() bool {
	return defined(in.WeekdayWeekendDiff)
}

// AnalyzeBundle computes the structured insights of b. Daily records are
// taken in input order: the first and last records bound the reported span.
func AnalyzeBundle(b model.Bundle) (in Insights, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrComputation, r)
		}
	}()
	daily := b.DailyUsage
	if len(daily) == 0 {
		return Insights{}, ErrNoData
	}
	if err := b.Validate(); err != nil {
		return Insights{}, fmt.Errorf("analyze bundle: %w", err)
	}

	in.Days = len(daily)
	in.StartDate = model.Day(daily[0].Date)
	in.EndDate = model.Day(daily[len(daily)-1].Date)
	in.TotalSessions = totalSessions(daily)
	in.TotalEnergy = round1(totalEnergy(daily))
	in.AvgSessionsPerDay = round1(float64(in.TotalSessions) / float64(in.Days))
	if in.TotalSessions > 0 {
		in.AvgEnergyPerSession = round1(in.TotalEnergy / float64(in.TotalSessions))
	}
	in.PeakDay, _ = peakDay(daily)

	var weekday, weekend []model.DailyRecord
	for _, d := range daily {
		if isWeekend(d) {
			weekend = append(weekend, d)
		} else {
			weekday = append(weekday, d)
		}
	}
	in.WeekdayMean = meanSessions(weekday)
	in.WeekendMean = meanSessions(weekend)
	in.WeekdayWeekendDiff = math.Round((in.WeekdayMean - in.WeekendMean) / in.WeekendMean * 100)

	in.PeakHour = Placeholder
	if len(b.HourlyUsage) > 0 {
		peak := b.HourlyUsage[0]
		for _, h := range b.HourlyUsage[1:] {
			if h.Sessions > peak.Sessions {
				peak = h
			}
		}
		in.PeakHour = peak.Hour
	}

	in.TopStation, in.BottomStation = Placeholder, Placeholder
	if len(b.StationUsage) > 0 {
		top, bottom := b.StationUsage[0], b.StationUsage[0]
		for _, s := range b.StationUsage[1:] {
			if s.Sessions > top.Sessions {
				top = s
			}
			if s.Sessions < bottom.Sessions {
				bottom = s
			}
		}
		in.TopStation, in.BottomStation = top.StationID, bottom.StationID
	}
	return in, nil
}

// Text renders the four-bullet summary.
func (in Insights) Text() string {
	bullets := []string{
		fmt.Sprintf("• Over the %d days analyzed (%s to %s), there were %d charging sessions with an average of %.1f sessions per day.",
			in.Days, in.StartDate.Format(shortDateLayout), in.EndDate.Format(shortDateLayout),
			in.TotalSessions, in.AvgSessionsPerDay),
		fmt.Sprintf("• Peak usage occurred on %s, %s with %d sessions, and the busiest time of day was around %s.",
			model.Day(in.PeakDay.Date).Weekday(), model.Day(in.PeakDay.Date).Format(shortDateLayout),
			in.PeakDay.Sessions, in.PeakHour),
		in.weekdayBullet(),
		fmt.Sprintf("• %s has the highest utilization while %s is underutilized, indicating potential for load balancing between stations.",
			in.TopStation, in.BottomStation),
	}
	return strings.Join(bullets, "\n\n")
}

func (in Insights) weekdayBullet() string {
	if !in.WeekdayDiffDefined() {
		return "• Weekday and weekend usage could not be compared for this period, so no weekend promotion is suggested yet."
	}
	return fmt.Sprintf("• Weekday usage is %.0f%% higher than weekend usage, suggesting an opportunity to implement weekend discount promotions.",
		in.WeekdayWeekendDiff)
}

// GenerateInsights returns the natural-language summary of b. It never fails:
// an empty daily series yields NoInsightDataText and any fault yields
// InsightFaultText with the error source.
func GenerateInsights(b model.Bundle) model.InsightResult {
	res, _ := generateInsights(b)
	return res
}

func generateInsights(b model.Bundle) (model.InsightResult, error) {
	in, err := AnalyzeBundle(b)
	switch {
	case errors.Is(err, ErrNoData):
		return model.InsightResult{Text: NoInsightDataText, Source: model.SourceLocalAnalysis}, nil
	case err != nil:
		return model.InsightResult{Text: InsightFaultText, Source: model.SourceError}, err
	}
	return model.InsightResult{Text: in.Text(), Source: model.SourceLocalAnalysis}, nil
}
