package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/chargeinsight/app"
	"github.com/kilianp07/chargeinsight/core/analytics"
	"github.com/kilianp07/chargeinsight/core/dashboard"
	"github.com/kilianp07/chargeinsight/core/model"
	"github.com/kilianp07/chargeinsight/pkg/export"
)

// reportFlags are the flags of the report subcommands.
type reportFlags struct {
	rangeValue string
	seed       uint64
	format     string
}

func (f *reportFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.rangeValue, "range", "r", "", "date range: 7d, 14d or 30d (default from config)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed for reproducible forecasts")
}

// view loads the configured dataset and builds the view of the requested
// range. Logs go to stderr so that stdout only carries the report.
func (f *reportFlags) view(cmd *cobra.Command, opts *options) (dashboard.View, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return dashboard.View{}, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Analytics.Seed = f.seed
	}
	w := cfg.Analytics.Window()
	if f.rangeValue != "" {
		if w, err = model.ParseWindow(f.rangeValue); err != nil {
			return dashboard.View{}, err
		}
	}
	eng, err := app.NewEngine(cfg, app.NewLogger(cfg.Logging, "cli", cmd.ErrOrStderr()))
	if err != nil {
		return dashboard.View{}, err
	}
	defer eng.Monitor.Flush(0)
	return eng.View(w), nil
}

type renderer func(io.Writer, dashboard.View) error

// newReportCmd builds a report subcommand. renderers maps each supported
// --format value to its writer; the table format is always present.
func newReportCmd(use, short string, opts *options, renderers map[export.Format]renderer) *cobra.Command {
	f := &reportFlags{}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := export.ParseFormat(f.format)
			if err != nil {
				return err
			}
			render, ok := renderers[format]
			if !ok {
				return fmt.Errorf("%s does not support format %s", use, format)
			}
			v, err := f.view(cmd, opts)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), v)
		},
	}
	f.bind(cmd)
	if len(renderers) > 1 {
		cmd.Flags().StringVarP(&f.format, "format", "f", string(export.FormatTable), "output format: "+formatList(renderers))
	}
	return cmd
}

// formatList names the supported formats in a stable order.
func formatList(renderers map[export.Format]renderer) string {
	var names []string
	for _, f := range []export.Format{export.FormatTable, export.FormatCSV, export.FormatJSON} {
		if _, ok := renderers[f]; ok {
			names = append(names, string(f))
		}
	}
	return strings.Join(names, ", ")
}

func newSummaryCmd(opts *options) *cobra.Command {
	return newReportCmd("summary", "Print the summary statistics of a range", opts, map[export.Format]renderer{
		export.FormatTable: renderSummary,
		export.FormatCSV: func(w io.Writer, v dashboard.View) error {
			return export.WriteDailyCSV(w, v.Daily)
		},
	})
}

func newInsightsCmd(opts *options) *cobra.Command {
	return newReportCmd("insights", "Print the usage insights of a range", opts, map[export.Format]renderer{
		export.FormatTable: renderInsights,
	})
}

func newForecastCmd(opts *options) *cobra.Command {
	return newReportCmd("forecast", "Print the seven day forecast", opts, map[export.Format]renderer{
		export.FormatTable: renderForecast,
		export.FormatCSV: func(w io.Writer, v dashboard.View) error {
			return export.WriteForecastCSV(w, v.Forecast)
		},
		export.FormatJSON: func(w io.Writer, v dashboard.View) error {
			return export.WriteForecastJSON(w, v.Forecast)
		},
	})
}

func newHeatmapCmd(opts *options) *cobra.Command {
	return newReportCmd("heatmap", "Print the weekly usage heatmap", opts, map[export.Format]renderer{
		export.FormatTable: renderHeatmap,
	})
}

func renderSummary(w io.Writer, v dashboard.View) error {
	if _, err := fmt.Fprintf(w, "Range %s, %d days\n\n", v.Range, len(v.Daily)); err != nil {
		return err
	}
	s := v.Summary
	if !s.HasData {
		_, err := fmt.Fprintln(w, analytics.NoDataMessage)
		return err
	}
	peak := model.Day(s.PeakDay.Date)
	t := newTable(w, "Metric", "Value")
	t.addRow("Total sessions", strconv.Itoa(s.TotalSessions))
	t.addRow("Energy delivered", fmt.Sprintf("%.1f kWh", s.TotalEnergy))
	t.addRow("Avg energy/session", fmt.Sprintf("%.1f kWh", s.AvgEnergyPerSession))
	t.addRow("Peak day", fmt.Sprintf("%s %s (%d sessions)", peak.Weekday().String()[:3], peak.Format("Jan 2"), s.PeakDay.Sessions))
	return t.render()
}

func renderInsights(w io.Writer, v dashboard.View) error {
	_, err := fmt.Fprintf(w, "%s\n\nsource: %s\n", v.Insights.Text, v.Insights.Source)
	return err
}

func renderForecast(w io.Writer, v dashboard.View) error {
	if len(v.Forecast.Predictions) > 0 {
		t := newTable(w, "Date", "Day", "Sessions", "Energy kWh")
		for _, p := range v.Forecast.Predictions {
			t.addRow(
				p.Date.Format(model.DateLayout),
				p.Date.Weekday().String()[:3],
				strconv.Itoa(p.PredictedSessions),
				strconv.FormatFloat(p.PredictedEnergy, 'f', 1, 64),
			)
		}
		if err := t.render(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, v.Forecast.Insight)
	return err
}

func renderHeatmap(w io.Writer, v dashboard.View) error {
	headers := make([]string, 0, 25)
	headers = append(headers, "Day")
	for h := 0; h < 24; h++ {
		label := ""
		if h%3 == 0 {
			label = analytics.HeatmapHours[h/3]
		}
		headers = append(headers, label)
	}
	t := newTable(w, headers...)
	for d, row := range v.Heatmap {
		cells := make([]string, 0, 25)
		cells = append(cells, analytics.HeatmapDays[d])
		for _, c := range row {
			cells = append(cells, strconv.Itoa(analytics.HeatLevel(c)))
		}
		t.addRow(cells...)
	}
	if err := t.render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nintensity 0-5, busiest cell %d sessions\n", v.Heatmap.Max())
	return err
}
