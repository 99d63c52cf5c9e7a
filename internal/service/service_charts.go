package service

import (
	"fmt"
	"html/template"
	"strconv"

	"github.com/JahangirOsman/hdp-webapp/internal/dataset"
	"github.com/JahangirOsman/hdp-webapp/internal/logger"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	chartWidth  = "700px"
	chartHeight = "420px"

	// width of one max-heart-rate histogram bucket, in bpm
	heartRateBinWidth = 10
)

// sexLabels maps the dataset's sex codes to display names.
var sexLabels = [2]string{"Female", "Male"}

// ChartFragment is one chart rendered as an embeddable markup fragment:
// the placeholder element and the script that draws into it.
//
// Both parts come from the go-echarts renderer and are trusted markup;
// they are inserted into the page unescaped.
type ChartFragment struct {
	Title   string
	Element template.HTML
	Script  template.HTML
}

// chartService is the concrete implementation of ChartService. It holds the
// immutable dataset and recomputes the fragments on every call.
type chartService struct {
	data   *dataset.Dataset
	logger *logger.Logger
}

// NewChartService constructs a ChartService over the loaded dataset.
func NewChartService(data *dataset.Dataset, logger *logger.Logger) ChartService {
	return &chartService{
		data:   data,
		logger: logger,
	}
}

// BuildCharts renders the four dataset views. Chart IDs are fixed so that
// repeated calls produce identical fragments.
func (s *chartService) BuildCharts() []ChartFragment {
	return []ChartFragment{
		s.ageCholesterolScatter(),
		s.chestPainBar(),
		s.maxHeartRateHistogram(),
		s.cholesterolBox(),
	}
}

func (s *chartService) ageCholesterolScatter() ChartFragment {
	const title = "Cholesterol Levels by Age"

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{ChartID: "hdp-age-chol", Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Age", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Cholesterol"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	bySex := s.data.AgeCholesterolBySex()
	for sex, points := range bySex {
		series := make([]opts.ScatterData, 0, len(points))
		for _, pt := range points {
			series = append(series, opts.ScatterData{
				Value:      []interface{}{pt.Age, pt.Cholesterol},
				SymbolSize: 8,
			})
		}
		scatter.AddSeries(sexLabels[sex], series)
	}

	snippet := scatter.RenderSnippet()
	return toFragment(title, snippet.Element, snippet.Script)
}

func (s *chartService) chestPainBar() ChartFragment {
	const title = "Chest Pain Type Distribution"

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{ChartID: "hdp-cp-dist", Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Chest Pain Type"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	codes, counts := s.data.ChestPainCounts()
	x := make([]string, len(codes))
	items := make([]opts.BarData, len(codes))
	for i := range codes {
		x[i] = strconv.Itoa(codes[i])
		items[i] = opts.BarData{Value: counts[i]}
	}

	bar.SetXAxis(x).AddSeries("Count", items)

	snippet := bar.RenderSnippet()
	return toFragment(title, snippet.Element, snippet.Script)
}

func (s *chartService) maxHeartRateHistogram() ChartFragment {
	const title = "Distribution of Max Heart Rate"

	hist := charts.NewBar()
	hist.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{ChartID: "hdp-thalach-hist", Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Max Heart Rate"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Patients"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	bins := s.data.MaxHeartRateBins(heartRateBinWidth)
	x := make([]string, len(bins))
	items := make([]opts.BarData, len(bins))
	for i, b := range bins {
		x[i] = fmt.Sprintf("%d-%d", b.From, b.To)
		items[i] = opts.BarData{Value: b.Count}
	}

	hist.SetXAxis(x).AddSeries("Patients", items,
		charts.WithBarChartOpts(opts.BarChart{BarCategoryGap: "0%"}),
	)

	snippet := hist.RenderSnippet()
	return toFragment(title, snippet.Element, snippet.Script)
}

func (s *chartService) cholesterolBox() ChartFragment {
	const title = "Cholesterol Levels by Sex"

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{ChartID: "hdp-chol-box", Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Sex (0=Female, 1=Male)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Cholesterol"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	summaries := s.data.CholesterolSummaryBySex()
	items := make([]opts.BoxPlotData, 0, len(summaries))
	for _, sum := range summaries {
		items = append(items, opts.BoxPlotData{
			Value: []float64{sum.Min, sum.Q1, sum.Median, sum.Q3, sum.Max},
		})
	}

	box.SetXAxis(sexLabels[:]).AddSeries("Cholesterol", items)

	snippet := box.RenderSnippet()
	return toFragment(title, snippet.Element, snippet.Script)
}

func toFragment(title, element, script string) ChartFragment {
	return ChartFragment{
		Title:   title,
		Element: template.HTML(element),
		Script:  template.HTML(script),
	}
}
