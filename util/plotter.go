package util

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"teeiq-server/models/teesheet"
)

// RenderUtilizationHeatmap renders a weekday x hour utilization heatmap as
// an HTML chart into w.
func RenderUtilizationHeatmap(w io.Writer, cells []teesheet.HeatCell) error {
	// Collect the hours that actually appear so the x axis stays compact.
	seen := make(map[int]bool)
	var hours []int
	for _, cell := range cells {
		if !seen[cell.Hour] {
			seen[cell.Hour] = true
			hours = append(hours, cell.Hour)
		}
	}
	// hours arrive sorted from the aggregation, but dedupe order follows
	// first appearance; normalize it.
	for i := 0; i < len(hours); i++ {
		for j := i + 1; j < len(hours); j++ {
			if hours[j] < hours[i] {
				hours[i], hours[j] = hours[j], hours[i]
			}
		}
	}
	hourPos := make(map[int]int, len(hours))
	xLabels := make([]string, len(hours))
	for i, h := range hours {
		hourPos[h] = i
		xLabels[i] = fmt.Sprintf("%02d:00", h)
	}

	data := make([]opts.HeatMapData, 0, len(cells))
	for _, cell := range cells {
		row := teesheet.WeekdayIndex(cell.Weekday)
		if row < 0 {
			continue
		}
		data = append(data, opts.HeatMapData{
			Value: [3]interface{}{hourPos[cell.Hour], row, cell.Util},
		})
	}

	heatmap := charts.NewHeatMap()
	heatmap.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Utilization Heatmap",
			Width:     "1000px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Utilization Heatmap"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xLabels, Name: "Hour of Day"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: teesheet.WEEK_ORDER}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        1,
		}),
	)
	heatmap.AddSeries("utilization", data)

	return heatmap.Render(w)
}

// PlotUtilizationHeatmap writes the heatmap to an HTML file on disk.
func PlotUtilizationHeatmap(filename string, cells []teesheet.HeatCell) {
	f, err := os.Create(filename)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := RenderUtilizationHeatmap(f, cells); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Utilization heatmap generated: " + filename)
}
