package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"teeiq-server/config"
	"teeiq-server/di"
	"teeiq-server/models/teesheet"
	"teeiq-server/pipeline"
	"teeiq-server/pricing"
	"teeiq-server/util"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	env := flag.String("env", envOrDefault("TEEIQ_ENV", "dev"), "runtime environment (dev|prod)")
	demo := flag.Bool("demo", false, "run an offline demo pass over generated tee times and exit")
	flag.Parse()

	if *demo {
		runDemo()
		return
	}

	container := di.NewContainer(*env)

	fmt.Println("refreshing weather!")
	if err := container.WeatherRefresherService.RefreshWeatherData(); err != nil {
		log.Println("Initial weather refresh failed:", err)
	}
	fmt.Println("starting periodic job!")
	container.WeatherRefresherService.StartPeriodicJob(config.WEATHER_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.TeeIQHttpServer.Start()
}

// runDemo generates a synthetic tee sheet, prints the KPIs and top
// opportunities and writes the utilization heatmap next to the binary.
func runDemo() {
	records := util.MakeDemoTeeTimes(28, 6, 6, 19, 42)

	binned, err := pipeline.AssignSlots(records, config.DEFAULT_SLOT_MINUTES)
	if err != nil {
		log.Fatalf("Failed to bin demo tee times: %v", err)
	}

	kpis := pipeline.KPIs(binned)
	color.Cyan("Demo tee sheet: %d tee times over 28 days", len(binned))
	fmt.Printf("  utilization:       %.1f%%\n", kpis.Util*100)
	fmt.Printf("  open slots:        %d\n", kpis.TotalSlots-kpis.Booked)
	fmt.Printf("  booked revenue:    $%.2f\n", kpis.Revenue)
	fmt.Printf("  open-slot value:   $%.2f\n", kpis.Potential)

	opportunities, err := pricing.DetectLowFill(
		pipeline.Aggregate(binned),
		config.DEFAULT_UTIL_THRESHOLD,
		config.DEFAULT_MIN_SLOTS,
		config.TargetUtil())
	if err != nil {
		log.Fatalf("Failed to detect opportunities: %v", err)
	}
	pricing.SortWorstFirst(opportunities)

	color.Yellow("Low-fill opportunities: %d", len(opportunities))
	for i, opp := range opportunities {
		if i >= 10 {
			fmt.Printf("  ... and %d more\n", len(opportunities)-10)
			break
		}
		printOpportunity(opp)
	}

	heatmapPath := "demo_heatmap.html"
	util.PlotUtilizationHeatmap(heatmapPath, pipeline.UtilizationMatrix(binned))
	color.Green("Wrote %s", heatmapPath)
}

func printOpportunity(opp teesheet.Opportunity) {
	fmt.Printf("  %-9s %s  util=%.2f  -%.0f%% -> $%.2f  (+$%.2f/mo)\n",
		opp.Weekday, opp.SlotLabel, opp.Util,
		opp.SuggestedDiscount*100, opp.NewPrice, opp.EstMonthlyLift)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
