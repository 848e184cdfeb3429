package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"vinylvault/internal/adapters/discogs"
	"vinylvault/internal/app"
	"vinylvault/internal/config"
	"vinylvault/internal/domain"
	"vinylvault/internal/enrichment"
	"vinylvault/internal/logging"
	"vinylvault/internal/ratelimiting"
)

func renderCounts(title string, counts []domain.CountedLabel) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{"Label", "Count"})
	for _, c := range counts {
		tw.AppendRow(table.Row{c.Label, c.Count})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	return tw.Render()
}

func renderEstimate(estimate domain.ValueEstimate) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Estimated value (USD)")
	tw.AppendRow(table.Row{"Low", fmt.Sprintf("%.2f", estimate.Low)})
	tw.AppendRow(table.Row{"Mid", fmt.Sprintf("%.2f", estimate.Mid)})
	tw.AppendRow(table.Row{"High", fmt.Sprintf("%.2f", estimate.High)})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"Sampled", estimate.SampledItems})
	tw.AppendRow(table.Row{"Priced", estimate.PricedItems})
	tw.AppendRow(table.Row{"Total", estimate.TotalItems})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	return tw.Render()
}

func main() {
	estimate := flag.Bool("estimate", false, "also estimate collection value (roughly 1s per sampled item)")
	sample := flag.Int("sample", 25, "number of items to price when estimating (0 = all)")
	flag.Parse()

	conf, err := config.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The CLI output is the tables; keep log noise out of stdout
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := logging.AddToContext(context.Background(), logger)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}
	discogsAPI, err := discogs.NewDiscogsAPIOrMock(conf, httpClient)
	if err != nil {
		log.Fatalf("Failed to initialize Discogs API: %v", err)
	}

	getStats := app.BuildGetCollectionStats(discogsAPI)

	stats, err := getStats(ctx)
	if err != nil {
		log.Fatalf("Failed to get collection stats: %v", err)
	}

	fmt.Printf("Collection: %d items\n\n", stats.TotalItems)
	fmt.Println(renderCounts("Genres", stats.Genres))
	fmt.Println(renderCounts("Decades", stats.Decades))
	fmt.Println(renderCounts("Formats", stats.Formats))
	fmt.Println(renderCounts("Styles", stats.Styles))
	fmt.Println(renderCounts("Labels", stats.Labels))
	fmt.Println(renderCounts("Artists", stats.Artists))

	if len(stats.Years) > 0 {
		tw := table.NewWriter()
		tw.SetStyle(table.StyleRounded)
		tw.SetTitle("Releases by year")
		tw.AppendHeader(table.Row{"Year", "Count"})
		for _, y := range stats.Years {
			tw.AppendRow(table.Row{strconv.Itoa(y.Year), y.Count})
		}
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 2, Align: text.AlignRight},
		})
		fmt.Println(tw.Render())
	}

	if !*estimate {
		return
	}

	pacer := ratelimiting.NewFixedDelayPacer(enrichment.LookupDelay, nil)
	estimateValue := app.BuildEstimateCollectionValue(discogsAPI, discogsAPI, pacer)

	progress := func(processed, total int) {
		fmt.Fprintf(os.Stderr, "\rPricing items: %d/%d", processed, total)
		if processed == total {
			fmt.Fprintln(os.Stderr)
		}
	}

	result, err := estimateValue(ctx, *sample, progress)
	if err != nil {
		log.Fatalf("Failed to estimate collection value: %v", err)
	}

	fmt.Println(renderEstimate(result))
}
