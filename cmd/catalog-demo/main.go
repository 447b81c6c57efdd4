// Package main runs a scripted walkthrough of the library catalog: it seeds books, looks some up,
// lends and returns one, and prints the available books, the activity log and the statistics report.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/AntonStoeckl/library-catalog-go/activitylog"
	"github.com/AntonStoeckl/library-catalog-go/catalog"
	"github.com/AntonStoeckl/library-catalog-go/config"
	"github.com/AntonStoeckl/library-catalog-go/oteladapters"
)

const (
	instrumentationName = "library-catalog-demo"
	shutdownTimeout     = 5 * time.Second
)

type flags struct {
	configPath           string
	observabilityEnabled bool
	exportPath           string
}

func main() {
	if err := run(parseFlags(), os.Stdout, os.Stderr); err != nil {
		log.Printf("catalog-demo: %v", err)
		os.Exit(1)
	}
}

// run wires the catalog from the config and runs the demo. Deferred cleanup has finished when it returns.
func run(f flags, out, logOut io.Writer) error {
	cfg, loadedFrom, err := loadConfig(f.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if f.observabilityEnabled {
		cfg.Observability.Enabled = true
	}

	handler, err := cfg.Logging.NewSlogHandler(logOut)
	if err != nil {
		return fmt.Errorf("create log handler: %w", err)
	}

	runID := uuid.NewString()
	logger := slog.New(handler).With("run_id", runID)

	if loadedFrom != "" {
		logger.Info("config loaded", "path", loadedFrom)
	}

	ctx := context.Background()
	storeOptions := []catalog.Option{catalog.WithLogger(logger)}

	if cfg.Observability.Enabled {
		providers, err := config.NewObservabilityProviders(ctx, cfg.Observability, logOut)
		if err != nil {
			return fmt.Errorf("create observability providers: %w", err)
		}

		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := providers.Shutdown(shutdownCtx); err != nil {
				logger.Error("observability shutdown failed", "error", err)
			}
		}()

		storeOptions = append(storeOptions,
			catalog.WithContextualLogger(oteladapters.NewSlogBridgeLogger(instrumentationName)),
			catalog.WithMetrics(oteladapters.NewMetricsCollector(otel.Meter(instrumentationName))),
			catalog.WithTracing(oteladapters.NewTracingCollector(otel.Tracer(instrumentationName))),
		)

		logger.Info("observability enabled", "exporter", cfg.Observability.Exporter)
	}

	activityLog, err := activitylog.NewLog(cfg.ActivityLogOptions()...)
	if err != nil {
		return fmt.Errorf("create activity log: %w", err)
	}

	store, err := catalog.NewStore(activityLog, storeOptions...)
	if err != nil {
		return fmt.Errorf("create catalog store: %w", err)
	}

	runDemo(ctx, store, cfg.SeedBooks, out)

	if f.exportPath != "" {
		if err := exportActivityLog(activityLog, f.exportPath); err != nil {
			return fmt.Errorf("export activity log: %w", err)
		}

		logger.Info("activity log exported", "path", f.exportPath, "entries", activityLog.Len())
	}

	return nil
}

func parseFlags() flags {
	var f flags

	flag.StringVar(&f.configPath, "config", "", "Path to the YAML config file (default: $"+config.EnvConfigPath+" or ./"+config.ConfigFileName+")")
	flag.BoolVar(&f.observabilityEnabled, "observability-enabled", false, "Enable OpenTelemetry observability")
	flag.StringVar(&f.exportPath, "export-jsonl", "", "Write the activity log as JSON lines to this file")

	flag.Parse()

	return f
}

func loadConfig(path string) (*config.Config, string, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}

	return config.Load()
}

// runDemo seeds the store and walks through lookups, lending, and reporting.
func runDemo(ctx context.Context, store *catalog.Store, seedBooks []config.SeedBook, out io.Writer) {
	for _, seedBook := range seedBooks {
		store.Add(ctx, seedBook.Book())
	}

	if len(seedBooks) == 0 {
		fmt.Fprintln(out, "No seed books configured.")
		return
	}

	first := seedBooks[0]

	fmt.Fprintln(out, "=== FIND BY ID ===")
	if book, found := store.FindByID(ctx, first.ID); found {
		fmt.Fprintln(out, book)
	} else {
		fmt.Fprintf(out, "Book %d not found\n", first.ID)
	}

	fmt.Fprintf(out, "\n=== BOOKS BY %s ===\n", first.Author)
	printBooks(out, store.FindByAuthor(ctx, first.Author))

	fmt.Fprintln(out, "\n=== LENDING ===")
	fmt.Fprintf(out, "Borrow book %d: %t\n", first.ID, store.Borrow(ctx, first.ID))
	fmt.Fprintf(out, "Borrow book %d again: %t\n", first.ID, store.Borrow(ctx, first.ID))
	fmt.Fprintf(out, "Return book %d: %t\n", first.ID, store.Return(ctx, first.ID))

	fmt.Fprintln(out, "\n=== AVAILABLE BOOKS ===")
	printBooks(out, store.ListAvailable(ctx))

	fmt.Fprintln(out, "\n=== ACTIVITY LOG ===")
	fmt.Fprint(out, store.RenderActivityLog(ctx))

	fmt.Fprintln(out)
	fmt.Fprintln(out, store.StatisticsReport(ctx))
}

func printBooks(out io.Writer, books []catalog.Book) {
	if len(books) == 0 {
		fmt.Fprintln(out, "(none)")
		return
	}

	for _, book := range books {
		fmt.Fprintln(out, book)
	}
}

func exportActivityLog(activityLog *activitylog.Log, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := activityLog.ExportJSONLines(file); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
