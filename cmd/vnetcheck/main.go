package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/tailored-agentic-units/vehiclenet/alloc"
	"github.com/tailored-agentic-units/vehiclenet/fixture"
	"github.com/tailored-agentic-units/vehiclenet/holder"
	"github.com/tailored-agentic-units/vehiclenet/observability"
	"github.com/tailored-agentic-units/vehiclenet/vnet"
)

func main() {
	var (
		configFile  = flag.String("config", "", "Path to config JSON or YAML file")
		fixtureFile = flag.String("fixture", "", "Path to fixture document (required)")
		rounds      = flag.Int("rounds", 3, "Number of share/copy/release rounds")
		maxBytes    = flag.Int64("max-bytes", 0, "Cap on live buffer bytes (overrides config)")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	if *fixtureFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: vnetcheck -fixture <file> [-config <file>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := vnet.DefaultConfig()
	if *configFile != "" {
		loaded, err := vnet.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}
	if *maxBytes > 0 {
		cfg.Alloc.MaxBytes = *maxBytes
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	rec := observability.NewRecorder()
	rt, err := vnet.New(&cfg, vnet.WithObserver(observability.NewMultiObserver(
		observability.NewSlogObserver(logger),
		rec,
	)))
	if err != nil {
		log.Fatalf("Failed to create runtime: %v", err)
	}

	doc, err := fixture.Load(*fixtureFile)
	if err != nil {
		log.Fatalf("Failed to load fixture: %v", err)
	}

	if err := run(rt, doc, *rounds); err != nil {
		log.Fatalf("Lifecycle check failed: %v", err)
	}

	stats := rt.Stats()
	fmt.Printf("Policy:       %s\n", alloc.BuildPolicy)
	fmt.Printf("Allocations:  %d\n", stats.Allocs)
	fmt.Printf("Frees:        %d\n", stats.Frees)
	fmt.Printf("Failures:     %d\n", stats.Failures)
	fmt.Printf("Destroyed:    %d lists\n", rec.Count(holder.EventDestroy))
	fmt.Printf("Live:         %d bytes in %d buffers, %d records\n", stats.LiveBytes, stats.LiveBuffers, stats.LiveRecords)

	if stats.Leaked() {
		fmt.Println("\nLEAK")
		os.Exit(1)
	}
}

// run loads the fixture into owning lists, then repeatedly shares them,
// builds a borrowing view and an owning copy batch, and releases everything.
func run(rt *vnet.Runtime, doc *fixture.Document, rounds int) (err error) {
	values, err := rt.LoadValues(doc)
	if err != nil {
		return err
	}
	defer release(&err, values)

	configs, err := rt.LoadConfigs(doc)
	if err != nil {
		return err
	}
	defer release(&err, configs)

	for i := range rounds {
		if err := round(rt, values, configs); err != nil {
			return fmt.Errorf("round %d: %w", i+1, err)
		}
	}
	return nil
}

func round(rt *vnet.Runtime, values *holder.ValueList, configs *holder.ConfigList) (err error) {
	shared, err := values.Acquire()
	if err != nil {
		return err
	}
	defer release(&err, shared)

	sharedConfigs, err := configs.Acquire()
	if err != nil {
		return err
	}
	defer release(&err, sharedConfigs)

	view := rt.NewValueList(holder.Borrowing)
	defer release(&err, view)

	batch := rt.NewValueList(holder.Owning)
	defer release(&err, batch)

	for v := range shared.All() {
		if _, ok := sharedConfigs.Find(v.Prop); !ok {
			continue
		}
		if err := view.Append(v); err != nil {
			return err
		}
		if err := batch.AppendCopy(v); err != nil {
			return err
		}
	}
	return nil
}

type releaser interface {
	Release() error
}

func release(err *error, l releaser) {
	if rerr := l.Release(); rerr != nil {
		*err = errors.Join(*err, rerr)
	}
}
