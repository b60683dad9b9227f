package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/cargostow/pkg/export"
	"github.com/dshills/cargostow/pkg/stowage"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "Path to YAML scenario file (required)")
	outputDir  = flag.String("output", ".", "Output directory for exported files")
	format     = flag.String("format", "json", "Export format: json, svg, or all")
	seedFlag   = flag.Uint64("seed", 0, "Override the seed from config (0 = use config seed)")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("stowctl version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"json": true, "svg": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, svg, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	if *verbose {
		fmt.Printf("Loading scenario from %s\n", *configPath)
	}

	sc, err := loadScenario(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	if *seedFlag != 0 {
		if *verbose {
			fmt.Printf("Overriding seed from %d to %d\n", sc.Config.Seed, *seedFlag)
		}
		sc.Config.Seed = *seedFlag
	}

	if *verbose {
		fmt.Printf("Using seed: %d\n", sc.Config.Seed)
		fmt.Printf("Containers: %d, Items: %d\n", len(sc.Containers), len(sc.Items))
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	coord := stowage.New(&sc.Config)
	containers := sc.buildContainers()
	for _, c := range containers {
		coord.AddContainer(c)
	}
	items := sc.buildItems(time.Now())
	for _, it := range items {
		coord.AddItem(it)
	}

	start := time.Now()
	if *verbose {
		fmt.Println("Planning placement...")
	}

	results := coord.PlanPlacement(containers, items)
	for _, r := range results {
		if r.ContainerID == "" {
			continue
		}
		coord.PlaceItem(r.Item.ID, r.ContainerID, r.Position)
	}

	elapsed := time.Since(start)
	if *verbose {
		fmt.Printf("Placement completed in %v\n", elapsed)
	}

	report, err := coord.Validate(ctx)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if *verbose {
		fmt.Printf("Validation passed: %v\n", report.Passed)
		for _, e := range report.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	baseName := fmt.Sprintf("stowage_%d", sc.Config.Seed)

	if *format == "json" || *format == "all" {
		if err := exportJSON(coord, baseName); err != nil {
			return err
		}
	}
	if *format == "svg" || *format == "all" {
		if err := exportSVG(coord, baseName, sc.Config.Seed); err != nil {
			return err
		}
	}

	fmt.Printf("Successfully planned stowage (seed=%d) in %v\n", sc.Config.Seed, elapsed)
	return nil
}

func exportJSON(coord *stowage.Coordinator, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Exporting JSON to %s\n", filename)
	}

	data, err := export.MarshalSystem(coord.System())
	if err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}

	if *verbose {
		fmt.Printf("  Wrote %d bytes\n", len(data))
	}
	return nil
}

func exportSVG(coord *stowage.Coordinator, baseName string, seed uint64) error {
	for _, container := range coord.System().Containers {
		filename := filepath.Join(*outputDir, fmt.Sprintf("%s_%s.svg", baseName, container.ID))
		if *verbose {
			fmt.Printf("Exporting SVG to %s\n", filename)
		}

		opts := export.DefaultSVGOptions()
		opts.Title = fmt.Sprintf("Container %s (seed=%d)", container.ID, seed)

		data, err := export.RenderContainerSVG(container, opts)
		if err != nil {
			return fmt.Errorf("failed to export SVG for container %s: %w", container.ID, err)
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("failed to write SVG: %w", err)
		}

		if *verbose {
			fmt.Printf("  Wrote %d bytes\n", len(data))
		}
	}
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: stowctl -config <scenario.yaml> [options]\n\n")
	flag.PrintDefaults()
}

func printHelp() {
	fmt.Println("stowctl - cargo stowage planning CLI")
	fmt.Println()
	printUsage()
}
