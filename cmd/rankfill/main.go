// Command rankfill completes the university ranking sheet.
//
// It reads "assets/Ranking - Sheet1.csv" relative to the working directory,
// estimates every missing Score from the Ranking column, stamps the
// 2024-2025 academic year onto each row and writes
// "assets/Ranking - Sheet1-completed.csv". Run statistics are printed to
// stdout; failures are printed to stderr and exit with status 1.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"rankcli/internal/config"
	"rankcli/internal/exporter"
	"rankcli/internal/files"
	"rankcli/internal/infrastructure"
	"rankcli/internal/services"
)

func main() {
	os.Exit(run(context.Background(), os.Stdout, os.Stderr))
}

// run executes one completion and returns the process exit code
func run(ctx context.Context, stdout, stderr io.Writer) int {
	paths, err := config.GetPaths()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	rt, err := infrastructure.Start(ctx, "rankfill", paths)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer rt.Close()

	writer := exporter.NewCSVWriter(files.NewManager(paths))
	svc, err := services.NewCompletionService(writer, rt.Telemetry.Tracer, rt.Metrics, rt.Logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	summary, err := svc.Run(ctx, paths.RankingCSV, paths.CompletedCSV)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Completed data written to %s\n", config.RankingOutputFile)
	fmt.Fprintf(stdout, "Processed %d universities\n", summary.Total)
	fmt.Fprintf(stdout, "Universities with scores: %d\n", summary.WithScore)
	fmt.Fprintf(stdout, "Universities without scores: %d\n", summary.WithoutScore)
	fmt.Fprintln(stdout, "Data completion successful!")
	return 0
}
