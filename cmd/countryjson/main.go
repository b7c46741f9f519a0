// Command countryjson publishes the completed ranking sheet per country.
//
// It groups the rows of the completed sheet by Country and writes one JSON
// file per country plus summary.json. With -xlsx it also writes the same
// grouping as a workbook with one sheet per country.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"rankcli/internal/config"
	"rankcli/internal/files"
	"rankcli/internal/infrastructure"
	"rankcli/internal/services"
	"rankcli/pkg/contracts"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one export and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("countryjson", flag.ContinueOnError)
	flags.SetOutput(stderr)
	in := flags.String("in", config.RankingOutputFile, "completed ranking CSV")
	out := flags.String("out", config.DefaultCountryDataDir, "directory for the per-country JSON files")
	xlsx := flags.String("xlsx", "", "optional xlsx workbook to write as well")
	version := flags.Bool("version", false, "print version information and exit")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *version {
		fmt.Fprintln(stdout, contracts.GetFullVersionString("countryjson"))
		return 0
	}

	paths, err := config.GetPaths()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	rt, err := infrastructure.Start(ctx, "countryjson", paths)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer rt.Close()

	svc, err := services.NewCountryExportService(files.NewManager(paths), rt.Telemetry.Tracer, rt.Metrics, rt.Logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	result, err := svc.Run(ctx, absolute(paths, *in), absolute(paths, *out), absolute(paths, *xlsx))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Generated %d country files in %s\n", result.Countries, *out)
	fmt.Fprintf(stdout, "Generated %s with %d countries and %d universities\n",
		config.CountrySummaryFile, result.Countries, result.Universities)
	if *xlsx != "" {
		fmt.Fprintf(stdout, "Generated %s with %d country sheets\n", *xlsx, result.WorkbookSheets)
	}
	return 0
}

func absolute(paths *config.Paths, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(paths.BaseDir, path)
}
