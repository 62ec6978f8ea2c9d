package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/viant/afs"

	"github.com/OpenOmics/HiIP/internal/domain"
	"github.com/OpenOmics/HiIP/internal/report"
	"github.com/OpenOmics/HiIP/internal/repository"
	"github.com/OpenOmics/HiIP/internal/service"
)

// Options holds the command-line flags
type Options struct {
	Groups    string `short:"g" long:"groups" description:"Path or URL of the groups TSV file" required:"true"`
	Contrasts string `short:"c" long:"contrasts" description:"Path or URL of the contrasts TSV file"`
	Delim     string `short:"d" long:"delim" description:"Field delimiter (defaults to tab)"`
	Format    string `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Output    string `short:"o" long:"output" description:"Path to output file (if empty, writes to stdout)"`
	Pretty    bool   `long:"pretty" description:"Pretty print JSON output"`
	NoColor   bool   `long:"no-color" description:"Disable colored diagnostics"`
}

func main() {
	var opts Options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	sink := newColorSink(os.Stderr, !opts.NoColor)
	fs := afs.New()

	groupRepo := repository.NewTSVGroupRepository(fs, opts.Groups, opts.Delim, sink)
	var contrastRepo domain.ContrastRepository
	if opts.Contrasts != "" {
		contrastRepo = repository.NewTSVContrastRepository(fs, opts.Contrasts, opts.Delim, sink)
	}

	sheetService := service.NewSheetService(groupRepo, contrastRepo)
	config, err := sheetService.Load(context.Background())
	if err != nil {
		exitOnLoadError(sink, err)
	}

	var formatter report.OutputFormatter
	switch opts.Format {
	case "json":
		formatter = report.NewJSONFormatter(opts.Pretty)
	case "yaml":
		formatter = report.NewYAMLFormatter()
	default:
		exitWithError(fmt.Sprintf("Unsupported output format: %s", opts.Format))
		return
	}

	output, err := formatter.Format(config)
	if err != nil {
		exitWithError(fmt.Sprintf("Failed to format output: %v", err))
	}

	if opts.Output != "" {
		// If no extension is provided, add the formatter's default extension
		outputFile := opts.Output
		if !strings.Contains(outputFile, ".") {
			outputFile = fmt.Sprintf("%s.%s", outputFile, formatter.FileExtension())
		}
		if err := os.WriteFile(outputFile, output, 0644); err != nil {
			exitWithError(fmt.Sprintf("Failed to write output file: %v", err))
		}
	} else {
		fmt.Println(string(output))
	}
}

// exitOnLoadError renders a configuration failure and stops the run.
// ConfigError gets the colored two-line report the pipeline users know;
// anything else (unreadable file, I/O failure) exits generically.
func exitOnLoadError(sink *colorSink, err error) {
	var cfgErr *domain.ConfigError
	if !errors.As(err, &cfgErr) {
		exitWithError(err.Error())
		return
	}

	switch cfgErr.Kind {
	case domain.KindEmptyFile:
		sink.Errf("Error: groups file, %s, is empty!", cfgErr.File)
		sink.Errf("\t  └── %s", cfgErr.Detail)
	case domain.KindUndefinedGroups:
		sink.Errf("Error: the following group(s) in %q are not defined in the groups file!", cfgErr.File)
		sink.Errf("\t  └── %s", cfgErr.Detail)
	default:
		sink.Errf("Error: %v", cfgErr)
	}
	os.Exit(1)
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(1)
}
