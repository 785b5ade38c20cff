package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mrlokans/pocket2pinboard/internal/config"
	"github.com/mrlokans/pocket2pinboard/internal/converter"
	"github.com/mrlokans/pocket2pinboard/internal/database"
	"github.com/mrlokans/pocket2pinboard/internal/exporters"
	"github.com/mrlokans/pocket2pinboard/internal/logger"
	"github.com/mrlokans/pocket2pinboard/internal/pocket"
)

// ConvertCommand handles converting Pocket CSV export files into a
// Netscape bookmark HTML file.
type ConvertCommand struct {
	InputPaths   []string
	OutputPath   string
	DatabasePath string
	SkipArchived bool
	DryRun       bool
	Verbose      bool

	cfg *config.Config
}

func NewConvertCommand() *ConvertCommand {
	return &ConvertCommand{cfg: config.NewConfig()}
}

func (cmd *ConvertCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)

	fs.StringVar(&cmd.OutputPath, "output", cmd.cfg.Output.Path, "Path for the generated HTML bookmark file")
	fs.StringVar(&cmd.DatabasePath, "db", "", "Also save parsed bookmarks to a local database at this path")
	fs.BoolVar(&cmd.SkipArchived, "skip-archived", cmd.cfg.Parser.SkipArchived, "Leave archived bookmarks out of the output")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Parse and report counts without writing anything")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s convert [options] <csv-file> [<csv-file>...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Convert Pocket CSV export files to a single Netscape bookmark HTML file\n")
		fmt.Fprintf(os.Stderr, "suitable for import into Pinboard and most browsers.\n\n")
		fmt.Fprintf(os.Stderr, "Input paths may be glob patterns. Files are processed in the order given;\n")
		fmt.Fprintf(os.Stderr, "rows without a URL are skipped.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Convert a single export:\n")
		fmt.Fprintf(os.Stderr, "  %s convert part_000000.csv\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Convert every export part and keep a local copy in sqlite:\n")
		fmt.Fprintf(os.Stderr, "  %s convert -db bookmarks.db 'part_*.csv'\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Preview what would be converted:\n")
		fmt.Fprintf(os.Stderr, "  %s convert -dry-run -verbose part_000000.csv\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	paths, err := expandGlobs(fs.Args())
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no input files provided")
	}
	cmd.InputPaths = paths

	return nil
}

func (cmd *ConvertCommand) Run() error {
	fmt.Println("Pocket CSV Conversion")
	fmt.Println("=====================")

	if cmd.DryRun {
		fmt.Println("DRY RUN MODE - No changes will be made")
		fmt.Println()
	}

	level := cmd.cfg.Log.Level
	if cmd.Verbose {
		level = "debug"
	}
	log := logger.New(level, cmd.cfg.Log.Pretty)
	defer log.Sync() //nolint:errcheck

	inputs, closers, err := openInputs(cmd.InputPaths)
	if err != nil {
		return err
	}
	defer closeAll(closers)

	fmt.Printf("Input files: %d\n", len(inputs))

	var store converter.Store
	if cmd.DatabasePath != "" && !cmd.DryRun {
		absDBPath, err := filepath.Abs(cmd.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to get absolute path for database: %w", err)
		}

		db, err := database.NewDatabase(absDBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		fmt.Printf("Saving to database: %s\n", absDBPath)
		store = db
	}

	pipeline := converter.NewPipeline(exporters.NewNetscapeExporter(), store, log, converter.Options{
		TagDelimiter: cmd.cfg.Parser.TagDelimiter,
		SkipArchived: cmd.SkipArchived,
	})

	var out io.Writer = io.Discard
	if !cmd.DryRun {
		f, err := os.Create(cmd.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	result, err := pipeline.Convert(inputs, out)
	if err != nil {
		log.Error("conversion failed", logger.Err(err))
		return err
	}

	fmt.Println("\n=== Conversion Summary ===")
	fmt.Printf("Bookmarks written: %d\n", result.BookmarksProcessed)
	fmt.Printf("Rows skipped: %d\n", result.RowsSkipped)
	if cmd.SkipArchived {
		fmt.Printf("Archived skipped: %d\n", result.ArchivedSkipped)
	}

	if cmd.DryRun {
		fmt.Println("\nDry run complete. Use without -dry-run to write the HTML file.")
		return nil
	}

	fmt.Printf("\nHTML file saved as: %s\n", cmd.OutputPath)
	return nil
}

// expandGlobs resolves glob patterns to file paths, keeping the order
// of the arguments. A pattern matching nothing is kept verbatim so
// the resulting open error names the path the user typed.
func expandGlobs(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			paths = append(paths, pattern)
			continue
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

func openInputs(paths []string) ([]pocket.Input, []io.Closer, error) {
	inputs := make([]pocket.Input, 0, len(paths))
	closers := make([]io.Closer, 0, len(paths))

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			closeAll(closers)
			return nil, nil, fmt.Errorf("failed to open input file: %w", err)
		}
		inputs = append(inputs, pocket.Input{Name: path, Reader: f})
		closers = append(closers, f)
	}

	return inputs, closers, nil
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		c.Close()
	}
}
