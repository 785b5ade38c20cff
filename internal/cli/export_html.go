package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/pocket2pinboard/internal/config"
	"github.com/mrlokans/pocket2pinboard/internal/database"
	"github.com/mrlokans/pocket2pinboard/internal/exporters"
)

// ExportHTMLCommand renders a bookmark HTML file from a previously
// imported database instead of fresh CSV input.
type ExportHTMLCommand struct {
	DatabasePath string
	OutputPath   string

	cfg *config.Config
}

func NewExportHTMLCommand() *ExportHTMLCommand {
	return &ExportHTMLCommand{cfg: config.NewConfig()}
}

func (cmd *ExportHTMLCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export-html", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cmd.cfg.Database.Path, "Path to the bookmark database")
	fs.StringVar(&cmd.OutputPath, "output", cmd.cfg.Output.Path, "Path for the generated HTML bookmark file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export-html [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Render a Netscape bookmark HTML file from bookmarks previously saved\n")
		fmt.Fprintf(os.Stderr, "with 'convert -db'.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ExportHTMLCommand) Run() error {
	if _, err := os.Stat(cmd.DatabasePath); os.IsNotExist(err) {
		return fmt.Errorf("database not found: %s", cmd.DatabasePath)
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	bookmarks, err := db.GetAllBookmarks()
	if err != nil {
		return fmt.Errorf("failed to load bookmarks: %w", err)
	}

	f, err := os.Create(cmd.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	result, err := exporters.NewNetscapeExporter().Export(f, bookmarks)
	if err != nil {
		return fmt.Errorf("failed to render bookmarks: %w", err)
	}

	fmt.Printf("Exported %d bookmarks to %s\n", result.BookmarksProcessed, cmd.OutputPath)
	return nil
}
