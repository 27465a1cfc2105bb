// Package main provides the CLI entry point for romaneio.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/tecadi/romaneio/pkg/romaneio"
	"github.com/tecadi/romaneio/pkg/romaneio/fetch"
	"github.com/tecadi/romaneio/pkg/romaneio/sheet"
)

var (
	sharedURL   string
	filePath    string
	sheetName   string
	mappingPath string
	status      string
	timeout     time.Duration
	verbose     bool

	dateStr    string
	outputPath string
	logoPath   string
	selectKeys []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "romaneio",
		Short: "Generate shipment manifest PDFs from the loading spreadsheet",
		Long: `romaneio downloads the shared loading spreadsheet, normalizes it into
a record table and generates one manifest PDF per finalized row, bundled
into a ZIP archive.`,
	}

	rootCmd.PersistentFlags().StringVar(&sharedURL, "url", "", "OneDrive/SharePoint shared link of the workbook")
	rootCmd.PersistentFlags().StringVar(&filePath, "file", "", "Local workbook path (instead of --url)")
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", romaneio.DefaultSheetName, "Worksheet name")
	rootCmd.PersistentFlags().StringVar(&mappingPath, "mapping", "", "TOML mapping file overriding the column aliases")
	rootCmd.PersistentFlags().StringVar(&status, "status", romaneio.DefaultStatus, "Status value selecting rows for generation")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 60*time.Second, "Download timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newListCmd(), newGenerateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List finalized rows and their selection keys",
		RunE:  runList,
	}
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate manifest PDFs and write the ZIP bundle",
		RunE:  runGenerate,
	}
	cmd.Flags().StringVar(&dateStr, "date", time.Now().Format("02/01/2006"), "Report date (dd/mm/yyyy)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output ZIP path (default: romaneios_<timestamp>.zip)")
	cmd.Flags().StringVar(&logoPath, "logo", "logo_tecadi.png", "Header logo image (skipped if missing)")
	cmd.Flags().StringArrayVar(&selectKeys, "select", nil, "Selection key of a row to generate (repeatable; default all)")
	return cmd
}

func newLogger() *charmlog.Logger {
	l := charmlog.New(os.Stderr)
	if verbose {
		l.SetLevel(charmlog.DebugLevel)
	}
	return l
}

func buildSession(logger *charmlog.Logger) (*romaneio.Session, error) {
	opts := romaneio.DefaultOptions()
	opts.SheetName = sheetName
	opts.Status = status
	opts.LogoPath = logoPath
	if mappingPath != "" {
		m, err := sheet.LoadMapping(mappingPath)
		if err != nil {
			return nil, err
		}
		opts.Mapping = m
	}

	s := romaneio.NewSession(opts)
	s.SetLogger(logger)
	s.SetFetcher(fetch.New(fetch.WithTimeout(timeout), fetch.WithLogger(logger)))
	return s, nil
}

func loadTable(cmd *cobra.Command, s *romaneio.Session) error {
	switch {
	case filePath != "":
		return s.LoadFile(filePath)
	case sharedURL != "":
		return s.Refresh(cmd.Context(), sharedURL)
	default:
		return errors.New("either --url or --file is required")
	}
}

func runList(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	s, err := buildSession(logger)
	if err != nil {
		return err
	}
	if err := loadTable(cmd, s); err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	rows := s.Finalized()
	fmt.Printf("%d row(s) with STATUS = %s\n", len(rows), status)
	for _, r := range rows {
		fmt.Printf("  %-30s %s\n", r.Key(), r.Label())
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	reportDate, err := time.Parse("02/01/2006", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date %q (expected dd/mm/yyyy)", dateStr)
	}

	s, err := buildSession(logger)
	if err != nil {
		return err
	}
	if err := loadTable(cmd, s); err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	s.Select(selectKeys...)

	data, err := s.Generate(reportDate)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	out := outputPath
	if out == "" {
		out = fmt.Sprintf("romaneios_%s.zip", time.Now().Format("20060102_150405"))
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info("bundle written", "path", out, "bytes", len(data))
	return nil
}
