package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/surfmuggle/forgetmenot/internal/pdf"
	"github.com/surfmuggle/forgetmenot/internal/report"
)

func newReportCommand() *cobra.Command {
	var toPDF bool

	command := &cobra.Command{
		Use:   "report",
		Short: "Write a learning progress report for all decks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			repository, closeRepository, err := newRepository(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeRepository()
			}()

			decks, err := repository.FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("repository.FindAll > %w", err)
			}

			renderer, err := report.NewRenderer(cfg.Outputs.ReportTemplate)
			if err != nil {
				return fmt.Errorf("report.NewRenderer(%s) > %w", cfg.Outputs.ReportTemplate, err)
			}

			now := time.Now()
			result := report.CalculateStatistics(decks, now)
			rendered, err := renderer.Render(result, now)
			if err != nil {
				return fmt.Errorf("renderer.Render > %w", err)
			}
			fmt.Print(rendered)

			path, err := renderer.WriteReport(cfg.Outputs.ReportDirectory, result, now)
			if err != nil {
				return fmt.Errorf("renderer.WriteReport > %w", err)
			}
			fmt.Printf("\nReport written to %s\n", path)

			if toPDF {
				pdfPath, err := pdf.ConvertMarkdownToPDF(path)
				if err != nil {
					return fmt.Errorf("pdf.ConvertMarkdownToPDF(%s) > %w", path, err)
				}
				fmt.Printf("PDF written to %s\n", pdfPath)
			}
			return nil
		},
	}

	command.Flags().BoolVar(&toPDF, "pdf", false, "Also convert the report to PDF")

	return command
}
