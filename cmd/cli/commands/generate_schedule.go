package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/term-timetable/pkg/core/services"
	"github.com/jakechorley/term-timetable/pkg/export"
)

const (
	formatText = "text"
	formatCSV  = "csv"
	formatPDF  = "pdf"
)

// GenerateScheduleCmd creates the generateSchedule command
func GenerateScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateSchedule",
		Short: "Generate the term timetable from the configured curriculum",
		Long: `Load the curriculum, resolve blackout days and allocate lessons for every week of the term.
The timetable is printed as text by default, or rendered as CSV or PDF with --format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			outPath, _ := cmd.Flags().GetString("out")
			publish, _ := cmd.Flags().GetBool("publish")
			strict, _ := cmd.Flags().GetBool("strict")

			app.Logger.Debug("generateSchedule command",
				zap.String("format", format),
				zap.String("out", outPath),
				zap.Bool("publish", publish),
				zap.Bool("strict", strict))

			if format != formatText && format != formatCSV && format != formatPDF {
				return fmt.Errorf("unknown format %q (expected text, csv or pdf)", format)
			}
			if format == formatPDF && outPath == "" {
				return fmt.Errorf("--out is required for pdf output")
			}
			if publish && app.Cfg.TimetableSheetID == "" {
				return fmt.Errorf("--publish requires timetableSheetID in config")
			}

			store, err := app.CurriculumStore()
			if err != nil {
				return err
			}

			result, err := services.GenerateSchedule(app.Ctx, store, app.Cfg, app.Logger)
			if err != nil {
				return fmt.Errorf("schedule generation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if err := writeSchedule(out, result, format, outPath); err != nil {
				return err
			}

			renderer := export.NewTextRenderer(result.Calendar)
			if err := renderer.RenderOutcome(out, result.Outcome); err != nil {
				return err
			}

			if publish {
				client, err := app.SheetsClient()
				if err != nil {
					return err
				}
				tab, err := services.PublishSchedule(result, client, app.Cfg.TimetableSheetID, app.Logger)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\nPublished to tab %q\n", tab)
			}

			if strict && !result.Outcome.Complete {
				return fmt.Errorf("schedule is incomplete: %d shortfalls, %d validation errors",
					len(result.Outcome.Shortfalls), len(result.Outcome.ValidationErrors))
			}

			return nil
		},
	}

	cmd.Flags().String("format", formatText, "Output format: text, csv or pdf")
	cmd.Flags().String("out", "", "Write the rendered timetable to this file instead of stdout")
	cmd.Flags().Bool("publish", false, "Publish the timetable to the configured timetable spreadsheet")
	cmd.Flags().Bool("strict", false, "Fail if any subject did not receive all of its hours")

	return cmd
}

// writeSchedule renders the schedule to outPath, or to out when outPath is empty
func writeSchedule(out io.Writer, result *services.GenerateScheduleResult, format, outPath string) error {
	var rendered []byte
	var err error

	switch format {
	case formatText:
		if outPath == "" {
			return export.NewTextRenderer(result.Calendar).Render(out, result.Outcome.Schedule)
		}
		file, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		if err := export.NewTextRenderer(result.Calendar).Render(file, result.Outcome.Schedule); err != nil {
			_ = file.Close()
			return err
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(out, "Timetable written to %s\n", outPath)
		return nil

	case formatCSV:
		rendered, err = export.NewCSVExporter().Render(export.ScheduleDataset(result.Outcome.Schedule, result.Calendar))

	case formatPDF:
		rendered, err = export.NewPDFExporter().Render(export.ScheduleDataset(result.Outcome.Schedule, result.Calendar), "Timetable")
	}
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", format, err)
	}

	if outPath == "" {
		_, err := out.Write(rendered)
		return err
	}

	if err := os.WriteFile(outPath, rendered, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(out, "Timetable written to %s\n", outPath)
	return nil
}
