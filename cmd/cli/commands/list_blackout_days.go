package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/term-timetable/pkg/core/services"
)

// ListBlackoutDaysCmd creates the listBlackoutDays command
func ListBlackoutDaysCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listBlackoutDays",
		Short: "List the days with no teaching, including those from blackout rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := services.RunParamsFromConfig(app.Cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(params.BlackoutDays) == 0 {
				fmt.Fprintln(out, "No blackout days configured.")
				return nil
			}

			fmt.Fprintf(out, "\n%d blackout days:\n\n", len(params.BlackoutDays))
			for _, day := range params.BlackoutDays {
				if date := services.FormatDate(params.Calendar, day); date != "" {
					fmt.Fprintf(out, "  Week %2d  %-9s  %s\n", day.Week+1, day.Day, date)
				} else {
					fmt.Fprintf(out, "  Week %2d  %s\n", day.Week+1, day.Day)
				}
			}
			return nil
		},
	}
}
