package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jakechorley/term-timetable/pkg/core/curriculum"
	"github.com/jakechorley/term-timetable/pkg/core/services"
)

// ListSubjectsCmd creates the listSubjects command
func ListSubjectsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listSubjects",
		Short: "List each group's subjects for the current semester with hours per week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.CurriculumStore()
			if err != nil {
				return err
			}

			cur, err := services.LoadCurriculum(app.Ctx, store, app.Logger)
			if err != nil {
				return err
			}

			summaries := services.SummariseSubjects(curriculum.ExpandSubjects(cur.Groups), app.Cfg.WeeksPerSemester)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n%d subjects over %d weeks:\n\n", len(summaries), app.Cfg.WeeksPerSemester)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "GROUP\tSUBJECT\tSEMESTER\tTOTAL HOURS\tHOURS/WEEK")
			for _, s := range summaries {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", s.Group, s.Subject, s.Semester, s.TotalHours, s.HoursPerWeek)
			}
			return w.Flush()
		},
	}
}
