package commands

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"market/internal/domain/week"
	"market/internal/errors"

	"github.com/spf13/cobra"
)

func newWeekCommand() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the current week and the week open for submissions",
		Long: `Show the current week number, the submission week and its dates.

Examples:
  marketctl week                       # Today
  marketctl week --date 2025-06-10     # Another day`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := time.Now()
			if date != "" {
				parsed, err := time.Parse(time.DateOnly, date)
				if err != nil {
					return errors.Wrap(err, "invalid --date")
				}
				now = parsed
			}

			info := week.Current(now)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Year:            %d\n", info.Year)
			fmt.Fprintf(out, "Current week:    %d\n", info.Current)
			fmt.Fprintf(out, "Submission week: %d\n\n", info.Next)

			return printDates(out, week.Dates(info.Next, info.Year))
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Reference day (YYYY-MM-DD) instead of today")
	cmd.AddCommand(newWeekDatesCommand())

	return cmd
}

func newWeekDatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dates <year> <week>",
		Short: "List the Sunday to Saturday dates of a week",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil || year < 1 {
				return errors.Errorf("invalid year %q", args[0])
			}

			number, err := strconv.Atoi(args[1])
			if err != nil || number < 1 || number > week.MaxWeekNumber {
				return errors.Errorf("invalid week %q: must be between 1 and %d", args[1], week.MaxWeekNumber)
			}

			return printDates(cmd.OutOrStdout(), week.Dates(number, year))
		},
	}
}

func printDates(out io.Writer, dates []time.Time) error {
	days := week.DayDateMap(dates)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tDATE")
	for _, day := range week.DaysOfWeek {
		fmt.Fprintf(w, "%s\t%s\n", day, days[day].Format(time.DateOnly))
	}

	return errors.WithStack(w.Flush())
}
