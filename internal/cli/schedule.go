package cli

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/dispatch/internal/ports/primary"
	"github.com/example/dispatch/internal/wire"
)

// ScheduleCmd returns the schedule command
func ScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule [date]",
		Short: "Show the job schedule for a date",
		Long:  `List the jobs booked on a date in time order, with their allocations.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			date := time.Now().Format("2006-01-02")
			if len(args) == 1 {
				date = args[0]
			}

			jobs, err := wire.JobService().ListJobs(ctx, primary.JobFilters{
				Date:          date,
				ExcludeStatus: "REJECTED",
			})
			if err != nil {
				return fmt.Errorf("failed to load schedule: %w", err)
			}

			day, err := wire.CapacityService().GetDay(ctx, date)
			if err != nil {
				return fmt.Errorf("failed to load capacity: %w", err)
			}

			if day.Holiday {
				fmt.Printf("%s — holiday, no scheduling\n", date)
			} else {
				fmt.Printf("%s — %d of %d slots booked\n", date, day.BookedCount, day.EffectiveLimit)
			}

			if len(jobs) == 0 {
				fmt.Println("No jobs booked.")
				return nil
			}

			sort.Slice(jobs, func(i, j int) bool { return jobs[i].JobTime < jobs[j].JobTime })

			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tJOB\tSHIPPER\tSTATUS\tLEADER\tVEHICLE")
			fmt.Fprintln(w, "----\t---\t-------\t------\t------\t-------")
			for _, j := range jobs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					j.JobTime, j.JobNo, j.ShipperName, j.Status, j.TeamLeader, j.Vehicle)
			}
			w.Flush()
			return nil
		},
	}

	return cmd
}
