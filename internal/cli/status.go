package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/dispatch/internal/ports/primary"
	"github.com/example/dispatch/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the dispatch board at a glance",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			today := time.Now().Format("2006-01-02")

			jobs, err := wire.JobService().ListJobs(ctx, primary.JobFilters{})
			if err != nil {
				return fmt.Errorf("failed to list jobs: %w", err)
			}

			counts := map[string]int{}
			todayCount := 0
			for _, j := range jobs {
				counts[j.Status]++
				if j.JobDate == today && j.Status != "REJECTED" {
					todayCount++
				}
			}

			day, err := wire.CapacityService().GetDay(ctx, today)
			if err != nil {
				return fmt.Errorf("failed to load capacity: %w", err)
			}

			bold := color.New(color.Bold)
			bold.Printf("Dispatch board — %s\n\n", today)

			fmt.Printf("  %s %d\n", color.GreenString("active:"), counts["ACTIVE"])
			fmt.Printf("  %s %d\n", color.YellowString("pending add:"), counts["PENDING_ADD"])
			fmt.Printf("  %s %d\n", color.YellowString("pending delete:"), counts["PENDING_DELETE"])
			fmt.Printf("  %s %d\n", color.CyanString("completed:"), counts["COMPLETED"])
			fmt.Printf("  %s %d\n", color.RedString("rejected:"), counts["REJECTED"])
			fmt.Println()

			if day.Holiday {
				fmt.Printf("  today: %s\n", color.RedString("holiday — no scheduling"))
			} else {
				fmt.Printf("  today: %d of %d slots booked\n", todayCount, day.EffectiveLimit)
			}

			fmt.Printf("\n  operator: %s (%s)\n", actorID(), actorRole())
			return nil
		},
	}
}
