package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/dispatch/internal/ports/primary"
	"github.com/example/dispatch/internal/wire"
)

// CapacityCmd returns the capacity command
func CapacityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Manage daily job ceilings and holidays",
		Long:  `View and adjust the per-date job ceilings and holiday blackouts that gate job creation.`,
	}

	cmd.AddCommand(capacityShowCmd())
	cmd.AddCommand(capacitySetCmd())
	cmd.AddCommand(capacityHolidayCmd())
	cmd.AddCommand(capacityCheckCmd())

	return cmd
}

func capacityShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show capacity for the coming days",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			from, _ := cmd.Flags().GetString("from")
			days, _ := cmd.Flags().GetInt("days")
			if from == "" {
				from = time.Now().Format("2006-01-02")
			}

			result, err := wire.CapacityService().ListDays(ctx, from, days)
			if err != nil {
				return fmt.Errorf("failed to load capacity: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tLIMIT\tBOOKED\tNOTE")
			fmt.Fprintln(w, "----\t-----\t------\t----")
			for _, d := range result {
				note := ""
				if d.Holiday {
					note = color.New(color.FgRed).Sprint("holiday")
				} else if d.BookedCount >= d.EffectiveLimit {
					note = color.New(color.FgYellow).Sprint("full")
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", d.Date, d.EffectiveLimit, d.BookedCount, note)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().String("from", "", "First date YYYY-MM-DD (defaults to today)")
	cmd.Flags().Int("days", 7, "Number of days to show")

	return cmd
}

func capacitySetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [date] [limit]",
		Short: "Set the job ceiling for a date (admin only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			limit, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", args[1], err)
			}

			err = wire.CapacityService().SetDailyLimit(ctx, primary.SetDailyLimitRequest{
				Date:      args[0],
				Limit:     limit,
				ActorRole: actorRole(),
			})
			if err != nil {
				return fmt.Errorf("failed to set limit: %w", err)
			}

			fmt.Printf("✓ Set ceiling for %s to %d jobs\n", args[0], limit)
			return nil
		},
	}
}

func capacityHolidayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "holiday [date]",
		Short: "Toggle a holiday blackout for a date (admin only)",
		Long: `Toggle holiday membership for a date.

Marking a holiday forces the stored ceiling to 0 so nothing can be
scheduled. Unmarking restores the policy default ceiling.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			day, err := wire.CapacityService().ToggleHoliday(ctx, primary.ToggleHolidayRequest{
				Date:      args[0],
				ActorRole: actorRole(),
			})
			if err != nil {
				return fmt.Errorf("failed to toggle holiday: %w", err)
			}

			if day.Holiday {
				fmt.Printf("✓ Marked %s as a holiday (ceiling 0)\n", day.Date)
			} else {
				fmt.Printf("✓ Unmarked %s (ceiling restored to %d)\n", day.Date, day.EffectiveLimit)
			}
			return nil
		},
	}
}

func capacityCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [date]",
		Short: "Check whether one more job fits on a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			check, err := wire.CapacityService().CanSchedule(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to check capacity: %w", err)
			}

			if check.Allowed {
				fmt.Printf("✓ %s has room: %d of %d booked\n", check.Date, check.CurrentCount, check.EffectiveLimit)
			} else if check.Holiday {
				fmt.Printf("✗ %s is a holiday\n", check.Date)
			} else {
				fmt.Printf("✗ %s is full: %d of %d booked\n", check.Date, check.CurrentCount, check.EffectiveLimit)
			}
			return nil
		},
	}
}
