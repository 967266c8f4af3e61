package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/dispatch/internal/cli"
	"github.com/example/dispatch/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "dispatch",
		Short:   "dispatch - relocation job scheduling and approvals",
		Version: version.String(),
		Long: `dispatch tracks relocation jobs through request, approval, and dispatch.
It enforces daily capacity ceilings, holiday blackouts, and crew/vehicle
allocation for a logistics operation.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.JobCmd())
	rootCmd.AddCommand(cli.ApprovalCmd())
	rootCmd.AddCommand(cli.CapacityCmd())
	rootCmd.AddCommand(cli.PersonnelCmd())
	rootCmd.AddCommand(cli.VehicleCmd())
	rootCmd.AddCommand(cli.ScheduleCmd())
	rootCmd.AddCommand(cli.StatusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
