package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/dispatch/internal/ports/primary"
	"github.com/example/dispatch/internal/wire"
)

// VehicleCmd returns the vehicle command
func VehicleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Manage the fleet registry",
		Long:  `Register, list, and update the availability of fleet vehicles.`,
	}

	cmd.AddCommand(vehicleAddCmd())
	cmd.AddCommand(vehicleListCmd())
	cmd.AddCommand(vehicleStatusCmd())
	cmd.AddCommand(vehicleRemoveCmd())

	return cmd
}

func vehicleAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Register a vehicle (admin only)",
		Long: `Register a vehicle. The plate number is mandatory.

Examples:
  dispatch vehicle add "Truck 01" --plate DXB-10244`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			plate, _ := cmd.Flags().GetString("plate")

			v, err := wire.ResourceService().AddVehicle(ctx, primary.AddVehicleRequest{
				Name:      args[0],
				Plate:     plate,
				ActorRole: actorRole(),
			})
			if err != nil {
				return fmt.Errorf("failed to add vehicle: %w", err)
			}

			fmt.Printf("✓ Registered %s: %s (%s)\n", v.ID, v.Name, v.Plate)
			return nil
		},
	}

	cmd.Flags().String("plate", "", "Plate number (mandatory)")

	return cmd
}

func vehicleListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vehicles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			status, _ := cmd.Flags().GetString("status")

			vehicles, err := wire.ResourceService().ListVehicles(ctx, primary.VehicleFilters{
				Status: status,
			})
			if err != nil {
				return fmt.Errorf("failed to list vehicles: %w", err)
			}

			if len(vehicles) == 0 {
				fmt.Println("No vehicles found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPLATE\tSTATUS")
			fmt.Fprintln(w, "--\t----\t-----\t------")
			for _, v := range vehicles {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.ID, v.Name, v.Plate, v.Status)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().String("status", "", "Filter by status")

	return cmd
}

func vehicleStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [id] [status]",
		Short: "Update a vehicle's availability (admin only)",
		Long: `Update availability. Valid statuses: Available, "Out of Service",
Maintenance.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			v, err := wire.ResourceService().SetVehicleStatus(ctx, primary.SetResourceStatusRequest{
				ID:        args[0],
				Status:    args[1],
				ActorRole: actorRole(),
			})
			if err != nil {
				return fmt.Errorf("failed to update status: %w", err)
			}

			fmt.Printf("✓ %s (%s) is now %s\n", v.Name, v.ID, v.Status)
			return nil
		},
	}
}

func vehicleRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [id]",
		Short: "Remove a vehicle (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			err := wire.ResourceService().RemoveVehicle(ctx, primary.RemoveResourceRequest{
				ID:        args[0],
				ActorRole: actorRole(),
			})
			if err != nil {
				return fmt.Errorf("failed to remove vehicle: %w", err)
			}

			fmt.Printf("✓ Removed %s\n", args[0])
			return nil
		},
	}
}
