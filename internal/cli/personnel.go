package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/dispatch/internal/ports/primary"
	"github.com/example/dispatch/internal/wire"
)

// PersonnelCmd returns the personnel command
func PersonnelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "personnel",
		Short: "Manage the crew registry",
		Long:  `Register, list, and update the availability of team leaders and writer crew.`,
	}

	cmd.AddCommand(personnelAddCmd())
	cmd.AddCommand(personnelListCmd())
	cmd.AddCommand(personnelStatusCmd())
	cmd.AddCommand(personnelRemoveCmd())

	return cmd
}

func personnelAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Register a crew member (admin only)",
		Long: `Register a crew member. Employee ID and Emirates ID are mandatory.

Examples:
  dispatch personnel add "Ahmed Khan" --type "Team Leader" --employee-id EMP-101 --emirates-id 784-1980-1234567-1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			ptype, _ := cmd.Flags().GetString("type")
			employeeID, _ := cmd.Flags().GetString("employee-id")
			emiratesID, _ := cmd.Flags().GetString("emirates-id")

			p, err := wire.ResourceService().AddPersonnel(ctx, primary.AddPersonnelRequest{
				Name:       args[0],
				Type:       ptype,
				EmployeeID: employeeID,
				EmiratesID: emiratesID,
				ActorRole:  actorRole(),
			})
			if err != nil {
				return fmt.Errorf("failed to add personnel: %w", err)
			}

			fmt.Printf("✓ Registered %s: %s (%s)\n", p.ID, p.Name, p.Type)
			return nil
		},
	}

	cmd.Flags().String("type", "Writer Crew", "Personnel type: 'Team Leader' or 'Writer Crew'")
	cmd.Flags().String("employee-id", "", "Employee ID (mandatory)")
	cmd.Flags().String("emirates-id", "", "Emirates ID (mandatory)")

	return cmd
}

func personnelListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List crew members",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			ptype, _ := cmd.Flags().GetString("type")
			status, _ := cmd.Flags().GetString("status")

			personnel, err := wire.ResourceService().ListPersonnel(ctx, primary.PersonnelFilters{
				Type:   ptype,
				Status: status,
			})
			if err != nil {
				return fmt.Errorf("failed to list personnel: %w", err)
			}

			if len(personnel) == 0 {
				fmt.Println("No personnel found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tEMPLOYEE\tNAME\tTYPE\tSTATUS")
			fmt.Fprintln(w, "--\t--------\t----\t----\t------")
			for _, p := range personnel {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.EmployeeID, p.Name, p.Type, p.Status)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().String("type", "", "Filter by type")
	cmd.Flags().String("status", "", "Filter by status")

	return cmd
}

func personnelStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [id] [status]",
		Short: "Update a crew member's availability (admin only)",
		Long: `Update availability. Valid statuses: Available, "Annual Leave",
"Sick Leave", "Personal Leave".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			p, err := wire.ResourceService().SetPersonnelStatus(ctx, primary.SetResourceStatusRequest{
				ID:        args[0],
				Status:    args[1],
				ActorRole: actorRole(),
			})
			if err != nil {
				return fmt.Errorf("failed to update status: %w", err)
			}

			fmt.Printf("✓ %s (%s) is now %s\n", p.Name, p.ID, p.Status)
			return nil
		},
	}
}

func personnelRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [id]",
		Short: "Remove a crew member (admin only)",
		Long: `Remove a crew member from the registry.

Jobs that already name this person in their allocation keep the name;
allocations are snapshots, not references.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			err := wire.ResourceService().RemovePersonnel(ctx, primary.RemoveResourceRequest{
				ID:        args[0],
				ActorRole: actorRole(),
			})
			if err != nil {
				return fmt.Errorf("failed to remove personnel: %w", err)
			}

			fmt.Printf("✓ Removed %s\n", args[0])
			return nil
		},
	}
}
