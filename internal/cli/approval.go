package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/dispatch/internal/ports/primary"
	"github.com/example/dispatch/internal/wire"
)

var approvalCmd = &cobra.Command{
	Use:   "approval",
	Short: "Manage the approval queue",
	Long:  "List pending job requests and decide them (admin only)",
}

var approvalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs awaiting a decision",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()

		var pending []*primary.Job
		for _, status := range []string{"PENDING_ADD", "PENDING_DELETE"} {
			jobs, err := wire.JobService().ListJobs(ctx, primary.JobFilters{Status: status})
			if err != nil {
				return fmt.Errorf("failed to list approvals: %w", err)
			}
			pending = append(pending, jobs...)
		}

		if len(pending) == 0 {
			fmt.Println("No jobs awaiting approval.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "JOB\tREQUEST\tDATE\tSHIPPER\tREQUESTER\tCREATED")
		fmt.Fprintln(w, "---\t-------\t----\t-------\t---------\t-------")
		for _, j := range pending {
			kind := "add"
			if j.Status == "PENDING_DELETE" {
				kind = "delete"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				j.JobNo, kind, j.JobDate, j.ShipperName, j.RequesterID, j.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

var approvalApproveCmd = &cobra.Command{
	Use:   "approve [job-no]",
	Short: "Approve a pending job request",
	Long: `Approve a pending request.

Approving a PENDING_ADD job activates it; an allocation can be attached
in the same decision via --leader/--vehicle/--crew, or skipped entirely.
Approving a PENDING_DELETE job removes it from the board.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return decide(cmd, args[0], true)
	},
}

var approvalRejectCmd = &cobra.Command{
	Use:   "reject [job-no]",
	Short: "Reject a pending job request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return decide(cmd, args[0], false)
	},
}

func decide(cmd *cobra.Command, jobNo string, approved bool) error {
	ctx := NewContext()

	var alloc primary.Allocation
	if cmd.Flags().Changed("leader") {
		v, _ := cmd.Flags().GetString("leader")
		alloc.TeamLeader = &v
	}
	if cmd.Flags().Changed("vehicle") {
		v, _ := cmd.Flags().GetString("vehicle")
		alloc.Vehicle = &v
	}
	if cmd.Flags().Changed("crew") {
		v, _ := cmd.Flags().GetString("crew")
		crew := splitCrew(v)
		alloc.WriterCrew = &crew
	}

	j, err := wire.JobService().DecideApproval(ctx, primary.DecideApprovalRequest{
		JobNo:      jobNo,
		Approved:   approved,
		Allocation: alloc,
		ActorRole:  actorRole(),
	})
	if err != nil {
		return fmt.Errorf("failed to decide approval: %w", err)
	}

	switch {
	case j == nil:
		fmt.Printf("✓ Approved deletion of %s\n", jobNo)
	case approved:
		fmt.Printf("✓ Approved %s (now %s)\n", j.JobNo, j.Status)
		if j.TeamLeader != "" || len(j.WriterCrew) > 0 {
			fmt.Printf("  allocation: leader=%s vehicle=%s crew=[%s]\n",
				j.TeamLeader, j.Vehicle, strings.Join(j.WriterCrew, ", "))
		}
	default:
		fmt.Printf("✓ Rejected %s (now %s)\n", j.JobNo, j.Status)
	}
	return nil
}

func init() {
	for _, c := range []*cobra.Command{approvalApproveCmd, approvalRejectCmd} {
		c.Flags().String("leader", "", "Team leader to allocate on approval")
		c.Flags().String("vehicle", "", "Vehicle to allocate on approval")
		c.Flags().String("crew", "", "Comma-separated crew to allocate on approval")
	}

	approvalCmd.AddCommand(approvalListCmd)
	approvalCmd.AddCommand(approvalApproveCmd)
	approvalCmd.AddCommand(approvalRejectCmd)
}

// ApprovalCmd returns the approval command
func ApprovalCmd() *cobra.Command {
	return approvalCmd
}
