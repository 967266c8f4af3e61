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

// JobCmd returns the job command
func JobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Manage relocation jobs",
		Long:  `Create, list, allocate, lock, and delete relocation jobs.`,
	}

	cmd.AddCommand(jobCreateCmd())
	cmd.AddCommand(jobListCmd())
	cmd.AddCommand(jobShowCmd())
	cmd.AddCommand(jobAllocateCmd())
	cmd.AddCommand(jobLockCmd())
	cmd.AddCommand(jobDeleteCmd())

	return cmd
}

func jobCreateCmd() *cobra.Command {
	var req primary.CreateJobRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new relocation job",
		Long: `Create a new relocation job request.

Admin operators get an ACTIVE job immediately; other operators enter
the approval queue as PENDING_ADD. Either way the daily capacity ceiling
and holiday blackouts apply.

Examples:
  dispatch job create --shipper "Acme Movers" --date 2024-06-01 --time 08:00
  dispatch job create --no AE-4411 --shipper "Gulf Star" --loading "Direct Loading" --volume 32.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			req.RequesterID = actorID()
			req.RequesterRole = actorRole()

			resp, err := wire.JobService().CreateJob(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to create job: %w", err)
			}

			fmt.Printf("✓ Created job %s (%s) on %s\n", resp.JobNo, resp.Job.Status, resp.Job.JobDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.JobNo, "no", "", "Explicit job number (generated when omitted)")
	cmd.Flags().StringVar(&req.Title, "title", "", "Job title")
	cmd.Flags().StringVar(&req.ShipperName, "shipper", "", "Shipper name")
	cmd.Flags().StringVar(&req.Location, "location", "", "Pickup location")
	cmd.Flags().StringVar(&req.ShipmentDetails, "details", "", "Shipment details")
	cmd.Flags().StringVar(&req.Description, "desc", "", "Description")
	cmd.Flags().StringVar(&req.Priority, "priority", "", "Priority: LOW, MEDIUM, HIGH")
	cmd.Flags().StringVar(&req.AgentName, "agent", "", "Agent name")
	cmd.Flags().StringVar(&req.LoadingType, "loading", "", "Loading type")
	cmd.Flags().StringVar(&req.MainCategory, "category", "", "Main category")
	cmd.Flags().StringVar(&req.SubCategory, "subcategory", "", "Sub category")
	cmd.Flags().BoolVar(&req.Shuttle, "shuttle", false, "Shuttle required")
	cmd.Flags().BoolVar(&req.LongCarry, "long-carry", false, "Long carry required")
	cmd.Flags().Float64Var(&req.VolumeCBM, "volume", 0, "Volume in CBM")
	cmd.Flags().StringVar(&req.JobTime, "time", "", "Hour slot, e.g. 08:00")
	cmd.Flags().StringVar(&req.JobDate, "date", "", "Job date YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringVar(&req.AssignedTo, "assigned", "", "Assigned team")
	cmd.Flags().BoolVar(&req.WarehouseActivity, "warehouse", false, "Mark as warehouse activity")
	cmd.Flags().BoolVar(&req.ImportClearance, "import-clearance", false, "Mark as import clearance")

	return cmd
}

func jobListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			date, _ := cmd.Flags().GetString("date")
			status, _ := cmd.Flags().GetString("status")
			warehouse, _ := cmd.Flags().GetBool("warehouse")
			importOnly, _ := cmd.Flags().GetBool("import-clearance")
			all, _ := cmd.Flags().GetBool("all")

			filters := primary.JobFilters{
				Date:          date,
				Status:        status,
				WarehouseOnly: warehouse,
				ImportOnly:    importOnly,
			}
			// Rejected jobs are hidden unless asked for explicitly.
			if !all && status == "" {
				filters.ExcludeStatus = "REJECTED"
			}

			jobs, err := wire.JobService().ListJobs(ctx, filters)
			if err != nil {
				return fmt.Errorf("failed to list jobs: %w", err)
			}

			if len(jobs) == 0 {
				fmt.Println("No jobs found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "JOB\tDATE\tTIME\tSHIPPER\tPRIORITY\tSTATUS\tLEADER\tVEHICLE")
			fmt.Fprintln(w, "---\t----\t----\t-------\t--------\t------\t------\t-------")
			for _, j := range jobs {
				lock := ""
				if j.Locked {
					lock = " 🔒"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s%s\t%s\t%s\n",
					j.JobNo, j.JobDate, j.JobTime, j.ShipperName, j.Priority,
					j.Status, lock, j.TeamLeader, j.Vehicle)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().String("date", "", "Filter by job date")
	cmd.Flags().String("status", "", "Filter by status")
	cmd.Flags().Bool("warehouse", false, "Only warehouse activity jobs")
	cmd.Flags().Bool("import-clearance", false, "Only import clearance jobs")
	cmd.Flags().Bool("all", false, "Include rejected jobs")

	return cmd
}

func jobShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [job-no]",
		Short: "Show job details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			j, err := wire.JobService().GetJob(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get job: %w", err)
			}

			fmt.Printf("Job: %s\n", j.JobNo)
			fmt.Printf("Status: %s", j.Status)
			if j.Locked {
				fmt.Printf(" (locked)")
			}
			fmt.Println()
			fmt.Printf("Date: %s %s\n", j.JobDate, j.JobTime)
			fmt.Printf("Shipper: %s\n", j.ShipperName)
			fmt.Printf("Location: %s\n", j.Location)
			fmt.Printf("Priority: %s\n", j.Priority)
			fmt.Printf("Category: %s / %s\n", j.MainCategory, j.SubCategory)
			fmt.Printf("Loading: %s\n", j.LoadingType)
			fmt.Printf("Volume: %.1f CBM\n", j.VolumeCBM)
			if j.TeamLeader != "" || j.Vehicle != "" || len(j.WriterCrew) > 0 {
				fmt.Printf("Allocation: leader=%s vehicle=%s crew=[%s]\n",
					j.TeamLeader, j.Vehicle, strings.Join(j.WriterCrew, ", "))
			}
			fmt.Printf("Requester: %s\n", j.RequesterID)
			fmt.Printf("Created: %s\n", j.CreatedAt)
			return nil
		},
	}
}

func jobAllocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allocate [job-no]",
		Short: "Assign team leader, vehicle, and crew to a job",
		Long: `Merge a dispatch allocation onto a job.

Only the flags you pass are changed; omitted fields keep their current
value. Pass an empty value to clear a field.

Examples:
  dispatch job allocate AE-9002 --leader "Ahmed Khan" --vehicle "Truck 01"
  dispatch job allocate AE-9002 --crew "Suresh Kumar,John Doe"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			j, err := wire.JobService().UpdateAllocation(ctx, primary.UpdateAllocationRequest{
				JobNo:      args[0],
				Allocation: alloc,
			})
			if err != nil {
				return fmt.Errorf("failed to update allocation: %w", err)
			}

			fmt.Printf("✓ Updated allocation for %s: leader=%s vehicle=%s crew=[%s]\n",
				j.JobNo, j.TeamLeader, j.Vehicle, strings.Join(j.WriterCrew, ", "))
			return nil
		},
	}

	cmd.Flags().String("leader", "", "Team leader name")
	cmd.Flags().String("vehicle", "", "Vehicle name")
	cmd.Flags().String("crew", "", "Comma-separated crew names")

	return cmd
}

func jobLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock [job-no]",
		Short: "Toggle a job's lock (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			j, err := wire.JobService().ToggleLock(ctx, primary.ToggleLockRequest{
				JobNo:     args[0],
				ActorRole: actorRole(),
			})
			if err != nil {
				return fmt.Errorf("failed to toggle lock: %w", err)
			}

			if j.Locked {
				fmt.Printf("✓ Locked job %s\n", j.JobNo)
			} else {
				fmt.Printf("✓ Unlocked job %s\n", j.JobNo)
			}
			return nil
		},
	}
}

func jobDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [job-no]",
		Short: "Delete a job (admins) or request deletion (everyone else)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			err := wire.JobService().DeleteJob(ctx, primary.DeleteJobRequest{
				JobNo:     args[0],
				ActorRole: actorRole(),
			})
			if err != nil {
				return fmt.Errorf("failed to delete job: %w", err)
			}

			if actorRole() == "ADMIN" {
				fmt.Printf("✓ Deleted job %s\n", args[0])
			} else {
				fmt.Printf("✓ Deletion of %s queued for admin approval\n", args[0])
			}
			return nil
		},
	}
}

func splitCrew(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	crew := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			crew = append(crew, name)
		}
	}
	return crew
}
