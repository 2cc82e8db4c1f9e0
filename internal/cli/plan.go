package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/osse101/ArcLab_Go/internal/domain"
	"github.com/osse101/ArcLab_Go/internal/planner"
)

// NewPlanCommand creates the plan command
func NewPlanCommand() *cobra.Command {
	var stacks bool

	cmd := &cobra.Command{
		Use:   "plan <location> <name=amount>...",
		Short: "Compute a carry plan from a catalog document",
		Long: `Plan what to carry for a set of desired items using only a catalog
document. No database is needed.

Amounts are finished units by default. With --stacks they are whole stacks
of the finished item and the plan is ordered rarest first.

Examples:
  arclab plan data/catalog.json "Heavy Ammo=120" "Bandage=10"
  arclab plan --stacks data/catalog.json "Metal Plate=3"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New(errMsgNoRequests)
			}

			doc, err := loadDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			snap := doc.Snapshot()

			requests, err := parseRequests(snap.Items(), args[1:])
			if err != nil {
				return err
			}

			opts := planner.Options{Mode: planner.ModeUnits, Sort: planner.ByCategoryThenName()}
			if stacks {
				opts = planner.Options{Mode: planner.ModeStacks, Sort: planner.ByRarityThenName()}
			}
			res := planner.AggregateDetailed(snap, requests, opts)

			out := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(out, res.Plan)
			}
			printPlan(out, res.Plan)
			if res.Dropped > 0 {
				fmt.Fprintf(out, msgRequestsSkipped, res.Dropped)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stacks, "stacks", false, "Read amounts as whole stacks")

	return cmd
}

func printPlan(out io.Writer, plan domain.Plan) {
	if len(plan.Lines) == 0 {
		fmt.Fprintln(out, msgPlanEmpty)
		return
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tCATEGORY\tNEEDED\tSTACKS\tCARRIED\tWHY")
	for _, line := range plan.Lines {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n",
			line.Item.Name,
			line.Item.Category,
			line.RawQuantity,
			line.Stacks,
			line.RoundedQuantity,
			strings.Join(line.Reasons, "; "))
	}
	tw.Flush()

	fmt.Fprintf(out, "\nTotal slots: %d\n", plan.TotalSlots)
}
