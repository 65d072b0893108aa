package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/toolplan/internal/engine"
	"github.com/danieljhkim/toolplan/internal/tier"
)

var tierCmd = &cobra.Command{
	Use:   "tier <capacity>",
	Short: "Show how many of each tool a capacity requires",
	Long: `Show how many of each tool are required to upgrade to a storage capacity.

Examples:
  toolplan tier 2750
  toolplan tier 1000 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		tr := translator(eng)

		result, err := eng.ResolveTier(cmd.Context(), &engine.TierRequest{Capacity: args[0]})
		if err != nil {
			if errors.Is(err, engine.ErrInvalidTarget) {
				return fmt.Errorf("%s (%w)", tr.T("msg.invalid"), err)
			}
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		out := cmd.OutOrStdout()
		PrintLabelValue(out, tr.T("table.capacity"), strconv.Itoa(result.Capacity))
		PrintLabelValue(out, tr.T("table.each"), strconv.Itoa(result.Each))
		PrintInfo(out, tr.Tf("msg.require_capacity", result.Each, result.PreviousCapacity))
		return nil
	},
}

var (
	tiersMin int
	tiersMax int
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List every capacity and its per-tool requirement",
	Long: `List every valid capacity and how many of each tool it requires.

Examples:
  toolplan tiers --min 900 --max 1200
  toolplan tiers --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		tr := translator(eng)

		var tiers []tier.Tier
		for _, t := range eng.Tiers() {
			if t.Capacity < tiersMin || (tiersMax > 0 && t.Capacity > tiersMax) {
				continue
			}
			tiers = append(tiers, t)
		}

		if jsonOutput {
			if tiers == nil {
				tiers = []tier.Tier{}
			}
			return outputJSON(cmd.OutOrStdout(), tiers)
		}

		out := cmd.OutOrStdout()
		if len(tiers) == 0 {
			PrintEmptyState(out, "No capacities in range")
			return nil
		}

		rows := make([][]string, 0, len(tiers))
		for _, t := range tiers {
			rows = append(rows, []string{strconv.Itoa(t.Capacity), strconv.Itoa(t.Each)})
		}
		PrintTable(out, []string{tr.T("table.capacity"), tr.T("table.each")}, rows, false)
		PrintInfo(out, PrintCount(len(tiers), "capacity", "capacities"))
		return nil
	},
}

func init() {
	tiersCmd.Flags().IntVar(&tiersMin, "min", 0, "Smallest capacity to list")
	tiersCmd.Flags().IntVar(&tiersMax, "max", 0, "Largest capacity to list (0 for no limit)")
}
