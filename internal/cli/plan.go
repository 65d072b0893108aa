package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/toolplan/internal/engine"
	"github.com/danieljhkim/toolplan/internal/planner"
)

var (
	planMode   string
	planTarget string
	planStock  string
	planItems  [planner.NumItems]string
	planPreset bool
)

var planCmd = &cobra.Command{
	Use:   "plan [target] [a b c]",
	Short: "Build a day-by-day distribution plan",
	Long: `Build a day-by-day plan that raises the three tools of a mode to a common
requirement.

For barn and silo the target is the storage capacity to upgrade to; it must
lie on the capacity grid (75-1000 in steps of 25, 1050-25000 in steps of 50).
For expansion the target is the number of each tool required.

Stock can be given positionally, with --stock, or per tool with -a/-b/-c.
Leaving any stock value out prints the requirement only.

Examples:
  toolplan plan 2750 9 12 25
  toolplan plan --mode silo --target 1200 --stock 40,38,52
  toolplan plan --mode expansion --target 45 -a 14 -b 6 -c 10
  toolplan plan --mode barn --preset --json`,
	Args: cobra.MaximumNArgs(1 + planner.NumItems),
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	req, err := buildPlanRequest(cmd, eng, args)
	if err != nil {
		return err
	}
	tr := eng.Catalog().Translator(req.Lang)

	result, err := eng.Calculate(cmd.Context(), req)
	if err != nil && !errors.Is(err, engine.ErrIncompleteInput) {
		if errors.Is(err, engine.ErrInvalidTarget) {
			return fmt.Errorf("%s (%w)", tr.T("msg.invalid"), err)
		}
		return err
	}

	if jsonOutput {
		return outputJSON(cmd.OutOrStdout(), result)
	}

	renderResult(cmd.OutOrStdout(), tr, result)
	return nil
}

// buildPlanRequest layers the inputs: preset, then positional arguments,
// then --stock, then the per-tool flags, then --target.
func buildPlanRequest(cmd *cobra.Command, eng *engine.Engine, args []string) (*engine.CalculateRequest, error) {
	mode := planMode
	if mode == "" {
		mode = appConfig.Mode
	}
	lang := resolveLang()

	req := &engine.CalculateRequest{Mode: mode, Lang: lang}
	if planPreset {
		preset, err := eng.PresetRequest(mode, lang)
		if err != nil {
			return nil, err
		}
		req = preset
	}

	if len(args) > 0 {
		req.Target = args[0]
		for i, v := range args[1:] {
			req.Stock[i] = v
		}
	}

	flags := cmd.Flags()
	if flags.Changed("stock") {
		parts := strings.Split(planStock, ",")
		if len(parts) > planner.NumItems {
			return nil, fmt.Errorf("--stock takes at most %d values, got %d", planner.NumItems, len(parts))
		}
		req.Stock = [planner.NumItems]string{}
		copy(req.Stock[:], parts)
	}
	for i, item := range planner.Items {
		if flags.Changed(strings.ToLower(item.String())) {
			req.Stock[i] = planItems[i]
		}
	}
	if flags.Changed("target") {
		req.Target = planTarget
	}

	return req, nil
}

func init() {
	planCmd.Flags().StringVarP(&planMode, "mode", "m", "", "Mode: barn, silo or expansion (default from config)")
	planCmd.Flags().StringVarP(&planTarget, "target", "t", "", "Target capacity, or per-tool count for expansion")
	planCmd.Flags().StringVar(&planStock, "stock", "", "Initial stock as A,B,C")
	planCmd.Flags().StringVarP(&planItems[planner.ItemA], "a", "a", "", "Initial stock of the first tool")
	planCmd.Flags().StringVarP(&planItems[planner.ItemB], "b", "b", "", "Initial stock of the second tool")
	planCmd.Flags().StringVarP(&planItems[planner.ItemC], "c", "c", "", "Initial stock of the third tool")
	planCmd.Flags().BoolVar(&planPreset, "preset", false, "Start from the mode's sample inputs")
}
