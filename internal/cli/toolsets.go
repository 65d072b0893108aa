package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var toolsetsCmd = &cobra.Command{
	Use:   "toolsets",
	Short: "List the modes and the tools each one consumes",
	Long: `List every mode in the catalog with its three tools and sample inputs.

The built-in catalog can be replaced by a toolsets.yaml file in the config
root, and extra languages can be added under locales/.

Examples:
  toolplan toolsets
  toolplan toolsets --lang es`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		tr := translator(eng)
		modes := eng.Modes(tr.Lang())

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), modes)
		}

		out := cmd.OutOrStdout()
		for _, m := range modes {
			PrintSection(out, fmt.Sprintf("%s (%s)", modeTitle(tr, m.ID), m.ID))

			kind := "capacity"
			if m.Direct {
				kind = "direct"
			}
			stock := make([]string, 0, len(m.Preset.Stock))
			for _, v := range m.Preset.Stock {
				stock = append(stock, strconv.Itoa(v))
			}

			PrintLabelValue(out, "Tools", strings.Join(m.Items[:], ", "))
			PrintLabelValue(out, "Target", kind)
			PrintLabelValue(out, "Preset", fmt.Sprintf("target %d, stock %s", m.Preset.Target, strings.Join(stock, ",")))
		}
		return nil
	},
}
