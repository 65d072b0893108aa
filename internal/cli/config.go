package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/danieljhkim/toolplan/internal/config"
	"github.com/danieljhkim/toolplan/internal/fsops"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change toolplan configuration",
	Long: `Show or change the configuration stored in config.yaml under the toolplan
root (~/.toolplan, or $TOOLPLAN_ROOT).

TOOLPLAN_MODE, TOOLPLAN_LANG and TOOLPLAN_LOG_LEVEL override the file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), struct {
				Path   string         `json:"path"`
				Config *config.Config `json:"config"`
			}{appPaths.Config, appConfig})
		}

		out := cmd.OutOrStdout()
		lang := appConfig.Lang
		if lang == "" {
			eng, err := newEngine()
			if err != nil {
				return err
			}
			lang = eng.Catalog().DefaultLang() + " (catalog default)"
		}
		PrintLabelValue(out, "Path", appPaths.Config)
		PrintLabelValue(out, "Mode", appConfig.Mode)
		PrintLabelValue(out, "Lang", lang)
		PrintLabelValue(out, "Log level", appConfig.Logging.Level)
		return nil
	},
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := appPaths.Config
		exists, err := fsops.NewRealFS().Exists(path)
		if err != nil {
			return err
		}
		if exists && !configInitForce {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		}

		if err := config.DefaultConfig().Save(path); err != nil {
			return err
		}
		logger.Debug("Wrote default config", zap.String("path", path))

		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Wrote %s", path))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set mode, lang or log-level",
	Long: `Set one configuration value and save it.

Keys:
  mode        default mode for plan (barn, silo, expansion, or a custom mode)
  lang        default language code
  log-level   debug, info, warn or error

Examples:
  toolplan config set mode silo
  toolplan config set lang es`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		cfg, err := config.Load(appPaths.Config)
		if err != nil {
			return err
		}

		switch key {
		case "mode":
			eng, err := newEngine()
			if err != nil {
				return err
			}
			if _, err := eng.Catalog().Mode(value); err != nil {
				return err
			}
			cfg.Mode = value
		case "lang":
			cfg.Lang = value
		case "log-level":
			if _, err := zapcore.ParseLevel(value); err != nil {
				return fmt.Errorf("invalid log level %q: %w", value, err)
			}
			cfg.Logging.Level = value
		default:
			return fmt.Errorf("unknown config key %q (expected mode, lang or log-level)", key)
		}

		if err := cfg.Save(appPaths.Config); err != nil {
			return err
		}

		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Set %s = %s", key, value))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
}
