package check

import (
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/volgavod/slist/app"
	"github.com/volgavod/slist/internal/mlog"
	"gopkg.in/yaml.v3"
)

func init() {
	app.RootCmd().AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	var cfgPath string
	c := &cobra.Command{
		Use:   "check",
		Short: "Run a randomized scenario against the list and a reference model",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			logger := mlog.L()
			b, err := os.ReadFile(cfgPath)
			if err != nil {
				logger.Fatal().Err(err).Msg("failed to read config file")
			}

			cfg := new(Config)
			m := make(map[string]any)
			if err := yaml.Unmarshal(b, m); err != nil {
				logger.Fatal().Err(err).Msg("failed to decode yaml config")
			}
			decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				ErrorUnused: true,
				TagName:     "yaml",
				Result:      cfg,
			})
			if err != nil {
				logger.Fatal().Err(err).Msg("failed to init yaml decoder")
			}
			if err := decoder.Decode(m); err != nil {
				logger.Fatal().Err(err).Msg("failed to decode yaml struct")
			}
			logger.Info().Str("file", cfgPath).Msg("config file loaded")
			run(cfg)
		},
	}
	c.Flags().StringVarP(&cfgPath, "config", "c", "check.yaml", "path of the scenario file")

	genConfigCmd := &cobra.Command{
		Use:   "gen-config",
		Short: "Generate a scenario template",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			genConfigTemplate(args[0])
		},
	}
	c.AddCommand(genConfigCmd)
	return c
}
