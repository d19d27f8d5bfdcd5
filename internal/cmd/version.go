package cmd

import (
	"encoding/json"

	"github.com/hybridanalysis/challenge/internal/config"
	"github.com/hybridanalysis/challenge/version"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewVersionCmd creates and returns the version subcommand for the challenge CLI.
// Like inspect, it falls back to the configured output format.
func NewVersionCmd(s *state) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = s.cfg.Format
			}
			if err := config.ValidateFormat(format); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch format {
			case config.FormatJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(version.GetInfo())
			case config.FormatYAML:
				return yaml.NewEncoder(out).Encode(version.GetInfo())
			default:
				version.Write(out, cmd.Root().Name())
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, "Output format: text, json or yaml")

	return cmd
}
