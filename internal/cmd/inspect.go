package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hybridanalysis/challenge/cipher"
	"github.com/hybridanalysis/challenge/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// NewInspectCmd creates and returns the inspect subcommand for the challenge CLI.
// It shows the sorted and numeric forms a key produces.
func NewInspectCmd(s *state) *cobra.Command {
	var (
		key    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show how a key orders the cipher columns",
		Long: `Show the sorted key, the numeric key and a fingerprint for a key.

The numeric key lists, for every position of the sorted key, the 1-based
position of that character in the original key. A key is "unique" when it
has no repeated characters, which is required for decode.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = s.cfg.Format
			}
			return runInspect(cmd, s, key, format)
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "Cipher key (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, "Output format: text, json or yaml")

	return cmd
}

func runInspect(cmd *cobra.Command, s *state, flagKey, format string) error {
	if err := config.ValidateFormat(format); err != nil {
		return err
	}

	key, err := s.resolveKey(flagKey)
	if err != nil {
		return err
	}

	report, err := cipher.Inspect(key)
	if err != nil {
		return fmt.Errorf("failed to inspect key: %w", err)
	}
	s.logger.Debug("Inspected key", zap.String("key_fingerprint", report.Fingerprint), zap.Bool("unique", report.Unique))

	return writeReport(cmd.OutOrStdout(), report, format)
}

func writeReport(w io.Writer, report cipher.KeyReport, format string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)

	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()

	default:
		numeric := make([]string, len(report.Numeric))
		for i, n := range report.Numeric {
			numeric[i] = strconv.Itoa(n)
		}
		fmt.Fprintf(w, "Key:         %s\n", report.Key)
		fmt.Fprintf(w, "Sorted:      %s\n", report.Sorted)
		fmt.Fprintf(w, "Numeric:     %s\n", strings.Join(numeric, " "))
		fmt.Fprintf(w, "Fingerprint: %s\n", report.Fingerprint)
		fmt.Fprintf(w, "Unique:      %v\n", report.Unique)
		return nil
	}
}
