package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hybridanalysis/challenge/cipher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewDecodeCmd creates and returns the decode subcommand for the challenge CLI.
// It reverses encode for keys without repeated characters.
func NewDecodeCmd(s *state) *cobra.Command {
	var (
		key  string
		trim bool
	)

	cmd := &cobra.Command{
		Use:   "decode CIPHERTEXT",
		Short: "Decode a message with a key",
		Long: `Decode a message produced by encode.

The ciphertext must be exactly as printed by encode, including its padding.
Keys that repeat a character cannot be decoded. Use --trim to drop the
padding spaces from the end of the result.`,
		Example: `  challenge decode "ecrseonftiiatrm   on" --key 2e1Ca --trim`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, s, args[0], key, trim)
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "Cipher key (default from config)")
	cmd.Flags().BoolVar(&trim, "trim", false, "Remove trailing padding from the result")

	return cmd
}

func runDecode(cmd *cobra.Command, s *state, ciphertext, flagKey string, trim bool) error {
	key, err := s.resolveKey(flagKey)
	if err != nil {
		return err
	}

	s.logger.Debug("Decoding message",
		zap.String("key_fingerprint", cipher.Fingerprint(key)),
		zap.Int("length", utf8.RuneCountInString(ciphertext)))

	decoded, err := cipher.DecodeMessage(ciphertext, key)
	if err != nil {
		return fmt.Errorf("failed to decode message: %w", err)
	}
	if trim {
		decoded = strings.TrimRight(decoded, " ")
	}

	fmt.Fprintln(cmd.OutOrStdout(), decoded)
	return nil
}
