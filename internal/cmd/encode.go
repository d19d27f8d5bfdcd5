package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hybridanalysis/challenge/cipher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewEncodeCmd creates and returns the encode subcommand for the challenge CLI.
// It encodes a message with the keyed transposition cipher.
func NewEncodeCmd(s *state) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "encode MESSAGE...",
		Short: "Encode a message with a key",
		Long: `Encode a message with the keyed columnar transposition cipher.

Multiple arguments are joined with single spaces. The output is padded with
spaces to a multiple of the key length; quote it to keep the padding.`,
		Example: `  challenge encode secretinformation --key 2e1Ca`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, s, strings.Join(args, " "), key)
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "Cipher key (default from config)")

	return cmd
}

func runEncode(cmd *cobra.Command, s *state, message, flagKey string) error {
	key, err := s.resolveKey(flagKey)
	if err != nil {
		return err
	}

	s.logger.Debug("Encoding message",
		zap.String("key_fingerprint", cipher.Fingerprint(key)),
		zap.Int("length", utf8.RuneCountInString(message)))

	encoded, err := cipher.EncodeMessage(message, key)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), encoded)
	return nil
}
