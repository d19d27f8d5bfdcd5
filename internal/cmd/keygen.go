package cmd

import (
	"fmt"

	"github.com/hybridanalysis/challenge/cipher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewKeygenCmd creates and returns the keygen subcommand for the challenge CLI.
// It prints random keys built from UUID hex digits.
func NewKeygenCmd(s *state) *cobra.Command {
	var (
		length int
		count  int
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate random keys",
		Long: fmt.Sprintf(`Generate random cipher keys.

Each key holds distinct characters taken from the hex digits of random UUIDs,
so it mixes lower-case letters and digits and can always be decoded. Keys
can be 1 to %d characters long.`, cipher.MaxGeneratedKeyLength),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeygen(cmd, s, length, count)
		},
	}

	cmd.Flags().IntVarP(&length, "length", "n", 5, "Number of characters per key")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "Number of keys to generate")

	return cmd
}

func runKeygen(cmd *cobra.Command, s *state, length, count int) error {
	if count < 1 {
		return fmt.Errorf("%w: count must be at least 1, got %d", cipher.ErrInvalidArgument, count)
	}

	for range count {
		key, err := cipher.GenerateKey(length)
		if err != nil {
			return fmt.Errorf("failed to generate key: %w", err)
		}
		s.logger.Debug("Generated key", zap.String("key_fingerprint", cipher.Fingerprint(key)))
		fmt.Fprintln(cmd.OutOrStdout(), key)
	}
	return nil
}
