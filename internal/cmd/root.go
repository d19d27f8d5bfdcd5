package cmd

import (
	"errors"
	"fmt"

	"github.com/hybridanalysis/challenge/internal/config"
	"github.com/hybridanalysis/challenge/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errNoKey is returned when neither --key nor the config supplies a key.
var errNoKey = errors.New("no key given: pass --key or set CHALLENGE_KEY")

// state is shared by the root command and its subcommands. It is filled in by
// the root command's PersistentPreRunE.
type state struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCmd creates and returns the root cobra command for the challenge CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&state{})
}

func newRootCmd(s *state) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "challenge",
		Short: "challenge - keyed transposition cipher and string puzzles",
		Long: `challenge encodes messages with a keyed columnar transposition cipher
and solves a handful of small string puzzles.

Use subcommands to perform different operations:
  - encode, decode: Transpose a message with a key
  - inspect: Show how a key orders the columns
  - keygen: Generate random keys
  - shortcut, sortwords, unique: String puzzles

A default key and output format (used by inspect and version) can be set in
~/.challenge.yaml or through the CHALLENGE_KEY and CHALLENGE_FORMAT
environment variables.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s.logger != nil {
				_ = s.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&s.configPath, "config", "", "Path to config file (default $HOME/"+config.DefaultFileName+")")
	rootCmd.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "Enable debug logging")

	groupCipher := "cipher"
	groupPuzzles := "puzzles"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupCipher,
		Title: "Cipher Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupPuzzles,
		Title: "Puzzle Commands",
	})

	encodeCmd := NewEncodeCmd(s)
	decodeCmd := NewDecodeCmd(s)
	inspectCmd := NewInspectCmd(s)
	keygenCmd := NewKeygenCmd(s)
	shortcutCmd := NewShortcutCmd()
	sortWordsCmd := NewSortWordsCmd()
	uniqueCmd := NewUniqueCmd()
	versionCmd := NewVersionCmd(s)

	encodeCmd.GroupID = groupCipher
	decodeCmd.GroupID = groupCipher
	inspectCmd.GroupID = groupCipher
	keygenCmd.GroupID = groupCipher
	shortcutCmd.GroupID = groupPuzzles
	sortWordsCmd.GroupID = groupPuzzles
	uniqueCmd.GroupID = groupPuzzles

	// Add subcommands
	rootCmd.AddCommand(encodeCmd, decodeCmd, inspectCmd, keygenCmd)
	rootCmd.AddCommand(shortcutCmd, sortWordsCmd, uniqueCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// setup loads the config and builds the logger.
func (s *state) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return err
	}
	s.cfg = cfg

	if s.logger == nil {
		logger, err := newLogger(s.verbose || cfg.Verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		s.logger = logger
	}

	s.logger.Debug("Starting command",
		zap.String("command", cmd.CommandPath()),
		zap.String("version", version.GetVersion()))
	return nil
}

// resolveKey prefers the --key flag, then the configured key.
func (s *state) resolveKey(flagKey string) (string, error) {
	if flagKey != "" {
		return flagKey, nil
	}
	if s.cfg != nil && s.cfg.Key != "" {
		s.logger.Debug("Using configured key")
		return s.cfg.Key, nil
	}
	return "", errNoKey
}
