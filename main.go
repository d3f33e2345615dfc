package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/antithesishq/xkcdpass/internal/entropy"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Set by the linker.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xkcdpass",
		Short: "Generate passphrases that are easy to remember",
		Long: "Generate passphrases that are easy to remember, in the style of https://xkcd.com/936/. " +
			"Words are drawn uniformly at random from a word list, so each word adds log2(list length) bits of entropy.",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runGenerate,
	}

	cmd.PersistentFlags().Bool("json", false, "emit logs in JSON")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "emit debug logs")
	cmd.PersistentFlags().Uint64("seed", 0, "seed for reproducible output (never use for real passphrases)")
	cmd.Flags().BoolP("version", "V", false, "print the version")

	addGenerateFlags(cmd.Flags())
	cmd.AddCommand(newListsCmd(), newCheckCmd())
	return cmd
}

func newLogger(flags *pflag.FlagSet, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if orFatal(flags.GetBool("verbose")) {
		level = slog.LevelDebug
	}
	var handler slog.Handler = slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	})
	if orFatal(flags.GetBool("json")) {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: false,
			Level:     level,
		})
	}
	return slog.New(handler)
}

// newRand returns the single random source for a command: the CSPRNG, unless
// --seed was given.
func newRand(flags *pflag.FlagSet, logger *slog.Logger) *rand.Rand {
	if !flags.Changed("seed") {
		return entropy.New(entropy.Crypto())
	}
	seed := orFatal(flags.GetUint64("seed"))
	logger.Warn("using deterministic seed; output is not secret", "seed", seed)
	return entropy.New(entropy.Seeded(seed))
}

// orFatal unwraps lookups of flags that are always registered.
func orFatal[T any](val T, err error) T {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return val
}
