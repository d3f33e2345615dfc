package main

import (
	"errors"

	"github.com/antithesishq/xkcdpass/internal/passphrase"
	"github.com/antithesishq/xkcdpass/internal/proptest"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that word selection is uniform",
		Long: "Check that word selection is uniform. The check draws many words from a list and runs a chi-square " +
			"goodness-of-fit test against the uniform distribution, then does the same for the case chosen in mixed mode. " +
			"A correct generator fails about once in a thousand runs.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			logger := newLogger(flags, cmd.ErrOrStderr())

			cfg := passphrase.Config{
				List:   orFatal(flags.GetString("list")),
				File:   orFatal(flags.GetString("file")),
				Case:   passphrase.DefaultCase,
				Number: 1,
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			list, err := cfg.LoadList()
			if err != nil {
				return err
			}

			trials := orFatal(flags.GetInt("trials"))
			if trials < 1 {
				trials = 10 * list.Len()
			}
			r := newRand(flags, logger)
			logger = logger.With("list", list.Name(), "trials", trials)
			logger.Info("checking word selection", "words", list.Len())

			var errs []error
			if err := proptest.CheckUniform(r, list, trials); err != nil {
				logger.Error("word selection check failed", "err", err)
				errs = append(errs, err)
			} else {
				logger.Info("word selection check passed")
			}
			if err := proptest.CheckMixedCase(r, trials); err != nil {
				logger.Error("mixed case check failed", "err", err)
				errs = append(errs, err)
			} else {
				logger.Info("mixed case check passed")
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().StringP("list", "l", passphrase.DefaultList, "built-in word list to check")
	cmd.Flags().StringP("file", "f", "", "custom word list file to check (overrides --list)")
	cmd.Flags().Int("trials", 0, "number of words to draw (default 10 per word in the list)")
	return cmd
}
