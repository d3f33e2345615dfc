package main

import (
	"fmt"
	"strings"

	"github.com/antithesishq/xkcdpass/internal/casing"
	"github.com/antithesishq/xkcdpass/internal/passphrase"
	"github.com/antithesishq/xkcdpass/internal/wordlist"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flags that may also be set from the --config file.
var configKeys = []string{"case", "list", "file", "number", "separator"}

func addGenerateFlags(flags *pflag.FlagSet) {
	modes := make([]string, 0, len(casing.Modes()))
	for _, m := range casing.Modes() {
		modes = append(modes, m.String())
	}
	flags.StringP("case", "c", passphrase.DefaultCase.String(), "case to use on the words: "+strings.Join(modes, ", "))
	flags.StringP("list", "l", passphrase.DefaultList, "built-in word list: "+strings.Join(wordlist.Names(), ", ")+" (sources: xkcdpass lists; short2 is derived, not EFF short list #2)")
	flags.StringP("file", "f", "", "custom word list file, one word per line (overrides --list)")
	flags.IntP("number", "n", passphrase.DefaultNumber, "number of words")
	flags.StringP("separator", "s", passphrase.DefaultSeparator, "separator between words")
	flags.BoolP("entropy", "e", false, "print an entropy estimate to stderr")
	flags.String("config", "", "YAML file with defaults for the flags above")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	logger := newLogger(flags, cmd.ErrOrStderr())

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	logger.Debug("resolved config",
		"list", cfg.List,
		"file", cfg.File,
		"case", cfg.Case,
		"number", cfg.Number,
		"separator", cfg.Separator,
	)

	gen := passphrase.NewGenerator(newRand(flags, logger), logger)
	p, err := gen.Generate(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), p.String())
	if orFatal(flags.GetBool("entropy")) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%.1f bits of entropy (%d words from a list of %d)\n",
			p.EntropyWithCase(), len(p.Words), p.ListLen)
	}
	return nil
}

// loadConfig merges defaults, the optional config file, and explicitly set
// flags, in increasing order of precedence.
func loadConfig(flags *pflag.FlagSet) (passphrase.Config, error) {
	v := viper.New()
	if path := orFatal(flags.GetString("config")); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return passphrase.Config{}, &passphrase.ConfigError{Field: "config", Value: path, Err: err}
		}
	}
	for _, key := range configKeys {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return passphrase.Config{}, fmt.Errorf("bind flag %s: %w", key, err)
		}
	}

	mode, err := casing.Parse(v.GetString("case"))
	if err != nil {
		return passphrase.Config{}, &passphrase.ConfigError{Field: "case", Value: v.GetString("case"), Err: err}
	}
	cfg := passphrase.Config{
		List:      strings.ToLower(v.GetString("list")),
		File:      v.GetString("file"),
		Case:      mode,
		Number:    v.GetInt("number"),
		Separator: v.GetString("separator"),
	}
	return cfg, cfg.Validate()
}
