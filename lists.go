package main

import (
	"fmt"

	"github.com/antithesishq/xkcdpass/internal/diceware"
	"github.com/antithesishq/xkcdpass/internal/wordlist"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newListsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Show the built-in word lists",
		Long:  "Show the built-in word lists, their sizes, and the entropy each word drawn from them contributes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"List", "Words", "Bits/word", "Source"})
			for _, name := range wordlist.Names() {
				list, err := wordlist.Builtin(name)
				if err != nil {
					return err
				}
				t.AppendRow(table.Row{
					name,
					list.Len(),
					fmt.Sprintf("%.2f", diceware.Bits(list.Len(), 1)),
					wordlist.Describe(name),
				})
			}
			t.Render()
			return nil
		},
	}
}
