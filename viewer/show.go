package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prdesk.io/viewer/align"
	"prdesk.io/viewer/render"
)

var showCmd = &cobra.Command{
	Use:   "show OLD NEW",
	Short: "Shows the diff between two files",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		oldText, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading old file: %v", err)
		}
		newText, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("reading new file: %v", err)
		}

		name := args[1]
		if args[0] != args[1] {
			name = args[0] + " -> " + args[1]
		}
		f := &render.File{
			Name: name,
			Rows: align.Diff(string(oldText), string(newText), align.WithTokenizer(tokenizer(c)(args[1]))),
		}

		w, err := render.GetWriter(c.Format, c.RenderOptions())
		if err != nil {
			return err
		}
		return w.Write(cmd.OutOrStdout(), f)
	},
}
