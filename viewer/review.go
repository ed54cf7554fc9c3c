package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"prdesk.io/viewer/render"
	"prdesk.io/viewer/report"
	"prdesk.io/viewer/review"
)

var reviewCmd = &cobra.Command{
	Use:   "review REVIEW.json",
	Short: "Shows the code changes suggested by a review",
	Long: `Shows the code changes suggested by a review.

With --format=html the complete report page is written, including the suggestions without code
changes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		r, err := review.Load(args[0])
		if err != nil {
			return err
		}

		if c.Format == "html" {
			b, err := report.Build(r, reportOptions(c))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b.Doc("/").Data)
			return err
		}

		files, err := report.Files(r, reportOptions(c))
		if errors.Is(err, review.ErrNoSuggestions) {
			log.Printf("%s: %v", args[0], err)
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %v", args[0], err)
		}

		w, err := render.GetWriter(c.Format, c.RenderOptions())
		if err != nil {
			return err
		}
		return w.Write(cmd.OutOrStdout(), files...)
	},
}
