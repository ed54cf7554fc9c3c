package main

import (
	"log"

	"github.com/spf13/cobra"

	"prdesk.io/viewer/pack"
)

var packCmd = &cobra.Command{
	Use:   "pack OUT.tar (REVIEW.json | OLD NEW)",
	Short: "Packs the report into a .tar file",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		b, err := build(c, args[1:])
		if err != nil {
			return err
		}
		if err := pack.Pack(args[0], b, c.Minify); err != nil {
			return err
		}
		log.Printf("Wrote %d documents to %s", len(b.Docs()), args[0])
		return nil
	},
}
