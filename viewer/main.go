// Command viewer shows code reviews and file diffs as unified diffs with intra-line highlights,
// in the terminal, as a served report or as a packed static site.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"prdesk.io/viewer/config"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	rootCmd := &cobra.Command{
		Use:          "viewer [command]",
		Short:        "Diff and review viewer",
		SilenceUsage: true,
	}
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(packCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
