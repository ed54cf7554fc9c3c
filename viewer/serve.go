package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"prdesk.io/viewer/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve (REVIEW.json | OLD NEW)",
	Short: "Serves the report and reloads it when the inputs change",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		inputs := make([]string, len(args))
		for i, arg := range args {
			if inputs[i], err = filepath.Abs(arg); err != nil {
				return fmt.Errorf("resolving %s: %v", arg, err)
			}
		}

		b, err := build(c, args)
		if err != nil {
			return err
		}

		// Start serving.
		srv, err := server.Run(c.Addr, b)
		if err != nil {
			return err
		}
		defer srv.Shutdown(context.Background())
		log.Printf("Now serving at http://%s, press Ctrl-C to shut down", srv.Addr())

		// Watch the directories of the inputs, editors often replace files instead of writing
		// them.
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("starting watcher: %v", err)
		}
		defer watcher.Close()
		for _, in := range inputs {
			dir := filepath.Dir(in)
			if slices.Contains(watcher.WatchList(), dir) {
				continue
			}
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("starting watch: %v", err)
			}
		}

		// Setup signals to react to Ctrl-C.
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)

		for {
			select {
			case event := <-watcher.Events:
				if event.Has(fsnotify.Chmod) || !slices.Contains(inputs, filepath.Clean(event.Name)) {
					continue
				}
				if _, err := os.Stat(event.Name); os.IsNotExist(err) {
					// Reload once the file is back.
					continue
				}

				start := time.Now()
				b, err := build(c, args)
				if err != nil {
					log.Printf("failed to update report: %v", err)
					continue
				}
				srv.ReplaceBundle(b)
				log.Printf("Report reloaded (%v)", time.Since(start))
			case err := <-watcher.Errors:
				return fmt.Errorf("watching: %v", err)
			case err := <-srv.Error():
				return fmt.Errorf("serving: %v", err)
			case <-sigint:
				fmt.Print("\r") // remove Ctrl-C output characters
				log.Printf("Received Ctrl-C, shutting down")
				return nil
			}
		}
	},
}
