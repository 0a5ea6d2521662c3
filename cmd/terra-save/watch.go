package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/terra-rs/save-codec/internal/batch"
	"github.com/terra-rs/save-codec/internal/logging"
)

func newWatchCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Serve a websocket that streams round-trip progress for a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogDir, err := cmd.Flags().GetString("catalog")
			if err != nil {
				return err
			}
			cat, err := openCatalog(catalogDir)
			if err != nil {
				return err
			}

			mux := http.NewServeMux()
			mux.Handle("/watch", batch.WatchHandler(args[0], cat))

			logging.Info("watch server listening", logging.F("addr", addr), logging.F("dir", args[0]))
			fmt.Printf("listening on %s, connect a websocket client to ws://%s/watch\n", addr, addr)
			return http.ListenAndServe(addr, mux)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8089", "address to listen on")
	addCatalogFlag(cmd)
	return cmd
}
