package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/terra-rs/save-codec/internal/batch"
)

func newBundleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bundle <dir> <out.tar.gz>",
		Short: "Bundle a directory of .dplr fixtures into a gzip tar archive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := batch.BundleCorpus(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("bundled %s -> %s\n", args[0], args[1])
			return nil
		},
	}
}
