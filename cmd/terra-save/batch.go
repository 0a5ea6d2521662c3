package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/terra-rs/save-codec/internal/batch"
	"github.com/terra-rs/save-codec/internal/logging"
)

func newBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Round-trip every .dplr sample under a directory and report pass/fail",
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

			runID, results, err := batch.Run(args[0], cat)
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				logging.Info("round-trip", logging.F("run", runID.String()), logging.F("path", r.Path),
					logging.F("version", r.Version), logging.F("passed", r.Passed), logging.F("duration", r.Duration.String()))
				if !r.Passed {
					failed++
					fmt.Printf("FAIL %s: %v\n", r.Path, r.Err)
				}
			}

			fmt.Printf("%d/%d passed\n", len(results)-failed, len(results))
			if failed > 0 {
				return fmt.Errorf("%d file(s) failed round-trip", failed)
			}
			return nil
		},
	}
	addCatalogFlag(cmd)
	return cmd
}
