package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/terra-rs/save-codec/internal/cliutil"
	"github.com/terra-rs/save-codec/internal/codec"
)

func newEncryptCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "encrypt <in.dplr> [out.plr]",
		Short: "Encrypt a plaintext player save",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			out := swapExtension(in, ".plr")
			if len(args) == 2 {
				out = args[1]
			}

			if !force && fileExists(out) && !cliutil.ConfirmOverwrite(os.Stdin, os.Stdout, out) {
				return fmt.Errorf("not overwriting %s", out)
			}

			plaintext, err := os.ReadFile(in)
			if err != nil {
				return fmt.Errorf("read %s: %w", in, err)
			}
			if err := codec.EncryptFile(out, plaintext); err != nil {
				return fmt.Errorf("encrypt %s: %w", in, err)
			}

			fmt.Printf("encrypted %s -> %s (%s)\n", in, out, cliutil.ByteSize(int64(len(plaintext))))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing output file without prompting")
	return cmd
}
