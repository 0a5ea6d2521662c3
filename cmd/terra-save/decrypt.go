package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/terra-rs/save-codec/internal/cliutil"
	"github.com/terra-rs/save-codec/internal/codec"
)

func newDecryptCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "decrypt <in.plr> [out.dplr]",
		Short: "Decrypt an encrypted player save to plaintext",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			out := swapExtension(in, ".dplr")
			if len(args) == 2 {
				out = args[1]
			}

			if !force && fileExists(out) && !cliutil.ConfirmOverwrite(os.Stdin, os.Stdout, out) {
				return fmt.Errorf("not overwriting %s", out)
			}

			plaintext, err := codec.DecryptFile(in)
			if err != nil {
				return fmt.Errorf("decrypt %s: %w", in, err)
			}
			if err := os.WriteFile(out, plaintext, 0644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			fmt.Printf("decrypted %s -> %s (%s)\n", in, out, cliutil.ByteSize(int64(len(plaintext))))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing output file without prompting")
	return cmd
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func swapExtension(path, ext string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[:i] + ext
	}
	return path + ext
}
