// Command terra-encrypt writes the AES-128-CBC encrypted form of a
// plaintext player save (".dplr") to a ".plr" file, the mirror of
// terra-decrypt.
//
// Usage:
//
//	terra-encrypt <in.dplr> [out.plr]
//
// Exit codes: 0 success, 1 argument error, 2 codec failure.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/terra-rs/save-codec/internal/codec"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintln(os.Stderr, "usage: terra-encrypt <in.dplr> [out.plr]")
		os.Exit(1)
	}

	in := os.Args[1]
	var out string
	if len(os.Args) == 3 {
		out = os.Args[2]
	} else {
		out = swapExtension(in, ".plr")
	}

	plaintext, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", in, err)
		os.Exit(1)
	}

	if err := codec.EncryptFile(out, plaintext); err != nil {
		fmt.Fprintf(os.Stderr, "encrypt %s: %v\n", in, err)
		os.Exit(2)
	}

	fmt.Printf("encrypted %s -> %s (%d bytes)\n", in, out, len(plaintext))
}

func swapExtension(path, ext string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[:i] + ext
	}
	return path + ext
}
