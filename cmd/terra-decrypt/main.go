// Command terra-decrypt writes the plaintext content of an encrypted
// player save (".plr") to a ".dplr" file, for debugging and test-corpus
// preparation.
//
// Usage:
//
//	terra-decrypt <in.plr> [out.dplr]
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
		fmt.Fprintln(os.Stderr, "usage: terra-decrypt <in.plr> [out.dplr]")
		os.Exit(1)
	}

	in := os.Args[1]
	out := in
	if len(os.Args) == 3 {
		out = os.Args[2]
	} else {
		out = swapExtension(in, ".dplr")
	}

	plaintext, err := codec.DecryptFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decrypt %s: %v\n", in, err)
		os.Exit(2)
	}

	if err := os.WriteFile(out, plaintext, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", out, err)
		os.Exit(2)
	}

	fmt.Printf("decrypted %s -> %s (%d bytes)\n", in, out, len(plaintext))
}

func swapExtension(path, ext string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[:i] + ext
	}
	return path + ext
}
