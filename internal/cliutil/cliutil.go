// Package cliutil holds small terminal-interaction helpers shared by the
// terra-save CLI verbs: confirmation prompts and human-readable summaries.
package cliutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"
)

// IsInteractive reports whether fd is attached to a terminal, used to
// decide whether to show a confirmation prompt.
func IsInteractive(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// ConfirmOverwrite asks the user whether to overwrite an existing file at
// path. When stdin isn't a terminal it defaults to "no" rather than
// blocking.
func ConfirmOverwrite(in io.Reader, out io.Writer, path string) bool {
	if f, ok := in.(*os.File); ok && !IsInteractive(f.Fd()) {
		return false
	}

	fmt.Fprintf(out, "%s already exists. Overwrite? [y/N] ", path)
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

// PlaytimeString renders game ticks (100ns units) as a human-readable
// duration, e.g. "3 days".
func PlaytimeString(ticks int64) string {
	d := time.Duration(ticks*100) * time.Nanosecond
	return humanize.RelTime(time.Time{}, time.Time{}.Add(d), "", "")
}

// ByteSize renders a byte count as a human-readable size, e.g. "4.2 MB".
func ByteSize(n int64) string {
	return humanize.Bytes(uint64(n))
}
