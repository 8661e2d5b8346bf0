package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

func main() {
	// UTF-8 fallback keeps non-ASCII file names readable on bare terminals.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := newRootCmd(defaultRunner()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ropen:", err)
		os.Exit(1)
	}
}
