// Command ziransort sorts text in natural order, reading Arabic and
// Chinese numerals as numbers.
package main

import (
	"log/slog"
	"os"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := newRootCmd().Execute(); err != nil {
		log.Error("ziransort failed", "error", err)
		os.Exit(1)
	}
}
