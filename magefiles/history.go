//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// History lists recent analyses from the history database.
func History() error {
	mg.Deps(Build)

	bin := filepath.Join(binDir, binName)
	return run(bin, "history", "list")
}
