//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Analyze runs the built binary against one video reference, saving the
// result to history and writing reports to the default directory.
func Analyze(reference string) error {
	mg.Deps(Build)

	bin := filepath.Join(binDir, binName)
	return run(bin, "analyze", reference, "--save")
}

// Batch analyzes every reference listed in the given file.
func Batch(file string) error {
	mg.Deps(Build)

	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("batch file: %w", err)
	}
	bin := filepath.Join(binDir, binName)
	return run(bin, "analyze", "--batch", file, "--save", "--output-dir", "reports")
}
