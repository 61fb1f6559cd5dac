//go:build mage

package main

import (
	"os"
	"os/exec"
)

// Test runs the full test suite with the FTS5 module compiled in.
func Test() error {
	return run("go", "test", "-tags", "sqlite_fts5", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return run("go", "vet", "-tags", "sqlite_fts5", "./...")
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
