//go:build tools

package main

// Keeps codegen tooling pinned in go.mod.
import (
	_ "github.com/vektra/mockery/v2"
)
