//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// mockgen is invoked through `go generate` (see domain/attachment/resource.go);
// importing it here keeps it tracked in go.mod / go.sum.
package chat_kit

import (
	_ "go.uber.org/mock/mockgen"
)
