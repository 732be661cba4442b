//go:build !windows

package internal

import "github.com/fatih/color"

// Emph highlights names and values in command output.
var Emph = color.New(color.FgCyan, color.Bold).SprintFunc()

// Warn highlights settings that need attention.
var Warn = color.New(color.FgYellow, color.Bold).SprintFunc()
