//go:build windows

package internal

import "fmt"

// Emph highlights names and values in command output.
var Emph = func(a ...interface{}) string {
	return fmt.Sprint(a...)
}

// Warn highlights settings that need attention.
var Warn = func(a ...interface{}) string {
	return fmt.Sprint(a...)
}
