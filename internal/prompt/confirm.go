package prompt

import (
	"errors"
	"strings"
)

var ErrNotInteractive = errors.New("not running in a terminal, use --yes to confirm")

// Confirm asks a yes/no question on the terminal, anything but yes is a no
func Confirm(question string) (bool, error) {
	if !isInteractive {
		return false, ErrNotInteractive
	}
	answer, err := TextInput(question, "y/N", "")
	if err != nil {
		return false, err
	}
	return isYes(answer), nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
