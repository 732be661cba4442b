package main

import "github.com/retrobricks/bricks-cli/internal/cmd"

func main() {
	cmd.Execute()
}
