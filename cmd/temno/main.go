// cmd/temno/main.go
package main

import (
	cmd "github.com/mwiater/temno/internal/cli"
)

// main starts the temno CLI application by delegating to the
// cobra root command defined in the temno package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
