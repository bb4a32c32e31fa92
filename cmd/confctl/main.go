// confctl is the CLI for inspecting and editing .cfg configuration files.
package main

import (
	"fmt"
	"os"

	"github.com/franku1122/confmanager/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
