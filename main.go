package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/estreelint/sort-imports/pkg/cmd"
)

func main() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		fmt.Println("unable to read build info")
		os.Exit(cmd.ExitCodeError)
	}
	if err := cmd.Execute(info.Main.Version); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
