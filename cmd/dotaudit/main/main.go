package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dotaudit/cmd/dotaudit"
	"github.com/arthur-debert/dotaudit/pkg/style"
)

func main() {
	rootCmd := dotaudit.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Render(os.Stderr, style.ErrorStyle, fmt.Sprintf(dotaudit.MsgErrorPrefix, err)))
		os.Exit(1)
	}
}
