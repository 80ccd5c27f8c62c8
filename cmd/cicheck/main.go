package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Sz-Ltc/CICD-Test-v2/cmd/cicheck/commands"
	"github.com/Sz-Ltc/CICD-Test-v2/cmd/cicheck/internal/clierr"
)

func main() {
	// CI jobs may provide the tool path overrides via a .env file.
	_ = godotenv.Load()

	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
