package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "sealbox",
	Short: "Sealbox encrypts per-user records for storage at rest",
	Long: `Sealbox seals sensitive records (profiles, settings, API credentials)
into opaque tamper-evident tokens before they reach shared storage.
The master secret is read from ` + "`SEALBOX_MASTER_KEY`" + `.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
