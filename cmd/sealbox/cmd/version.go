package cmd

import "github.com/spf13/cobra"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sealbox version",
	Run: func(cmd *cobra.Command, args []string) {
		printBanner()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
