package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/sealbox/codec"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a new master secret",
	Long: `Generates 32 cryptographically random bytes, base64-encoded, for
operators to provision as SEALBOX_MASTER_KEY. Losing the master secret
makes every token produced under it permanently unrecoverable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := codec.GenerateKey()
		if err != nil {
			return fmt.Errorf("generating key: %w", err)
		}
		fmt.Println(key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keygenCmd)
}
