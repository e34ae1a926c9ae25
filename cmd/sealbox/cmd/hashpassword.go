package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/sealbox/codec"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Hash a password for storage",
	Long: `Derives a PBKDF2-SHA256 hash of the password under a fresh random
salt and prints both, base64-encoded. Persist both values; the salt is
required to verify the password later.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readInput(args)
		if err != nil {
			return err
		}

		hash, salt, err := codec.HashPassword(password)
		if err != nil {
			return err
		}
		fmt.Printf("hash: %s\nsalt: %s\n", hash, salt)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}
