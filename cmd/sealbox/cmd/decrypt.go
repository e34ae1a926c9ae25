package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/sealbox/codec"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt [token]",
	Short: "Open a token and print the original value",
	Long: `Decrypts a token produced by encrypt (token from the argument or
stdin). Structured values are printed as compact JSON, plain strings
as-is. A failure means the token was tampered with, truncated, or
sealed under a different master secret.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := codec.FromEnv()
		if err != nil {
			return err
		}

		token, err := readInput(args)
		if err != nil {
			return err
		}

		v, err := c.Decrypt(token)
		if err != nil {
			return err
		}
		fmt.Println(v.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
}
