package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/sealbox/codec"
)

var encryptAsJSON bool

var encryptCmd = &cobra.Command{
	Use:   "encrypt [value]",
	Short: "Seal a value into an opaque token",
	Long: `Encrypts the given value (or stdin when no argument is supplied) under
the master secret from SEALBOX_MASTER_KEY and prints the token. With
--json the input is parsed as a JSON document and sealed as a
structured value.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := codec.FromEnv()
		if err != nil {
			return err
		}

		input, err := readInput(args)
		if err != nil {
			return err
		}

		var v codec.Value
		if encryptAsJSON {
			var tree any
			if err := json.Unmarshal([]byte(input), &tree); err != nil {
				return fmt.Errorf("parsing JSON input: %w", err)
			}
			v = codec.Structured(tree)
		} else {
			v = codec.Text(input)
		}

		token, err := c.Encrypt(v)
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

// readInput returns the single positional argument, or all of stdin
// with a single trailing newline trimmed.
func readInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.Flags().BoolVar(&encryptAsJSON, "json", false, "Parse the input as a JSON document")
}
