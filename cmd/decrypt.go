package cmd

import (
	"errors"
	"os"
	"strings"

	"pagelock/internal/crypt"
	pkerrors "pagelock/internal/errors"
	"pagelock/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	decryptInput    string
	decryptOutput   string
	decryptPassword string
)

var DecryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt a token file back into the original document",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")

		password, err := resolvePassword(decryptPassword, false)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read password: %w", err)
		}

		spinner, cleanup := startSpinner("Decrypting document...")
		defer cleanup()

		raw, err := os.ReadFile(decryptInput)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read input file %s: %w", decryptInput, err)
		}

		plaintext, err := crypt.Decrypt(string(raw), password)
		if err != nil {
			// The operator is trusted: unlike the embedded viewer, the CLI
			// says which failure it was.
			switch {
			case errors.Is(err, pkerrors.ErrAuthFailure):
				return Logger.ErrorfAndReturn("decryption failed: wrong password or tampered data")
			case errors.Is(err, pkerrors.ErrMalformedToken), errors.Is(err, pkerrors.ErrUnknownVersion):
				return Logger.ErrorfAndReturn("%s is not a valid pagelock token: %v", decryptInput, err)
			default:
				return Logger.ErrorfAndReturn("decryption failed: %w", err)
			}
		}

		output := decryptOutput
		if output == "" {
			output = strings.TrimSuffix(decryptInput, ".pagelock")
			if output == decryptInput {
				output = decryptInput + ".decrypted"
			}
		}

		if err := os.WriteFile(output, plaintext, 0644); err != nil {
			return Logger.ErrorfAndReturn("failed to write %s: %w", output, err)
		}

		Logger.Infof("Decrypt command completed successfully")
		spinner.FinalMSG = color.GreenString("✓") + " Decrypted document written to " + ui.Path.Sprint(output)
		return nil
	},
}

func init() {
	DecryptCmd.Flags().StringVarP(&decryptInput, "input", "i", "", "path to the token file")
	DecryptCmd.Flags().StringVarP(&decryptOutput, "output", "o", "", "path for the decrypted output (default: input without .pagelock)")
	DecryptCmd.Flags().StringVarP(&decryptPassword, "password", "p", "", "password for decryption (prompted if omitted)")
	_ = DecryptCmd.MarkFlagRequired("input")
	registerCommonFlags(DecryptCmd)
}
