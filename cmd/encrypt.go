package cmd

import (
	"errors"
	"os"

	"pagelock/internal/crypt"
	pkerrors "pagelock/internal/errors"
	"pagelock/internal/policy"
	"pagelock/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	encryptInput       string
	encryptOutput      string
	encryptPassword    string
	encryptAllowUnsafe bool
)

var EncryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt a document into a portable token file",
	Long: `Encrypts the input under a key derived from the password and writes the
portable token (version, salt, nonce, and ciphertext in one printable string)
to the output file. Use 'pagelock decrypt' to reverse it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")

		password, err := resolvePassword(encryptPassword, true)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read password: %w", err)
		}

		if err := policy.Check(password, encryptAllowUnsafe); err != nil {
			if errors.Is(err, pkerrors.ErrWeakPassword) {
				Logger.Errorf("%v", err)
				Logger.Errorf("Use %s to accept a weak password anyway", ui.Flag.Sprint("--allow-unsafe-password"))
				return err
			}
			return Logger.ErrorfAndReturn("password rejected: %w", err)
		}

		spinner, cleanup := startSpinner("Encrypting document...")
		defer cleanup()

		plaintext, err := os.ReadFile(encryptInput)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read input file %s: %w", encryptInput, err)
		}

		Logger.Infof("Encrypting %d bytes", len(plaintext))
		token, err := crypt.Encrypt(plaintext, password)
		if err != nil {
			return Logger.ErrorfAndReturn("encryption failed: %w", err)
		}

		output := encryptOutput
		if output == "" {
			output = encryptInput + ".pagelock"
		}

		if err := os.WriteFile(output, []byte(token+"\n"), 0644); err != nil {
			return Logger.ErrorfAndReturn("failed to write %s: %w", output, err)
		}

		Logger.Infof("Encrypt command completed successfully")
		spinner.FinalMSG = color.GreenString("✓") + " Encrypted token written to " + ui.Path.Sprint(output)
		return nil
	},
}

func init() {
	EncryptCmd.Flags().StringVarP(&encryptInput, "input", "i", "", "path to the input file")
	EncryptCmd.Flags().StringVarP(&encryptOutput, "output", "o", "", "path to the output token file (default: <input>.pagelock)")
	EncryptCmd.Flags().StringVarP(&encryptPassword, "password", "p", "", "password for encryption (prompted if omitted)")
	EncryptCmd.Flags().BoolVar(&encryptAllowUnsafe, "allow-unsafe-password", false, "skip password strength validation (unsafe)")
	_ = EncryptCmd.MarkFlagRequired("input")
	registerCommonFlags(EncryptCmd)
}
