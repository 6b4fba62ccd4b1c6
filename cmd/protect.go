package cmd

import (
	"errors"
	"os"

	"pagelock/internal/crypt"
	pkerrors "pagelock/internal/errors"
	"pagelock/internal/policy"
	"pagelock/internal/render"
	"pagelock/internal/ui"
	"pagelock/internal/utils"
	"pagelock/internal/wrapper"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	protectInput       string
	protectOutput      string
	protectPassword    string
	protectStyle       string
	protectTitle       string
	protectAllowUnsafe bool
	protectMinify      bool
)

var ProtectCmd = &cobra.Command{
	Use:   "protect",
	Short: "Create a password-protected HTML file from a Markdown or HTML input",
	Long: `Converts the input to HTML if it is Markdown, encrypts it under a key
derived from the password, and embeds the result together with an in-browser
decryption engine into a single static HTML file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting protect command")

		password, err := resolvePassword(protectPassword, true)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read password: %w", err)
		}

		if err := policy.Check(password, protectAllowUnsafe); err != nil {
			if errors.Is(err, pkerrors.ErrWeakPassword) {
				Logger.Errorf("%v", err)
				Logger.Errorf("Use %s to accept a weak password anyway", ui.Flag.Sprint("--allow-unsafe-password"))
				return err
			}
			return Logger.ErrorfAndReturn("password rejected: %w", err)
		}

		spinner, cleanup := startSpinner("Protecting document...")
		defer cleanup()

		source, err := os.ReadFile(protectInput)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read input file %s: %w", protectInput, err)
		}

		css := ""
		if protectStyle != "" {
			styleBytes, err := os.ReadFile(protectStyle)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read CSS file %s: %w", protectStyle, err)
			}
			css = string(styleBytes)
		}

		title := protectTitle
		if title == "" {
			title = utils.TitleFromPath(protectInput)
		}

		document := string(source)
		if utils.IsMarkdownPath(protectInput) {
			Logger.Debugf("Input looks like Markdown, converting to HTML")
			document, err = render.MarkdownToHTML(document, css, title)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to convert markdown: %w", err)
			}
		}

		if protectMinify {
			Logger.Debugf("Minifying document before encryption")
			minified, err := render.MinifyHTML([]byte(document))
			if err != nil {
				// A document the minifier chokes on is still encryptable.
				Logger.Warnf("Minification failed, encrypting unminified document: %v", err)
			} else {
				Logger.Debugf("Minified %d bytes down to %d", len(document), len(minified))
				document = string(minified)
			}
		}

		Logger.Infof("Encrypting %d bytes", len(document))
		token, err := crypt.Encrypt([]byte(document), password)
		if err != nil {
			return Logger.ErrorfAndReturn("encryption failed: %w", err)
		}

		artifact, err := wrapper.Render(token, title, css)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to generate protected page: %w", err)
		}

		output := protectOutput
		if output == "" {
			output = utils.SiblingWithSuffix(protectInput, ".protected.html")
		}

		if err := os.WriteFile(output, artifact, 0644); err != nil {
			return Logger.ErrorfAndReturn("failed to write %s: %w", output, err)
		}

		Logger.Infof("Protect command completed successfully")
		spinner.FinalMSG = color.GreenString("✓") + " Protected document written to " + ui.Path.Sprint(output) + "\n" +
			color.CyanString("→") + " Publish it anywhere; it decrypts entirely in the viewer's browser"
		return nil
	},
}

func init() {
	ProtectCmd.Flags().StringVarP(&protectInput, "input", "i", "", "path to the input Markdown or HTML file")
	ProtectCmd.Flags().StringVarP(&protectOutput, "output", "o", "", "path to the output HTML file (default: <input>.protected.html)")
	ProtectCmd.Flags().StringVarP(&protectPassword, "password", "p", "", "password for encryption (prompted if omitted)")
	ProtectCmd.Flags().StringVar(&protectStyle, "style", "", "path to an optional CSS file to inline")
	ProtectCmd.Flags().StringVar(&protectTitle, "title", "", "document title (default: derived from the input filename)")
	ProtectCmd.Flags().BoolVar(&protectAllowUnsafe, "allow-unsafe-password", false, "skip password strength validation (unsafe)")
	ProtectCmd.Flags().BoolVar(&protectMinify, "minify", true, "minify the HTML before encryption")
	_ = ProtectCmd.MarkFlagRequired("input")
	registerCommonFlags(ProtectCmd)
}
