package main

import (
	"fmt"
	"os"

	"pagelock/cmd"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:   "pagelock",
	Short: "Pagelock - password-protect static HTML and Markdown documents.",
	Long: `Pagelock turns a Markdown or HTML document into a single password-protected
HTML file that can be published on any static host. Decryption happens entirely
in the viewer's browser; no server-side logic is ever involved.

Usage:
  pagelock <command> [flags]

Available Commands:
  protect    Convert, encrypt, and wrap a document into a protected HTML file
  convert    Convert a Markdown file to HTML
  encrypt    Encrypt a document into a portable token file
  decrypt    Decrypt a token file back into the original document

Run 'pagelock help <command>' for more details on a specific command.
`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(c *cobra.Command, args []string) {
		banner := figure.NewFigure("pagelock", "", true)
		banner.Print()
		fmt.Println()
		fmt.Println("Run 'pagelock --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.ProtectCmd)
	rootCmd.AddCommand(cmd.ConvertCmd)
	rootCmd.AddCommand(cmd.EncryptCmd)
	rootCmd.AddCommand(cmd.DecryptCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
