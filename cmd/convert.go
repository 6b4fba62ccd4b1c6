package cmd

import (
	"fmt"
	"os"

	"pagelock/internal/render"
	"pagelock/internal/ui"
	"pagelock/internal/utils"

	"github.com/spf13/cobra"
)

var (
	convertInput  string
	convertOutput string
	convertStyle  string
	convertTitle  string
)

var ConvertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a Markdown file to a standalone HTML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting convert command")

		source, err := os.ReadFile(convertInput)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read input file %s: %w", convertInput, err)
		}

		css := ""
		if convertStyle != "" {
			styleBytes, err := os.ReadFile(convertStyle)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read CSS file %s: %w", convertStyle, err)
			}
			css = string(styleBytes)
		}

		title := convertTitle
		if title == "" {
			title = utils.TitleFromPath(convertInput)
		}

		document, err := render.MarkdownToHTML(string(source), css, title)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to convert markdown: %w", err)
		}

		output := convertOutput
		if output == "" {
			output = utils.SiblingWithSuffix(convertInput, ".html")
		}

		if err := os.WriteFile(output, []byte(document), 0644); err != nil {
			return Logger.ErrorfAndReturn("failed to write %s: %w", output, err)
		}

		Logger.Infof("Convert command completed successfully")
		fmt.Println(ui.Success.Sprint("✓") + " Converted " + ui.Path.Sprint(convertInput) + " to " + ui.Path.Sprint(output))
		return nil
	},
}

func init() {
	ConvertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "path to the input Markdown file")
	ConvertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "path to the output HTML file (default: <input>.html)")
	ConvertCmd.Flags().StringVar(&convertStyle, "style", "", "path to an optional CSS file to inline")
	ConvertCmd.Flags().StringVar(&convertTitle, "title", "", "document title (default: derived from the input filename)")
	_ = ConvertCmd.MarkFlagRequired("input")
	registerCommonFlags(ConvertCmd)
}
