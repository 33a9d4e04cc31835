package main

import (
	"fmt"
	"os"

	"github.com/sortiz4/muon/internal/errors"
	"github.com/spf13/cobra"
)

func renderCmd(flags *globalFlags) *cobra.Command {
	var (
		output string
		title  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the example page",
		Long: `Render the example page and write the HTML to stdout or a file.

Examples:
  muon render
  muon render --output=index.html
  muon render --title="Release notes"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if title != "" {
				cfg.Document.Title = title
			}

			logger := newLogger(cmd.ErrOrStderr(), flags.verbose)
			engine := newEngine(cfg, logger, nil)

			html, err := engine.Render(cmd.Context(), examplePage(cfg.Document))
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), html)
				return nil
			}
			if err := os.WriteFile(output, []byte(html+"\n"), 0644); err != nil {
				return errors.Newf(errors.CategoryCLI, "write %s", output).Wrap(err)
			}
			success(cmd.OutOrStdout(), "Wrote %s (%d bytes)", output, len(html))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVar(&title, "title", "", "Page title (default from muon.json)")

	return cmd
}
