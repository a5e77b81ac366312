package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GSMProject-Team/bizzone.kz/internal/adapters/export"
)

func newExportCmd(app *app) *cobra.Command {
	var (
		format  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap := app.store.Snapshot()

			var content string
			switch format {
			case "csv":
				content = export.CSV(snap)
			case "yaml":
				var err error
				content, err = export.YAML(snap)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown export format %q", format)
			}

			if outPath == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), content)
				return err
			}
			if err := os.WriteFile(outPath, []byte(content), 0o600); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Export format: csv or yaml")
	cmd.Flags().StringVar(&outPath, "out", "", "Write to a file instead of stdout")

	return cmd
}
