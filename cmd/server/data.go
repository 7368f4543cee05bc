package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [json|yaml]",
		Short: "Export all workouts, exercises and history",
		Long: `Export the whole store.

FORMATS:

  json   Full JSON document, accepted by 'liftlog import' and POST /api/import
  yaml   Same content as YAML, for reading

EXAMPLES:

  liftlog export                  # JSON to stdout
  liftlog export json -o dump.json
  liftlog export yaml`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"json", "yaml"},
		RunE: func(cmd *cobra.Command, args []string) error {
			format := "json"
			if len(args) == 1 {
				format = args[0]
			}

			rt, err := opts.open()
			if err != nil {
				return err
			}
			defer rt.close()

			var data []byte
			switch format {
			case "json":
				data, err = rt.store.Transfer.Export()
			case "yaml":
				data, err = rt.store.Transfer.ExportYAML()
			default:
				return fmt.Errorf("unknown format: %s (use json or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			if output != "" {
				if err := os.WriteFile(output, data, 0o600); err != nil {
					return fmt.Errorf("failed to write file: %w", err)
				}
				color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "✓ Exported to %s\n", output)
				return nil
			}

			out := cmd.OutOrStdout()
			if _, err := out.Write(data); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with an exported JSON document",
		Long: `Import a JSON document produced by 'liftlog export json'.

Existing workouts, exercises and history are removed first. If the document
is malformed nothing is changed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}

			rt, err := opts.open()
			if err != nil {
				return err
			}
			defer rt.close()

			summary, err := rt.store.Transfer.Import(data)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Imported %d workouts, %d exercises, %d history entries\n",
				summary.Workouts, summary.Exercises, summary.History)
			return nil
		},
	}
}
