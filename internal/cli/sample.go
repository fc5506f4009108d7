package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"invoicegen/internal/bulk"
)

func newSampleCSVCommand(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sample-csv",
		Short: "Write a sample CSV for bulk upload",
		Long: `Writes a CSV with the expected bulk-upload columns and two example
rows. Multi-item invoices use commas to separate values within a cell.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create sample csv: %w", err)
			}
			defer func() {
				_ = f.Close()
			}()

			if err := bulk.WriteSample(f); err != nil {
				return fmt.Errorf("write sample csv: %w", err)
			}
			fmt.Fprintln(app.Out, app.Styles.Success.Render("Wrote "+output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", bulk.SampleFilename, "where to write the sample CSV")
	return cmd
}
