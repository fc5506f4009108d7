package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"invoicegen/internal/api"
)

func newDownloadCommand(app *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "download <invoice-id>",
		Short: "Download an invoice PDF by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid invoice id %q", args[0])
			}

			data, err := app.API.DownloadPDF(cmd.Context(), id)
			if err != nil {
				return err
			}
			path, err := api.SavePDF(dir, id, data)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, app.Styles.Success.Render("Saved "+path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", app.Config.Download.Dir, "directory to save the PDF into")
	return cmd
}
