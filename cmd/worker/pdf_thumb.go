package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muhammad-hassn/portfolio/internal/pdfthumb"
)

func newPDFThumbCmd() *cobra.Command {
	var scale float64

	cmd := &cobra.Command{
		Use:   "pdf-thumb <pdf> <out.png>",
		Short: "Render the first page of a PDF as a PNG certificate thumbnail",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pdfthumb.Extract(args[0], args[1], scale); err != nil {
				log := stderrLogger()
				log.Error().Err(err).Str("pdf", args[0]).Msg("extract failed")
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully saved %s page 1 to %s\n", args[0], args[1])
			return nil
		},
	}
	cmd.Flags().Float64Var(&scale, "scale", pdfthumb.DefaultScale, "zoom factor over 72 DPI")
	return cmd
}
