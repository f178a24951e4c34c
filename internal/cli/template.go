package cli

import (
	"os"

	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/SscSPs/mobilepos_backend/internal/utils/csvimport"
	"github.com/spf13/cobra"
)

func newTemplateCommand() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "template <products|parts>",
		Short: "Write the CSV import template",
		Long: `Writes the semicolon separated example file for products or parts, with a UTF-8 BOM.
Without --file the template is written to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseEntityKind(args[0])
			if err != nil {
				return err
			}
			data := csvimport.TemplateBytes(kind)
			if outFile == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if outFile == "-" {
				outFile = csvimport.TemplateFileName(kind)
			}
			if err := os.WriteFile(outFile, data, 0o644); err != nil {
				return err
			}
			cmd.Printf("Wrote %s\n", outFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outFile, "file", "f", "", `Destination file ("-" uses the default template name)`)
	return cmd
}
