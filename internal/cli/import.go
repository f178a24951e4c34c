package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/SscSPs/mobilepos_backend/internal/adapters/backendapi"
	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/SscSPs/mobilepos_backend/internal/core/services"
	"github.com/SscSPs/mobilepos_backend/internal/dto"
	"github.com/SscSPs/mobilepos_backend/internal/platform/config"
	"github.com/SscSPs/mobilepos_backend/internal/repositories"
	"github.com/SscSPs/mobilepos_backend/internal/utils/csvimport"
	"github.com/spf13/cobra"
)

func newImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Validate and push catalog CSV files",
	}
	cmd.AddCommand(newImportValidateCommand(), newImportPushCommand())
	return cmd
}

type validateOptions struct {
	output  string
	report  string
	summary int
}

func newImportValidateCommand() *cobra.Command {
	opts := validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <products|parts> <file.csv>",
		Short: "Validate a CSV file without creating anything",
		Long: `Parses and validates every row of the file and prints the outcome.
Exits with an error when at least one row is invalid.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.output); err != nil {
				return err
			}
			kind, err := domain.ParseEntityKind(args[0])
			if err != nil {
				return err
			}
			result, err := readAndValidate(kind, args[1])
			if err != nil {
				return err
			}

			if opts.report != "" {
				if err := writeReportFile(opts.report, result); err != nil {
					return err
				}
				slog.Debug("Wrote validation report", slog.String("path", opts.report))
			}

			out := cmd.OutOrStdout()
			if opts.output == formatText {
				printValidation(out, filepath.Base(args[1]), result, opts.summary)
			} else if err := encode(out, opts.output, result); err != nil {
				return err
			}

			if result.InvalidCount > 0 {
				return fmt.Errorf("%d of %d rows are invalid", result.InvalidCount, len(result.Rows))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", formatText, "Output format: text, json or yaml")
	cmd.Flags().StringVar(&opts.report, "report", "", "Also write an XLSX validation report to this path")
	cmd.Flags().IntVar(&opts.summary, "summary", 5, "Number of invalid rows listed in text output")
	return cmd
}

func readAndValidate(kind domain.EntityKind, path string) (domain.ParseResult, error) {
	if err := services.CheckFileType(path); err != nil {
		return domain.ParseResult{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ParseResult{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return csvimport.ParseAndValidate(string(data), kind)
}

func writeReportFile(path string, result domain.ParseResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := csvimport.WriteReport(f, result); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func printValidation(w io.Writer, fileName string, result domain.ParseResult, limit int) {
	fmt.Fprintf(w, "%s (%s): %d valid, %d invalid\n", fileName, result.Kind, result.ValidCount, result.InvalidCount)
	for _, line := range csvimport.Summarize(result, limit) {
		fmt.Fprintf(w, "  %s\n", line)
	}
}

type pushOptions struct {
	token   string
	backend string
	dryRun  bool
}

func newImportPushCommand() *cobra.Command {
	opts := pushOptions{}

	cmd := &cobra.Command{
		Use:   "push <products|parts> <file.csv>",
		Short: "Create the valid rows of a CSV file on the shop backend",
		Long: `Validates the file, then creates its valid rows one by one on the backend.
Creation stops at the first rejected row; rows created before it are kept.
The batch is recorded in the configured database.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseEntityKind(args[0])
			if err != nil {
				return err
			}
			if opts.token == "" {
				opts.token = os.Getenv("POSCTL_TOKEN")
			}
			if opts.token == "" && !opts.dryRun {
				return fmt.Errorf("a backend token is required (--token or POSCTL_TOKEN)")
			}
			return runPush(cmd.Context(), cmd.OutOrStdout(), kind, args[1], opts)
		},
	}
	cmd.Flags().StringVar(&opts.token, "token", "", "Bearer token for the shop backend")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "Backend base URL (defaults to BACKEND_BASE_URL)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Validate and print the rows that would be sent")
	return cmd
}

func runPush(ctx context.Context, out io.Writer, kind domain.EntityKind, path string, opts pushOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.backend != "" {
		cfg.BackendBaseURL = strings.TrimRight(opts.backend, "/")
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	logger := slog.Default()
	store, err := repositories.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	client := backendapi.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout)
	svc := services.NewImportService(client, store.Repos.ImportBatchRepo, services.WithMaxBytes(cfg.ImportMaxBytes))

	preview, err := svc.Preview(ctx, kind, filepath.Base(path), f)
	if err != nil {
		return err
	}
	printValidation(out, preview.FileName, preview.Result, 5)
	if preview.Result.ValidCount == 0 {
		return fmt.Errorf("no valid rows to import")
	}

	req := dto.NewImportCommitRequest(preview.FileName, preview.Result)
	if opts.dryRun {
		return encode(out, formatYAML, req)
	}

	result, err := svc.Commit(ctx, kind, req, "posctl", opts.token)
	if result != nil {
		fmt.Fprintf(out, "Created %d of %d\n", result.Created, result.Attempted)
		if result.FailedRow > 0 {
			fmt.Fprintf(out, "Stopped at row %d: %s\n", result.FailedRow, result.Error)
		}
	}
	return err
}
