package cases

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aarnio/casedesk/internal/caseform"
	"github.com/aarnio/casedesk/internal/errors"
	"github.com/aarnio/casedesk/internal/models"
	"github.com/aarnio/casedesk/internal/repositories"
	"github.com/aarnio/casedesk/internal/sqlite"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "cases",
	Title: "Case content",
}

func init() {
	Export.Flags().String("out", "./cases", "directory for exported case files")
}

func openRepository(ctx context.Context) (*repositories.CaseRepository, *sqlite.Databases, error) {
	url := os.Getenv("CASEDESK_SQLITE_URL")
	if url == "" {
		url = "./casedesk.sqlite"
	}
	dbs, err := sqlite.NewDatabases(ctx, url)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open databases", slog.String("url", url))
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return repositories.NewCaseRepository(dbs, logger), dbs, nil
}

var Export = &cobra.Command{
	Use:     "export",
	GroupID: "cases",
	Short:   "Export cases",
	Long:    `Writes every case to a JSON file named after its case number`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := context.Background()

		repo, dbs, err := openRepository(ctx)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Database error: %v\n", err)
			return
		}
		defer func() { _ = dbs.Close() }()

		outDir, err := cmd.Flags().GetString("out")
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "invalid out flag: %v\n", err)
			return
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Output directory error: %v\n", err)
			return
		}

		cases, err := repo.List(ctx)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "List error: %v\n", err)
			return
		}

		for _, c := range cases {
			data, err := json.MarshalIndent(c, "", "  ")
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Marshal error for case %d: %v\n", c.CaseNumber, err)
				return
			}
			path := filepath.Join(outDir, fmt.Sprintf("case-%d.json", c.CaseNumber))
			if err := os.WriteFile(path, data, 0o644); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Write error for case %d: %v\n", c.CaseNumber, err)
				return
			}
			fmt.Printf("Exported case %d to %s\n", c.CaseNumber, path)
		}
		fmt.Printf("Exported %d cases\n", len(cases))
	},
}

var Import = &cobra.Command{
	Use:     "import [file...]",
	GroupID: "cases",
	Short:   "Import cases",
	Long: `Reads case JSON files and saves them to the database.
An existing case with the same number is overwritten.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		repo, dbs, err := openRepository(ctx)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Database error: %v\n", err)
			return
		}
		defer func() { _ = dbs.Close() }()

		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Read error for %s: %v\n", path, err)
				return
			}

			var c models.Case
			if err := json.Unmarshal(data, &c); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Parse error for %s: %v\n", path, err)
				return
			}

			// Imported files go through the same validation as the editor so a
			// broken sub-document can never reach the database.
			validated, err := caseform.FromCase(&c).Case()
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Validation error for %s: %v\n", path, err)
				return
			}

			err = repo.Create(ctx, validated)
			if errors.Is(err, repositories.ErrDuplicateCase) {
				err = repo.Update(ctx, validated.CaseNumber, validated)
			}
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Save error for %s: %v\n", path, err)
				return
			}
			fmt.Printf("Imported case %d from %s\n", validated.CaseNumber, path)
		}
	},
}
