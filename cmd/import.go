package cmd

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kozaktomas/aerogate/internal/access"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <manifest.csv>",
	Short: "Bulk-enroll members from a CSV manifest",
	Long: `Bulk-enroll members from a CSV manifest with the header
name,email,passport,expiry,image. Image paths are resolved relative to the
manifest file. Rows that fail validation are reported and skipped; the
import continues with the next row.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

// manifestRow is one parsed line of the import manifest.
type manifestRow struct {
	line    int
	request access.EnrollRequest
	image   string
}

// readManifest parses the CSV manifest and validates the header.
func readManifest(path string) ([]manifestRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("manifest is empty")
	}

	header := strings.Join(records[0], ",")
	if header != "name,email,passport,expiry,image" {
		return nil, fmt.Errorf("unexpected manifest header %q", header)
	}

	dir := filepath.Dir(path)
	rows := make([]manifestRow, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != 5 {
			return nil, fmt.Errorf("line %d: expected 5 columns, got %d", i+2, len(record))
		}
		rows = append(rows, manifestRow{
			line: i + 2,
			request: access.EnrollRequest{
				Name:     record[0],
				Email:    record[1],
				Passport: record[2],
				Expiry:   record[3],
			},
			image: filepath.Join(dir, record[4]),
		})
	}
	return rows, nil
}

func runImport(cmd *cobra.Command, args []string) error {
	rows, err := readManifest(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("Nothing to import")
		return nil
	}

	ctx := context.Background()
	g, err := openGate(ctx)
	if err != nil {
		return err
	}
	defer g.Close()

	bar := progressbar.NewOptions(len(rows),
		progressbar.OptionSetDescription("Enrolling members"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("members"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionFullWidth(),
	)

	var enrolled int
	var failures []string
	for _, row := range rows {
		image, err := os.ReadFile(row.image)
		if err != nil {
			failures = append(failures, fmt.Sprintf("line %d (%s): %v", row.line, row.request.Name, err))
			bar.Add(1)
			continue
		}

		row.request.Image = image
		if _, err := g.service.Enroll(ctx, row.request); err != nil {
			failures = append(failures, fmt.Sprintf("line %d (%s): %v", row.line, row.request.Name, err))
			bar.Add(1)
			continue
		}

		enrolled++
		bar.Add(1)
	}
	fmt.Println()

	fmt.Printf("Enrolled %d of %d members\n", enrolled, len(rows))
	for _, failure := range failures {
		fmt.Printf("  skipped %s\n", failure)
	}
	return nil
}
