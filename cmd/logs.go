package cmd

import (
	"context"
	"fmt"

	"github.com/kozaktomas/aerogate/internal/database"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show recent access attempts",
	Long:  `Print the most recent access log entries, newest first.`,
	RunE:  runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().Int("limit", 20, "Maximum number of entries to show")
}

// displayVerdict renders a stored verdict as the phrase shown to operators.
func displayVerdict(verdict string) string {
	if verdict == database.VerdictGranted {
		return "ACCESS GRANTED"
	}
	return "ACCESS DENIED"
}

func runLogs(cmd *cobra.Command, args []string) error {
	limit := mustGetInt(cmd, "limit")

	ctx := context.Background()
	g, err := openGate(ctx)
	if err != nil {
		return err
	}
	defer g.Close()

	entries, err := g.logs.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("listing access logs: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No access attempts recorded")
		return nil
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	for _, entry := range entries {
		passport := entry.Passport
		if passport == "" {
			passport = "-"
		}
		fmt.Printf("LG-%04d  %s  %-14s  %6.2f%%  %s (%s)\n",
			entry.ID,
			entry.CreatedAt.Format("2006-01-02 15:04:05"),
			displayVerdict(entry.Verdict),
			entry.Confidence,
			entry.Name,
			passport,
		)
	}
	return nil
}
