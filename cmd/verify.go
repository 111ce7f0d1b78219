package cmd

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <image>",
	Short: "Run a one-shot verification of a face image",
	Long: `Verify a face image against all enrolled members and print the verdict.
The attempt is recorded in the access log exactly as a gate verification
would be.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	image, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	ctx := context.Background()
	g, err := openGate(ctx)
	if err != nil {
		return err
	}
	defer g.Close()

	result, err := g.service.Verify(ctx, image)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	confidence := math.Round(result.Score*100*100) / 100
	fmt.Printf("%s\n", displayVerdict(result.Verdict))
	fmt.Printf("  best match: %s (passport %s)\n", result.Member.Name, result.Member.Passport)
	fmt.Printf("  confidence: %.2f%% (threshold %.0f%%)\n", confidence, g.service.Threshold()*100)
	return nil
}
