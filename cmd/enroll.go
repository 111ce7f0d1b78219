package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/kozaktomas/aerogate/internal/access"
	"github.com/spf13/cobra"
)

var enrollCmd = &cobra.Command{
	Use:   "enroll <image>",
	Short: "Enroll a single member from a face image",
	Long: `Enroll one member from the command line. The image must contain exactly
one clearly visible face. Identity fields are passed as flags; the expiry
date accepts YYYY-MM-DD, DD-MM-YYYY, MM/DD/YYYY, or YYYY/MM/DD.`,
	Args: cobra.ExactArgs(1),
	RunE: runEnroll,
}

func init() {
	rootCmd.AddCommand(enrollCmd)

	enrollCmd.Flags().String("name", "", "Member name (required)")
	enrollCmd.Flags().String("email", "", "Member email")
	enrollCmd.Flags().String("passport", "", "Passport number (required)")
	enrollCmd.Flags().String("expiry", "", "Membership expiry date (required)")
	_ = enrollCmd.MarkFlagRequired("name")
	_ = enrollCmd.MarkFlagRequired("passport")
	_ = enrollCmd.MarkFlagRequired("expiry")
}

func runEnroll(cmd *cobra.Command, args []string) error {
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

	enrollment, err := g.service.Enroll(ctx, access.EnrollRequest{
		Name:     mustGetString(cmd, "name"),
		Email:    mustGetString(cmd, "email"),
		Passport: mustGetString(cmd, "passport"),
		Expiry:   mustGetString(cmd, "expiry"),
		Image:    image,
	})
	if err != nil {
		return fmt.Errorf("enrollment failed: %w", err)
	}

	fmt.Printf("Enrolled member #%d (uid %s)\n", enrollment.MemberID, enrollment.MemberUID)
	return nil
}
