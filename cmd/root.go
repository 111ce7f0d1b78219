package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aerogate",
	Short: "Biometric access-control backend",
	Long: `AeroGate is a biometric access-control backend. It enrolls members by
storing a face embedding together with identity and expiry metadata, verifies
presented faces against the enrolled set, and records every attempt in an
append-only access log.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
