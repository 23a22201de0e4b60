// Command hubctl is the operator tool for CreatorHub: schema migrations,
// moderation and listing previews straight against the database.
//
// Usage:
//
//	hubctl migrate up
//	hubctl approve creator <id>
//	hubctl list workflows --search slack --filter category=Marketing --page 2
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/creatorhub-backend/internal/app"
)

func main() {
	_ = godotenv.Load()

	var configPath string

	rootCmd := &cobra.Command{
		Use:           "hubctl",
		Short:         "CreatorHub operator tool",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default $CONFIG_PATH or ./config.yaml)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newMigrateCommand(&configPath))
	rootCmd.AddCommand(newApproveCommand(&configPath))
	rootCmd.AddCommand(newListCommand(&configPath))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
