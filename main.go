package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"waste-report-server/config"
	"waste-report-server/database"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "waste-report-server",
		Short: "Waste complaint reporting backend",
		Long: `Backend for citizen waste complaints. Citizens submit complaints with a photo,
panchayat admins assign workers and deadlines, and workers resolve their tasks.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(); err != nil {
				log.Println("No .env file found, using system environment variables")
			}
			config.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(summaryCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and event stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := database.Initialize(config.AppConfig.Database.URL); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo workers, complaints and panchayats into empty tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Initialize(config.AppConfig.Database.URL)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			if err := seedDemoData(db); err != nil {
				return fmt.Errorf("failed to seed demo data: %w", err)
			}
			log.Println("✅ Demo data ready")
			return nil
		},
	}
}
