package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Akotch/ig-preview/internal/storage/postgres"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Применяет схему базы данных",
	Run: func(cmd *cobra.Command, args []string) {
		db := postgres.InitDB()
		defer db.Close()

		if err := db.Migrate(context.Background()); err != nil {
			log.Fatalf("FATAL: migration failed: %v", err)
		}
		fmt.Println("Database schema applied.")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
