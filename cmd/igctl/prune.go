package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Akotch/ig-preview/internal/storage/postgres"
	"github.com/spf13/cobra"
)

// Истечение токенов проверяется при каждом чтении, фоновой чистки нет.
// Эта команда лишь убирает мертвые строки из таблицы previews.
var pruneCmd = &cobra.Command{
	Use:   "prune-previews",
	Short: "Удаляет истекшие preview-токены",
	Run: func(cmd *cobra.Command, args []string) {
		db := postgres.InitDB()
		defer db.Close()

		n, err := db.PruneExpiredPreviews(context.Background(), time.Now())
		if err != nil {
			log.Fatalf("FATAL: prune failed: %v", err)
		}
		fmt.Printf("Removed %d expired preview(s).\n", n)
	},
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}
