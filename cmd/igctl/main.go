package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "igctl",
	Short: "Maintenance utility for the IG Preview backend",
	Long: `igctl выполняет обслуживающие операции: применение схемы БД
и чистку истекших preview-токенов. Сервер эти команды не вызывает.`,
}

func main() {
	if err := godotenv.Load(".env.local"); err != nil {
		log.Println("Error loading .env.local file")
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
