package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)

	cfg := LoadConfig()

	store, err := NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open local state: %v", err)
	}
	defer store.Close()

	client := NewAPIClient(cfg.BoardURL, cfg.QuoteURL)
	app := NewApp(client, store)

	rootCmd := SetupCommands(app)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
