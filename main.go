package main

import (
	"context"
	"log"

	"github.com/TristanFaureY/cath-ticket-bot/bot"
	"github.com/TristanFaureY/cath-ticket-bot/config"
	"github.com/TristanFaureY/cath-ticket-bot/handlers"
	"github.com/TristanFaureY/cath-ticket-bot/utils/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	client, err := database.Connect(cfg.MongoURI())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	store, err := database.NewOccurrenceStore(client, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Error initializing occurrence store: %v", err)
	}

	b, err := bot.New(cfg, store)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}

	d := handlers.Register(b)

	b.Run()

	// Drain in-flight record writes before closing the connections.
	d.Wait()
	b.Close()
	if err := client.Disconnect(context.Background()); err != nil {
		log.Printf("Error disconnecting from database: %v", err)
	}
}
