package config

import (
	"log"

	"github.com/TristanFaureY/cath-ticket-bot/model"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load loads the configuration from environment variables.
func Load() (*model.Config, error) {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("MONGO_ADDR", "localhost:27017")
	v.SetDefault("MONGO_DB", "ticket-bot")
	v.SetDefault("COMMAND_PREFIX", "&")
	v.SetDefault("OCCURRENCE_WINDOW_DAYS", 30)

	token := v.GetString("BOT_TOKEN")
	if token == "" {
		log.Fatal("Error: BOT_TOKEN environment variable not set")
	}

	mongoUser := v.GetString("MONGO_USER")
	if mongoUser == "" {
		log.Fatal("Error: MONGO_USER environment variable not set")
	}

	mongoPass := v.GetString("MONGO_PASS")
	if mongoPass == "" {
		log.Fatal("Error: MONGO_PASS environment variable not set")
	}

	if v.GetString("LOG_WEBHOOK_URL") == "" {
		log.Println("Warning: LOG_WEBHOOK_URL not set, webhook logging will be disabled")
	}

	windowDays := v.GetInt("OCCURRENCE_WINDOW_DAYS")
	if windowDays <= 0 {
		log.Printf("Warning: invalid OCCURRENCE_WINDOW_DAYS value, using default of 30")
		windowDays = 30
	}

	cfg := &model.Config{
		BotToken:      token,
		MongoUser:     mongoUser,
		MongoPass:     mongoPass,
		MongoAddr:     v.GetString("MONGO_ADDR"),
		MongoDatabase: v.GetString("MONGO_DB"),
		Prefix:        v.GetString("COMMAND_PREFIX"),
		WindowDays:    windowDays,
		LogWebhookURL: v.GetString("LOG_WEBHOOK_URL"),
	}

	return cfg, nil
}
