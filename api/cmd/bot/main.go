package main

import (
	"log"
	"math/rand"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"food-checker/api/internal/assess"
	"food-checker/api/internal/assess/gemini"
	"food-checker/api/internal/assess/mock"
	"food-checker/api/internal/catalog"
	"food-checker/api/internal/config"
	"food-checker/api/internal/telegram"
)

func main() {
	cfg := config.Load()
	if cfg.TelegramBotToken == "" {
		log.Fatal("missing required env TELEGRAM_BOT_TOKEN")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Fatal(err)
	}
	bot.Debug = false

	cat := catalog.Default()
	r := &telegram.Router{
		Bot:     bot,
		Engine:  newEngine(cfg, cat),
		Catalog: cat,
	}

	log.Printf("bot %s polling with engine %s", bot.Self.UserName, r.Engine.Name())
	r.Run()
}

func newEngine(cfg *config.Config, cat catalog.Catalog) assess.Engine {
	if cfg.Engine == "mock" || (cfg.Engine == "" && cfg.GeminiAPIKey == "") {
		return mock.New(cat, rand.NewSource(time.Now().UnixNano()))
	}
	return gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
}
