// main.go
package main

import (
	"log"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/TheWhiteHat1/osint-bot-host/config"
	"github.com/TheWhiteHat1/osint-bot-host/handlers"
	"github.com/TheWhiteHat1/osint-bot-host/lookup"
	"github.com/TheWhiteHat1/osint-bot-host/models"
	"github.com/TheWhiteHat1/osint-bot-host/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env file not found, continuing with system environment")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("configuration error", zap.Error(err))
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Fatal("failed to create bot", zap.Error(err))
	}
	logger.Info("authorized", zap.String("username", bot.Self.UserName))

	ownerBot := bot
	if cfg.OwnerBotToken != cfg.BotToken {
		ownerBot, err = tgbotapi.NewBotAPI(cfg.OwnerBotToken)
		if err != nil {
			logger.Warn("failed to create owner bot, forwarding through main bot", zap.Error(err))
			ownerBot = bot
		}
	}

	st := store.NewFileStore(cfg.UserDataFile, cfg.ReferralDataFile, cfg.BannedUsersFile, logger)
	lc := lookup.NewClient(cfg, logger)
	h := handlers.NewHandler(bot, ownerBot, st, lc, cfg, bot.Self.UserName, bot.Self.ID, logger)

	updates, err := updatesChannel(bot, cfg, logger)
	if err != nil {
		logger.Fatal("failed to start receiving updates", zap.Error(err))
	}

	// Updates are processed strictly one at a time; handlers never overlap,
	// so the store needs no locking.
	for update := range updates {
		processUpdate(h, update, logger)
	}
}

// updatesChannel starts webhook mode when WEBHOOK_DOMAIN is configured and
// falls back to long polling otherwise.
func updatesChannel(bot *tgbotapi.BotAPI, cfg *config.Config, logger *zap.Logger) (tgbotapi.UpdatesChannel, error) {
	if cfg.WebhookDomain == "" {
		logger.Warn("WEBHOOK_DOMAIN not set, using polling mode as fallback")
		if _, err := bot.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
			logger.Warn("failed to remove webhook before polling", zap.Error(err))
		}
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60
		return bot.GetUpdatesChan(u), nil
	}

	webhookURL := cfg.WebhookDomain + "/" + cfg.BotToken
	wh, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		return nil, err
	}
	if _, err := bot.Request(wh); err != nil {
		return nil, err
	}
	logger.Info("webhook set", zap.String("url", cfg.WebhookDomain), zap.String("port", cfg.Port))

	updates := bot.ListenForWebhook("/" + cfg.BotToken)
	go func() {
		if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
			logger.Fatal("webhook server failed", zap.Error(err))
		}
	}()
	return updates, nil
}

// processUpdate routes one update and contains any panic so a single bad
// update cannot take down the listening process.
func processUpdate(h *handlers.Handler, update tgbotapi.Update, logger *zap.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic while handling update", zap.Any("panic", r))
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		h.HandleCallback(update)
	case update.Message == nil:
		return
	case update.Message.IsCommand():
		routeCommand(h, update)
	case update.Message.Text != "":
		h.HandleText(update)
	}
}

func routeCommand(h *handlers.Handler, update tgbotapi.Update) {
	switch update.Message.Command() {
	case "start":
		h.Start(update)
	case "help":
		h.Help(update)
	case "profile":
		h.Profile(update)
	case "referral":
		h.Referral(update)
	case "credits":
		h.Credits(update)
	case "num":
		h.QuickLookup(update, models.KindNumber)
	case "vehicle":
		h.QuickLookup(update, models.KindVehicle)
	case "sim":
		h.QuickLookup(update, models.KindPakistanSim)
	case "gst":
		h.QuickLookup(update, models.KindGST)
	case "pan":
		h.QuickLookup(update, models.KindPAN)
	case "addcredits":
		h.AddCredits(update)
	case "deductcredits":
		h.DeductCredits(update)
	case "usercredits":
		h.UserCredits(update)
	case "delete":
		h.DeleteUser(update)
	case "ban":
		h.Ban(update)
	case "unban":
		h.Unban(update)
	case "broadcast":
		h.Broadcast(update)
	case "stats":
		h.Stats(update)
	}
}
