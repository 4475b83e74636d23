// handlers/handler.go
package handlers

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/TheWhiteHat1/osint-bot-host/config"
	"github.com/TheWhiteHat1/osint-bot-host/lookup"
	"github.com/TheWhiteHat1/osint-bot-host/models"
	"github.com/TheWhiteHat1/osint-bot-host/store"
)

// BotClient is the slice of *tgbotapi.BotAPI the handlers actually use,
// split out so tests can run against a fake.
type BotClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetChatMember(cfg tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

// Handler owns all update processing. It is driven sequentially from the
// update loop in main; handlers run to completion one at a time, so the
// store needs no locking.
type Handler struct {
	Bot      BotClient
	OwnerBot BotClient
	Store    store.Store
	Lookup   *lookup.Client
	Cfg      *config.Config
	Admins   mapset.Set[int64]
	Logger   *zap.Logger

	BotUsername string
	BotID       int64
}

// NewHandler wires a Handler. ownerBot may equal bot when no separate owner
// token is configured.
func NewHandler(bot, ownerBot BotClient, st store.Store, lc *lookup.Client, cfg *config.Config, botUsername string, botID int64, logger *zap.Logger) *Handler {
	admins := mapset.NewThreadUnsafeSet[int64]()
	for _, id := range cfg.AdminIDs {
		admins.Add(id)
	}
	return &Handler{
		Bot:         bot,
		OwnerBot:    ownerBot,
		Store:       st,
		Lookup:      lc,
		Cfg:         cfg,
		Admins:      admins,
		Logger:      logger,
		BotUsername: botUsername,
		BotID:       botID,
	}
}

// IsAdmin reports whether the user id belongs to the configured admin set.
func (h *Handler) IsAdmin(userID int64) bool {
	return h.Admins.Contains(userID)
}

func (h *Handler) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.Bot.Send(msg); err != nil {
		h.Logger.Warn("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (h *Handler) sendMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := h.Bot.Send(msg); err != nil {
		h.Logger.Warn("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// forwardToOwner mirrors every user query to the configured owner chat,
// best effort. Sent through the owner bot so the main bot's token can stay
// separate from the reporting channel.
func (h *Handler) forwardToOwner(user *tgbotapi.User, message string, kind models.Kind) {
	if h.OwnerBot == nil || h.Cfg.OwnerChatID == 0 {
		return
	}
	username := user.UserName
	if username == "" {
		username = "N/A"
	}
	firstName := user.FirstName
	if firstName == "" {
		firstName = "N/A"
	}
	text := fmt.Sprintf(
		"👤 User: %s\n📛 Name: %s\n🆔 ID: %d\n💬 Message: %s\n🛠 Used: %s",
		username, firstName, user.ID, message, kind.Title(),
	)
	if _, err := h.OwnerBot.Send(tgbotapi.NewMessage(h.Cfg.OwnerChatID, text)); err != nil {
		h.Logger.Warn("failed to forward to owner", zap.Error(err))
	}
}

// referralLink builds the deep link users share to earn credits.
func (h *Handler) referralLink(userID int64) string {
	return fmt.Sprintf("https://t.me/%s?start=%d", h.BotUsername, userID)
}
