// handlers/start.go
package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Start handles /start, with an optional referrer id argument from a deep
// link. New users get the initial credit grant; users who already joined
// both channels go straight to the main menu, everyone else gets the join
// prompt.
func (h *Handler) Start(update tgbotapi.Update) {
	user := update.Message.From
	chatID := update.Message.Chat.ID

	// Referral argument, first-wins. The bonus only lands when the referrer
	// is already known to the ledger.
	if arg := update.Message.CommandArguments(); arg != "" {
		if referrerID, err := strconv.ParseInt(arg, 10, 64); err == nil {
			bonus, err := h.Store.SetReferrer(user.ID, referrerID)
			if err != nil {
				h.Logger.Error("failed to record referral", zap.Error(err))
			}
			if bonus {
				h.send(referrerID, "🎁 Congratulations! A new user joined using your referral link. You received 1 credit!")
			}
		}
	}

	if _, err := h.Store.EnsureUser(user.ID); err != nil {
		h.Logger.Error("failed to create user", zap.Int64("user_id", user.ID), zap.Error(err))
	}

	// A fresh /start always drops any half-finished lookup selection.
	h.Store.ClearPending(user.ID)

	if member, _ := h.isMemberOfAll(user.ID); member {
		h.sendWelcome(chatID, user.ID)
		return
	}
	h.sendJoinPrompt(chatID)
}

func (h *Handler) sendJoinPrompt(chatID int64) {
	ch1, ch2 := Channel(h.Cfg.Channel1), Channel(h.Cfg.Channel2)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL("📢 Join Channel 1", ch1.URL())),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL("📢 Join Channel 2", ch2.URL())),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("✅ Verify Joined Channels", "verify_channels")),
	)

	caption := fmt.Sprintf(`⚠️ *Please Join Our Channels*

To use this bot, you need to join both of our channels:

• *Channel 1:* %s
• *Channel 2:* %s

After joining, tap *Verify Joined Channels* below.`, ch1.Handle(), ch2.Handle())

	h.sendPhotoOrText(chatID, caption, keyboard)
}

func (h *Handler) sendWelcome(chatID, userID int64) {
	balance := h.Store.Credits(userID)

	welcome := fmt.Sprintf(`👋 Welcome to DARK GP System
🕒 Current Time: %s

🔍 OSINT Info Bot — Get Number / Vehicle / SIM Info 📱

💰 Credits: %d
☎️ Support: %s

⚠️ Use this service lawfully.`,
		time.Now().Format("2006-01-02 15:04:05"), balance, h.Cfg.AdminUsername)

	h.sendPhotoOrText(chatID, welcome, h.mainMenu())
}

func (h *Handler) mainMenu() tgbotapi.InlineKeyboardMarkup {
	buyURL := "https://t.me/" + strings.TrimPrefix(h.Cfg.AdminUsername, "@")
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📱 Number Lookup", "number_info")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🚘 Vehicle Lookup", "vehicle_info")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🇵🇰 Pakistan SIM Info", "pak_sim_info")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🏢 GST Lookup", "gst_info")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📄 PAN Lookup", "pan_info")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📂 Profile", "profile")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔗 Referral", "referral")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL("💰 Buy Credits", buyURL)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("ℹ️ Help", "help")),
	)
}

// sendPhotoOrText sends the configured logo with the text as caption and
// falls back to a plain message when the photo send fails.
func (h *Handler) sendPhotoOrText(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(h.Cfg.LogoURL))
	photo.Caption = text
	photo.ParseMode = tgbotapi.ModeMarkdown
	photo.ReplyMarkup = keyboard
	if _, err := h.Bot.Send(photo); err == nil {
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard
	if _, err := h.Bot.Send(msg); err != nil {
		h.Logger.Warn("failed to send welcome", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
