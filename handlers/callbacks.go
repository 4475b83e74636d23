// handlers/callbacks.go
package handlers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/TheWhiteHat1/osint-bot-host/models"
)

// callbackKinds maps menu button payloads to lookup kinds.
var callbackKinds = map[string]models.Kind{
	"number_info":  models.KindNumber,
	"vehicle_info": models.KindVehicle,
	"pak_sim_info": models.KindPakistanSim,
	"gst_info":     models.KindGST,
	"pan_info":     models.KindPAN,
}

// HandleCallback processes menu button presses. verify_channels is always
// allowed; everything else requires membership in both channels first.
func (h *Handler) HandleCallback(update tgbotapi.Update) {
	query := update.CallbackQuery
	if _, err := h.Bot.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		h.Logger.Debug("callback ack failed", zap.Error(err))
	}

	userID := query.From.ID

	if query.Data == "verify_channels" {
		h.verifyChannels(query)
		return
	}

	if member, _ := h.isMemberOfAll(userID); !member {
		h.editOrReply(query, "⚠️ Please use /start and *Verify Joined Channels* first to use the bot functions.")
		return
	}

	h.Store.ClearPending(userID)

	if kind, ok := callbackKinds[query.Data]; ok {
		h.Store.SetPending(userID, kind)
		h.editOrReply(query, kindPrompt(kind))
		return
	}

	switch query.Data {
	case "profile":
		username := query.From.UserName
		if username == "" {
			username = "Not set"
		}
		h.editOrReply(query, fmt.Sprintf(
			"👤 *Profile*\n\n📛 Name: %s\n🔖 Username: @%s\n🆔 ID: `%d`\n💰 Credits: %d",
			query.From.FirstName, username, userID, h.Store.Credits(userID)))
	case "referral":
		count := h.Store.ReferralCount(userID)
		h.editOrReply(query, fmt.Sprintf(
			"🔗 *Referral Program*\n\nInvite friends & earn free coins!\n\n👉 `%s`\n\n📊 Your Referrals: %d\n💰 Credits Earned: %d\n\n_You get +1 credit for every successful referral._",
			h.referralLink(userID), count, count))
	case "help":
		h.editOrReply(query, h.helpText())
	default:
		h.editOrReply(query, "Unknown action.")
	}
}

// verifyChannels re-checks membership after the user claims to have joined.
// The bot-admin probe only decides logging; the membership check and the
// user-facing texts are the same either way.
func (h *Handler) verifyChannels(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	chatID := query.Message.Chat.ID

	for _, ch := range h.channels() {
		if !h.isBotAdminIn(ch) {
			h.Logger.Debug("bot is not admin in channel, falling back to plain membership check",
				zap.String("channel", ch.Bare()))
		}
	}

	member, missing := h.isMemberOfAll(userID)
	if member {
		h.editOrReply(query, "✅ Verification successful! Sending main menu...")
		h.sendWelcome(chatID, userID)
		return
	}

	text := "❌ *Verification Failed*\n\nYou need to join both channels:\n"
	for _, ch := range missing {
		text += "• " + ch.Handle() + "\n"
	}
	text += "\nPlease join them and tap *Verify Joined Channels* again."
	h.editOrReply(query, text)
}

// editOrReply edits the message behind a callback in place and falls back
// to a fresh reply when the edit is rejected (caption-only messages, or the
// text is unchanged).
func (h *Handler) editOrReply(query *tgbotapi.CallbackQuery, text string) {
	chatID := query.Message.Chat.ID

	edit := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdown
	if _, err := h.Bot.Send(edit); err == nil {
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := h.Bot.Send(msg); err != nil {
		h.Logger.Warn("fallback reply failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
