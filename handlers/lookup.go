// handlers/lookup.go
package handlers

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/TheWhiteHat1/osint-bot-host/format"
	"github.com/TheWhiteHat1/osint-bot-host/models"
)

// HandleText processes a free-text message: it runs the access gate, then
// consumes the pending lookup selection and dispatches the lookup. A credit
// is charged only after the upstream call succeeds; failed or empty lookups
// cost nothing.
func (h *Handler) HandleText(update tgbotapi.Update) {
	user := update.Message.From
	chatID := update.Message.Chat.ID
	text := strings.TrimSpace(update.Message.Text)

	if h.Store.IsBanned(user.ID) {
		h.send(chatID, "⛔ You are banned from using this bot.")
		return
	}

	if member, _ := h.isMemberOfAll(user.ID); !member {
		h.send(chatID, "⚠️ Please use the /start command and *Verify Joined Channels* first to use the bot.")
		return
	}

	kind := h.Store.Pending(user.ID)

	// The credit gate runs before the pending slot is consumed, so a user
	// who tops up can resend the same input without reselecting.
	if kind != models.KindNone && h.Store.Credits(user.ID) <= 0 {
		h.send(chatID, fmt.Sprintf(
			"❌ Not enough credits! Your current balance is %d.\n💰 Buy credits from %s or earn via /referral.",
			h.Store.Credits(user.ID), h.Cfg.AdminUsername))
		return
	}

	h.forwardToOwner(user, text, kind)

	if kind == models.KindNone || !kind.ValidInput(text) {
		h.Store.ClearPending(user.ID)
		h.send(chatID, "⚠️ Please use the menu buttons to select a lookup type first. Type /start for the menu.")
		return
	}

	h.Store.ClearPending(user.ID)
	h.send(chatID, searchingMessage(kind, kind.Normalize(text)))

	outcome := h.Lookup.Execute(kind, text)
	switch outcome.Status {
	case models.OutcomeSuccess:
		if _, err := h.Store.Debit(user.ID); err != nil {
			h.Logger.Error("failed to persist debit", zap.Int64("user_id", user.ID), zap.Error(err))
		}
		h.sendMarkdown(chatID, format.Format(kind, outcome.Records))
	case models.OutcomeEmpty:
		h.send(chatID, emptyResultMessage(kind))
	case models.OutcomeUpstream:
		h.send(chatID, upstreamErrorMessage(kind, outcome.HTTPStatus))
	case models.OutcomeMalformed:
		h.send(chatID, malformedMessage(kind))
	default:
		h.send(chatID, "⚠️ An error occurred while processing your request.")
	}
}

func searchingMessage(kind models.Kind, input string) string {
	switch kind {
	case models.KindNumber:
		return fmt.Sprintf("⏳ Searching number %s...", input)
	case models.KindVehicle:
		return fmt.Sprintf("⏳ Searching vehicle RC %s...", input)
	case models.KindPakistanSim:
		return fmt.Sprintf("⏳ Searching Pak SIM %s...", input)
	case models.KindGST:
		return fmt.Sprintf("⏳ Searching GST %s...", input)
	case models.KindPAN:
		return fmt.Sprintf("⏳ Searching PAN %s...", input)
	}
	return "⏳ Searching..."
}

func emptyResultMessage(kind models.Kind) string {
	switch kind {
	case models.KindNumber:
		return "❌ No information found for this number."
	case models.KindVehicle:
		return "❌ No vehicle information found."
	case models.KindPakistanSim:
		return "❌ No SIM information found."
	case models.KindGST:
		return "❌ No GST information found."
	case models.KindPAN:
		return "❌ No PAN information found."
	}
	return "❌ No information found."
}

func upstreamErrorMessage(kind models.Kind, status int) string {
	switch kind {
	case models.KindVehicle:
		return fmt.Sprintf("❌ Vehicle API Error: Status code %d", status)
	case models.KindPakistanSim:
		return fmt.Sprintf("❌ SIM API Error: Status code %d", status)
	case models.KindGST:
		return fmt.Sprintf("❌ GST API Error: Status code %d", status)
	case models.KindPAN:
		return fmt.Sprintf("❌ PAN API Error: Status code %d", status)
	}
	return fmt.Sprintf("❌ API Error: Status code %d", status)
}

func malformedMessage(kind models.Kind) string {
	switch kind {
	case models.KindVehicle:
		return "❌ Invalid response from the vehicle API."
	case models.KindPakistanSim:
		return "❌ Invalid response from the SIM API."
	case models.KindGST:
		return "❌ Invalid response from the GST API."
	case models.KindPAN:
		return "❌ Invalid response from the PAN API."
	}
	return "❌ Invalid response from the API server."
}
