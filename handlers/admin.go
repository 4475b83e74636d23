// handlers/admin.go
package handlers

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// requireAdmin gates every admin command on the configured admin id set.
func (h *Handler) requireAdmin(update tgbotapi.Update) bool {
	if h.IsAdmin(update.Message.From.ID) {
		return true
	}
	h.send(update.Message.Chat.ID, "❌ Not authorized.")
	return false
}

// parseIDAmount pulls "<user_id> <amount>" out of the command arguments.
func parseIDAmount(args string) (int64, int, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected 2 arguments, got %d", len(fields))
	}
	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	amount, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return id, amount, nil
}

func parseID(args string) (int64, error) {
	fields := strings.Fields(args)
	if len(fields) != 1 {
		return 0, fmt.Errorf("expected 1 argument, got %d", len(fields))
	}
	return strconv.ParseInt(fields[0], 10, 64)
}

// AddCredits handles /addcredits <user_id> <amount>.
func (h *Handler) AddCredits(update tgbotapi.Update) {
	if !h.requireAdmin(update) {
		return
	}
	chatID := update.Message.Chat.ID
	targetID, amount, err := parseIDAmount(update.Message.CommandArguments())
	if err != nil {
		h.send(chatID, "⚠️ Usage: /addcredits <user_id> <amount>")
		return
	}
	balance, err := h.Store.AddCredits(targetID, amount)
	if err != nil {
		h.Logger.Error("failed to add credits", zap.Int64("user_id", targetID), zap.Error(err))
		h.send(chatID, "⚠️ Failed to save the updated balance.")
		return
	}
	h.send(chatID, fmt.Sprintf("✅ Added %d credits to %d. Balance: %d", amount, targetID, balance))
}

// DeductCredits handles /deductcredits <user_id> <amount>. The balance
// never goes below zero.
func (h *Handler) DeductCredits(update tgbotapi.Update) {
	if !h.requireAdmin(update) {
		return
	}
	chatID := update.Message.Chat.ID
	targetID, amount, err := parseIDAmount(update.Message.CommandArguments())
	if err != nil {
		h.send(chatID, "⚠️ Usage: /deductcredits <user_id> <amount>")
		return
	}
	balance, err := h.Store.DeductCredits(targetID, amount)
	if err != nil {
		h.Logger.Error("failed to deduct credits", zap.Int64("user_id", targetID), zap.Error(err))
		h.send(chatID, "⚠️ Failed to save the updated balance.")
		return
	}
	h.send(chatID, fmt.Sprintf("✅ Deducted %d credits from %d. Balance: %d", amount, targetID, balance))
}

// UserCredits handles /usercredits <user_id>.
func (h *Handler) UserCredits(update tgbotapi.Update) {
	if !h.requireAdmin(update) {
		return
	}
	chatID := update.Message.Chat.ID
	targetID, err := parseID(update.Message.CommandArguments())
	if err != nil {
		h.send(chatID, "⚠️ Usage: /usercredits <user_id>")
		return
	}
	h.send(chatID, fmt.Sprintf("👤 User %d has %d credits.", targetID, h.Store.Credits(targetID)))
}

// DeleteUser handles /delete <user_id>, removing the ledger entry. The user
// reverts to new-user semantics on next contact.
func (h *Handler) DeleteUser(update tgbotapi.Update) {
	if !h.requireAdmin(update) {
		return
	}
	chatID := update.Message.Chat.ID
	targetID, err := parseID(update.Message.CommandArguments())
	if err != nil {
		h.send(chatID, "⚠️ Usage: /delete <user_id>")
		return
	}
	deleted, err := h.Store.DeleteUser(targetID)
	if err != nil {
		h.Logger.Error("failed to delete user", zap.Int64("user_id", targetID), zap.Error(err))
		h.send(chatID, "⚠️ Failed to save the user data.")
		return
	}
	if !deleted {
		h.send(chatID, "⚠️ User not found.")
		return
	}
	h.send(chatID, fmt.Sprintf("🗑️ Deleted user %d from system.", targetID))
}

// Ban handles /ban <user_id>.
func (h *Handler) Ban(update tgbotapi.Update) {
	if !h.requireAdmin(update) {
		return
	}
	chatID := update.Message.Chat.ID
	targetID, err := parseID(update.Message.CommandArguments())
	if err != nil {
		h.send(chatID, "⚠️ Usage: /ban <user_id>")
		return
	}
	if err := h.Store.Ban(targetID); err != nil {
		h.Logger.Error("failed to save ban", zap.Int64("user_id", targetID), zap.Error(err))
		h.send(chatID, "⚠️ Failed to save the ban list.")
		return
	}
	h.send(chatID, fmt.Sprintf("⛔ User %d has been banned.", targetID))
}

// Unban handles /unban <user_id>.
func (h *Handler) Unban(update tgbotapi.Update) {
	if !h.requireAdmin(update) {
		return
	}
	chatID := update.Message.Chat.ID
	targetID, err := parseID(update.Message.CommandArguments())
	if err != nil {
		h.send(chatID, "⚠️ Usage: /unban <user_id>")
		return
	}
	removed, err := h.Store.Unban(targetID)
	if err != nil {
		h.Logger.Error("failed to save unban", zap.Int64("user_id", targetID), zap.Error(err))
		h.send(chatID, "⚠️ Failed to save the ban list.")
		return
	}
	if !removed {
		h.send(chatID, "⚠️ User not banned.")
		return
	}
	h.send(chatID, fmt.Sprintf("✅ User %d has been unbanned.", targetID))
}

// Broadcast handles /broadcast <message>: best-effort send to every known
// user, no retry, with a success/failure tally at the end.
func (h *Handler) Broadcast(update tgbotapi.Update) {
	if !h.requireAdmin(update) {
		return
	}
	chatID := update.Message.Chat.ID
	message := strings.TrimSpace(update.Message.CommandArguments())
	if message == "" {
		h.send(chatID, "⚠️ Usage: /broadcast <message>")
		return
	}

	success, failed := 0, 0
	for _, userID := range h.Store.UserIDs() {
		msg := tgbotapi.NewMessage(userID, "📢 *Broadcast Message*\n\n"+message)
		msg.ParseMode = tgbotapi.ModeMarkdown
		if _, err := h.Bot.Send(msg); err != nil {
			failed++
			h.Logger.Warn("broadcast send failed", zap.Int64("user_id", userID), zap.Error(err))
			continue
		}
		success++
	}
	h.send(chatID, fmt.Sprintf("📊 Broadcast Results:\n✅ Success: %d\n❌ Failed: %d", success, failed))
}

// Stats handles /stats: aggregate counters plus the top five balances.
func (h *Handler) Stats(update tgbotapi.Update) {
	if !h.requireAdmin(update) {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 *Bot Statistics*\n\n")
	fmt.Fprintf(&b, "👥 Total Users: %d\n", h.Store.UserCount())
	fmt.Fprintf(&b, "💰 Total Credits: %d\n", h.Store.TotalCredits())
	fmt.Fprintf(&b, "⛔ Banned Users: %d\n", h.Store.BannedCount())
	fmt.Fprintf(&b, "🔗 Referrals: %d\n\n", h.Store.ReferralTotal())
	b.WriteString("*Top 5 Users by Credits:*\n")
	for i, u := range h.Store.TopUsers(5) {
		fmt.Fprintf(&b, "%d. User %d: %d credits\n", i+1, u.UserID, u.Credits)
	}

	h.sendMarkdown(update.Message.Chat.ID, b.String())
}
