// handlers/commands.go
package handlers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/TheWhiteHat1/osint-bot-host/models"
)

// Help handles /help.
func (h *Handler) Help(update tgbotapi.Update) {
	h.sendMarkdown(update.Message.Chat.ID, h.helpText())
}

func (h *Handler) helpText() string {
	return fmt.Sprintf(`🤖 *DARK GP OSINT Bot Help*

*Available Commands:*
/start - Start the bot
/help - Show this help message
/profile - Check your profile and credits
/referral - Get your referral link
/credits - Check your credit balance

*Lookup Services:*
• 📱 Number Lookup
• 🚘 Vehicle RC Lookup
• 🇵🇰 Pakistan SIM Info
• 🏢 GST Lookup
• 📄 PAN Lookup

*How to Use:*
1. Use /start to begin
2. Select a lookup service
3. Send the required information
4. Get instant results!

*Credits System:*
- Start with 2 free credits
- Earn 1 credit per referral
- Buy more credits from admin

*Support:* %s`, h.Cfg.AdminUsername)
}

// Profile handles /profile.
func (h *Handler) Profile(update tgbotapi.Update) {
	user := update.Message.From
	balance := h.Store.Credits(user.ID)
	username := user.UserName
	if username == "" {
		username = "Not set"
	}
	firstName := user.FirstName
	if firstName == "" {
		firstName = "Not set"
	}

	text := fmt.Sprintf(`👤 *User Profile*

📛 *Name:* %s
🔖 *Username:* @%s
🆔 *User ID:* `+"`%d`"+`
💰 *Credits:* %d

*Referral Stats:*
• Total Referrals: %d
• Referral Link: `+"`%s`",
		firstName, username, user.ID, balance,
		h.Store.ReferralCount(user.ID), h.referralLink(user.ID))

	h.sendMarkdown(update.Message.Chat.ID, text)
}

// Referral handles /referral.
func (h *Handler) Referral(update tgbotapi.Update) {
	userID := update.Message.From.ID
	count := h.Store.ReferralCount(userID)

	text := fmt.Sprintf(`🔗 *Referral Program*

Invite friends and earn *+1 credit* for each successful referral!

*Your Referral Link:*
`+"`%s`"+`

*Your Referral Stats:*
• Total Referrals: %d
• Credits Earned: %d

*How it works:*
1. Share your referral link
2. When someone joins using your link
3. You automatically get +1 credit
4. They get started with 2 credits

Start inviting and earn free credits! 🎁`,
		h.referralLink(userID), count, count)

	h.sendMarkdown(update.Message.Chat.ID, text)
}

// Credits handles /credits.
func (h *Handler) Credits(update tgbotapi.Update) {
	balance := h.Store.Credits(update.Message.From.ID)

	text := fmt.Sprintf(`💰 *Credit Balance*

*Current Credits:* %d

*Ways to Get Credits:*
• 🎁 Start bonus: 2 credits
• 🔗 Referral: +1 credit per referral
• 💰 Purchase from admin

*Credit Usage:*
• Each lookup costs 1 credit
• Check balance before searching

*Need more credits?*
Contact %s`, balance, h.Cfg.AdminUsername)

	h.sendMarkdown(update.Message.Chat.ID, text)
}

// QuickLookup handles the per-kind shortcut commands (/num, /vehicle, /sim,
// /gst, /pan). It arms the pending slot exactly like the menu button does
// and prompts for input.
func (h *Handler) QuickLookup(update tgbotapi.Update, kind models.Kind) {
	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if h.Store.IsBanned(userID) {
		h.send(chatID, "⛔ You are banned from using this bot.")
		return
	}
	if member, _ := h.isMemberOfAll(userID); !member {
		h.send(chatID, "⚠️ Please use the /start command and *Verify Joined Channels* first to use the bot.")
		return
	}

	h.Store.SetPending(userID, kind)
	h.send(chatID, kindPrompt(kind))
}

func kindPrompt(kind models.Kind) string {
	switch kind {
	case models.KindNumber:
		return "📱 Send the phone number you want to search. (e.g., 9876543210)"
	case models.KindVehicle:
		return "🚘 Send the vehicle RC number you want to search. (e.g., DL3CBP1234)"
	case models.KindPakistanSim:
		return "🇵🇰 Send the Pakistan SIM number you want to search. (e.g., 03001234567)"
	case models.KindGST:
		return "🏢 Send the GST number you want to search. (e.g., 22AAAAA0000A1Z5)"
	case models.KindPAN:
		return "📄 Send the PAN number you want to search. (e.g., ABCDE1234F)"
	}
	return "Send the identifier you want to search."
}
