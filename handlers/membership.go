// handlers/membership.go
package handlers

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Channel is a required-membership group identifier. The same configuration
// value shows up both with and without a leading @ across deployments, so a
// Channel knows both renderings and membership checks try each.
type Channel string

// Handle returns the @-prefixed rendering.
func (c Channel) Handle() string {
	return "@" + c.Bare()
}

// Bare returns the rendering without the @ prefix.
func (c Channel) Bare() string {
	return strings.TrimPrefix(string(c), "@")
}

// URL returns the public join link.
func (c Channel) URL() string {
	return "https://t.me/" + c.Bare()
}

func (h *Handler) channels() []Channel {
	return []Channel{Channel(h.Cfg.Channel1), Channel(h.Cfg.Channel2)}
}

// isMemberOf checks one user's membership in one channel. A status of left
// or kicked counts as non-member, as does a failed query. The check runs
// against the @-form first and retries with the bare form before giving up.
func (h *Handler) isMemberOf(ch Channel, userID int64) bool {
	for _, ident := range []string{ch.Handle(), ch.Bare()} {
		member, err := h.Bot.GetChatMember(tgbotapi.GetChatMemberConfig{
			ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
				SuperGroupUsername: ident,
				UserID:             userID,
			},
		})
		if err != nil {
			continue
		}
		return member.Status != "left" && member.Status != "kicked"
	}
	return false
}

// isMemberOfAll reports membership in every required channel and returns the
// channels the user is missing from.
func (h *Handler) isMemberOfAll(userID int64) (bool, []Channel) {
	var missing []Channel
	for _, ch := range h.channels() {
		if !h.isMemberOf(ch, userID) {
			missing = append(missing, ch)
		}
	}
	return len(missing) == 0, missing
}

// isBotAdminIn reports whether the bot itself holds administrator rights in
// the channel. When it does not, verification still runs as a plain
// membership check and the user never sees the distinction.
func (h *Handler) isBotAdminIn(ch Channel) bool {
	for _, ident := range []string{ch.Handle(), ch.Bare()} {
		member, err := h.Bot.GetChatMember(tgbotapi.GetChatMemberConfig{
			ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
				SuperGroupUsername: ident,
				UserID:             h.BotID,
			},
		})
		if err != nil {
			continue
		}
		return member.Status == "administrator" || member.Status == "creator"
	}
	return false
}
