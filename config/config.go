// config/config.go
package config

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config carries every environment-provided setting. BotToken is the only
// required value; everything else has a usable default.
type Config struct {
	BotToken      string
	OwnerBotToken string
	OwnerChatID   int64

	AdminIDs      []int64
	AdminUsername string
	LogoURL       string

	Channel1 string
	Channel2 string

	APIURLNumber  string
	APIURLVehicle string
	APIURLPakSim  string
	APIURLGST     string
	APIURLPAN     string

	WebhookDomain string
	Port          string

	UserDataFile     string
	ReferralDataFile string
	BannedUsersFile  string
}

// Load reads configuration from environment variables. Callers are expected
// to have loaded .env beforehand when one exists.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ADMIN_USERNAME", "@DARKGP0")
	v.SetDefault("LOGO_URL", "https://ibb.co/yc20Z7x1")
	v.SetDefault("CHANNEL_1", "darkgp_in")
	v.SetDefault("CHANNEL_2", "darkgp_in2")
	v.SetDefault("API_URL", "https://seller-ki-mkc.taitanx.workers.dev/?mobile=")
	v.SetDefault("API_URL_VEHICLE", "https://rc-info-ng.vercel.app/?rc=")
	v.SetDefault("API_URL_PAK_SIM", "https://allnetworkdata.com/?number=")
	v.SetDefault("API_URL_GST", "https://gst-bolt.vercel.app/?gst=")
	v.SetDefault("API_URL_PAN", "https://pan-vercel.vercel.app/?pan=")
	v.SetDefault("PORT", "5000")
	v.SetDefault("USER_DATA_FILE", "user_data.json")
	v.SetDefault("REFERRAL_DATA_FILE", "referral_data.json")
	v.SetDefault("BANNED_USERS_FILE", "banned_users.json")

	cfg := &Config{
		BotToken:      v.GetString("BOT_TOKEN"),
		OwnerBotToken: v.GetString("OWNER_BOT_TOKEN"),
		OwnerChatID:   v.GetInt64("OWNER_CHAT_ID"),

		AdminUsername: v.GetString("ADMIN_USERNAME"),
		LogoURL:       v.GetString("LOGO_URL"),

		Channel1: v.GetString("CHANNEL_1"),
		Channel2: v.GetString("CHANNEL_2"),

		APIURLNumber:  v.GetString("API_URL"),
		APIURLVehicle: v.GetString("API_URL_VEHICLE"),
		APIURLPakSim:  v.GetString("API_URL_PAK_SIM"),
		APIURLGST:     v.GetString("API_URL_GST"),
		APIURLPAN:     v.GetString("API_URL_PAN"),

		WebhookDomain: v.GetString("WEBHOOK_DOMAIN"),
		Port:          v.GetString("PORT"),

		UserDataFile:     v.GetString("USER_DATA_FILE"),
		ReferralDataFile: v.GetString("REFERRAL_DATA_FILE"),
		BannedUsersFile:  v.GetString("BANNED_USERS_FILE"),
	}

	if cfg.BotToken == "" {
		return nil, errors.New("BOT_TOKEN is not set")
	}
	if cfg.OwnerBotToken == "" {
		cfg.OwnerBotToken = cfg.BotToken
	}

	cfg.AdminIDs = parseAdminIDs(v.GetString("ADMIN_IDS"), v.GetString("ADMIN_ID"))

	return cfg, nil
}

// parseAdminIDs accepts a comma-separated ADMIN_IDS list and, for backward
// compatibility, a single ADMIN_ID. Unparseable entries are skipped.
func parseAdminIDs(list, single string) []int64 {
	var ids []int64
	seen := map[int64]bool{}
	add := func(raw string) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	}
	for _, part := range strings.Split(list, ",") {
		add(part)
	}
	add(single)
	return ids
}
