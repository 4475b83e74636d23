package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresBotToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.BotToken)
	assert.Equal(t, "123:abc", cfg.OwnerBotToken, "owner token falls back to the bot token")
	assert.Equal(t, "darkgp_in", cfg.Channel1)
	assert.Equal(t, "darkgp_in2", cfg.Channel2)
	assert.Equal(t, "https://rc-info-ng.vercel.app/?rc=", cfg.APIURLVehicle)
	assert.Equal(t, "user_data.json", cfg.UserDataFile)
	assert.Equal(t, "5000", cfg.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("OWNER_BOT_TOKEN", "456:def")
	t.Setenv("OWNER_CHAT_ID", "777")
	t.Setenv("API_URL", "http://localhost:9999/?mobile=")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "456:def", cfg.OwnerBotToken)
	assert.Equal(t, int64(777), cfg.OwnerChatID)
	assert.Equal(t, "http://localhost:9999/?mobile=", cfg.APIURLNumber)
}

func TestParseAdminIDs(t *testing.T) {
	tests := []struct {
		name   string
		list   string
		single string
		want   []int64
	}{
		{name: "comma separated list", list: "1,2,3", want: []int64{1, 2, 3}},
		{name: "single legacy id", single: "42", want: []int64{42}},
		{name: "list plus legacy id", list: "1, 2", single: "3", want: []int64{1, 2, 3}},
		{name: "duplicates collapsed", list: "1,1,2", single: "2", want: []int64{1, 2}},
		{name: "garbage skipped", list: "1,abc, ,2", want: []int64{1, 2}},
		{name: "empty", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseAdminIDs(tt.list, tt.single))
		})
	}
}
