package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TIME_ZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverRedis, cfg.StoreDriver)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 8.0, cfg.WindowStartHour)
	assert.Equal(t, 23.0, cfg.WindowEndHour)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "./data/gameday.db", cfg.LocalCachePath)
	assert.Equal(t, 10*time.Second, cfg.SupporterPostInterval)
	assert.Equal(t, 3, cfg.SupporterPostBurst)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.False(t, cfg.Development)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TIME_ZONE", "America/Los_Angeles")
	t.Setenv("APP_ENV", "development")
	t.Setenv("STORE_DRIVER", "firestore")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("WINDOW_START_HOUR", "7.5")
	t.Setenv("WINDOW_END_HOUR", "22")
	t.Setenv("ADMIN_USER_IDS", "111, 222,,333")
	t.Setenv("LOCAL_CACHE_DISABLED", "yes")
	t.Setenv("SUPPORTER_POST_INTERVAL", "1m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Development)
	assert.Equal(t, StoreDriverFirestore, cfg.StoreDriver)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 7.5, cfg.WindowStartHour)
	assert.Equal(t, 22.0, cfg.WindowEndHour)
	assert.Equal(t, []string{"111", "222", "333"}, cfg.AdminUserIDs)
	assert.Empty(t, cfg.LocalCachePath)
	assert.Equal(t, time.Minute, cfg.SupporterPostInterval)
	assert.Equal(t, "America/Los_Angeles", cfg.Location.String())
	assert.True(t, cfg.IsAdmin("222"))
	assert.False(t, cfg.IsAdmin("444"))
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("TIME_ZONE", "UTC")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("SUPPORTER_POST_INTERVAL", "-5s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 10*time.Second, cfg.SupporterPostInterval)
}

func TestLoadRejectsBadTimeZone(t *testing.T) {
	t.Setenv("TIME_ZONE", "Mars/Olympus_Mons")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			StoreDriver:     StoreDriverRedis,
			WindowStartHour: 8,
			WindowEndHour:   23,
			HTTPAddr:        ":8080",
		}
	}

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.StoreDriver = "postgres" }, wantErr: true},
		{name: "inverted window", mutate: func(c *Config) { c.WindowEndHour = 6 }, wantErr: true},
		{name: "window past midnight", mutate: func(c *Config) { c.WindowEndHour = 25 }, wantErr: true},
		{name: "no surfaces", mutate: func(c *Config) { c.HTTPAddr = "" }, wantErr: true},
		{name: "discord only", mutate: func(c *Config) { c.HTTPAddr = ""; c.DiscordToken = "token" }},
		{name: "hash without secret", mutate: func(c *Config) { c.AdminPasswordHash = "$2a$10$abc" }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
