package handlers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
		require.NoError(t, os.Unsetenv(env))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.False(t, cfg.SMTP.Secure)
	assert.Empty(t, cfg.SMTP.Host)
	assert.Empty(t, cfg.SMTP.User)
	assert.Empty(t, cfg.ReceiverEmail)
	assert.Zero(t, cfg.IdempotencyTTL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, ":8080", cfg.ListenAddr())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("EMAIL_HOST", "smtp.kinghost.net")
	t.Setenv("EMAIL_PORT", "465")
	t.Setenv("EMAIL_SECURE", "true")
	t.Setenv("EMAIL_USER", "contato@empresa.com.br")
	t.Setenv("EMAIL_PASS", "s3cret")
	t.Setenv("RECEIVER_EMAIL", "comercial@empresa.com.br")
	t.Setenv("IDEMPOTENCY_TTL", "0s")

	cfg, err := LoadConfig(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.ListenAddr())
	assert.Equal(t, SMTPConfig{
		Host:   "smtp.kinghost.net",
		Port:   465,
		Secure: true,
		User:   "contato@empresa.com.br",
		Pass:   "s3cret",
	}, cfg.SMTP)
	assert.Equal(t, "comercial@empresa.com.br", cfg.ReceiverEmail)
	assert.Zero(t, cfg.IdempotencyTTL)

	mc := cfg.SMTP.MailerConfig()
	assert.Equal(t, "smtp.kinghost.net", mc.Host)
	assert.Equal(t, 465, mc.Port)
	assert.Equal(t, "contato@empresa.com.br", mc.Username)
	assert.Equal(t, "s3cret", mc.Password)
	assert.True(t, mc.SSL)

	cc := cfg.ContactConfig()
	assert.Equal(t, "contato@empresa.com.br", cc.SenderAddress)
	assert.Equal(t, "comercial@empresa.com.br", cc.Receiver)
}

func TestLoadConfig_SecureOnlyForExactTrue(t *testing.T) {
	tests := []struct {
		value  string
		secure bool
	}{
		{value: "true", secure: true},
		{value: "false", secure: false},
		{value: "1", secure: false},
		{value: "TRUE", secure: false},
		{value: "True ", secure: false},
		{value: "yes", secure: false},
		{value: "on", secure: false},
		{value: "", secure: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv("EMAIL_SECURE", tt.value)

			cfg, err := LoadConfig(viper.New())
			require.NoError(t, err)
			assert.Equal(t, tt.secure, cfg.SMTP.Secure)
		})
	}
}

func TestLoadConfig_PortDefaultFollowsSecure(t *testing.T) {
	tests := []struct {
		name   string
		secure string
		port   int
	}{
		{name: "ssl", secure: "true", port: 465},
		{name: "starttls", secure: "false", port: 587},
		{name: "unset", secure: "", port: 587},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv("EMAIL_SECURE", tt.secure)

			cfg, err := LoadConfig(viper.New())
			require.NoError(t, err)
			assert.Equal(t, tt.port, cfg.SMTP.Port)
			assert.Equal(t, tt.port, cfg.SMTP.MailerConfig().Port)
		})
	}
}

func TestLoadConfig_ExplicitPortWinsOverSecureDefault(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("EMAIL_SECURE", "true")
	t.Setenv("EMAIL_PORT", "2465")

	cfg, err := LoadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, 2465, cfg.SMTP.Port)
	assert.True(t, cfg.SMTP.Secure)
}

func TestLoadConfig_MissingCredentialsIsNotAnError(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("EMAIL_HOST", "smtp.example.com")

	cfg, err := LoadConfig(viper.New())
	require.NoError(t, err)
	assert.Empty(t, cfg.SMTP.User)
	assert.Empty(t, cfg.SMTP.Pass)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "not a number", value: "smtp"},
		{name: "negative", value: "-1"},
		{name: "out of range", value: "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv("EMAIL_PORT", tt.value)

			_, err := LoadConfig(viper.New())
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_YAMLFileWithEnvOverride(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9090"
email:
  host: smtp.from-file.com
  port: 2525
  user: file@empresa.com.br
receiver_email: file-inbox@empresa.com.br
idempotency_ttl: 30s
`), 0o644))
	t.Setenv("EMAIL_HOST", "smtp.from-env.com")

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := LoadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "smtp.from-env.com", cfg.SMTP.Host)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "file@empresa.com.br", cfg.SMTP.User)
	assert.Equal(t, "file-inbox@empresa.com.br", cfg.ReceiverEmail)
	assert.Equal(t, 30*time.Second, cfg.IdempotencyTTL)
}
