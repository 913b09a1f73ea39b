package handlers

import (
	"fmt"
	"time"

	"contact-relay/services"

	"github.com/spf13/viper"
)

// SMTPConfig holds SMTP-related settings for sending emails.
type SMTPConfig struct {
	Host   string `mapstructure:"host" json:"host"`
	Port   int    `mapstructure:"port" json:"port"`
	// set from the raw EMAIL_SECURE value, only "true" enables SSL
	Secure bool   `mapstructure:"-" json:"secure"`
	User   string `mapstructure:"user" json:"user"`
	Pass   string `mapstructure:"pass" json:"-"`
}

// Config is loaded once at startup and passed to whoever needs it.
type Config struct {
	Port            string        `mapstructure:"port" json:"port"`
	SMTP            SMTPConfig    `mapstructure:"email" json:"email"`
	ReceiverEmail   string        `mapstructure:"receiver_email" json:"receiver_email"`
	IdempotencyTTL  time.Duration `mapstructure:"idempotency_ttl" json:"idempotency_ttl"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" json:"shutdown_timeout"`
	Debug           bool          `mapstructure:"debug" json:"debug"`
}

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"port":             "PORT",
	"email.host":       "EMAIL_HOST",
	"email.port":       "EMAIL_PORT",
	"email.secure":     "EMAIL_SECURE",
	"email.user":       "EMAIL_USER",
	"email.pass":       "EMAIL_PASS",
	"receiver_email":   "RECEIVER_EMAIL",
	"idempotency_ttl":  "IDEMPOTENCY_TTL",
	"shutdown_timeout": "SHUTDOWN_TIMEOUT",
	"debug":            "DEBUG",
}

// SetConfigDefaults registers defaults and environment bindings on v.
func SetConfigDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("email.host", "")
	v.SetDefault("email.secure", "false")
	v.SetDefault("email.user", "")
	v.SetDefault("email.pass", "")
	v.SetDefault("receiver_email", "")
	v.SetDefault("idempotency_ttl", 0)
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("debug", false)

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}
}

// LoadConfig decodes the process configuration from v. Missing credentials
// are not an error here; they surface when the first message is sent.
// EMAIL_PORT defaults to 465 when secure and 587 otherwise.
func LoadConfig(v *viper.Viper) (Config, error) {
	SetConfigDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.SMTP.Secure = v.GetString("email.secure") == "true"
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
		if cfg.SMTP.Secure {
			cfg.SMTP.Port = 465
		}
	}
	if cfg.SMTP.Port < 0 || cfg.SMTP.Port > 65535 {
		return Config{}, fmt.Errorf("invalid EMAIL_PORT %d", cfg.SMTP.Port)
	}
	if cfg.IdempotencyTTL < 0 {
		cfg.IdempotencyTTL = 0
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	return cfg, nil
}

// MailerConfig returns the transport settings for services.NewSMTPMailer.
func (c SMTPConfig) MailerConfig() services.SMTPMailerConfig {
	return services.SMTPMailerConfig{
		Host:     c.Host,
		Port:     c.Port,
		Username: c.User,
		Password: c.Pass,
		SSL:      c.Secure,
	}
}

// ContactConfig returns the addressing for services.NewContactService.
func (c Config) ContactConfig() services.ContactServiceConfig {
	return services.ContactServiceConfig{
		SenderAddress: c.SMTP.User,
		Receiver:      c.ReceiverEmail,
	}
}

// ListenAddr is the address the HTTP server binds to.
func (c Config) ListenAddr() string {
	return ":" + c.Port
}
