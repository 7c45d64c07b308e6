package config

import (
	"crypto/rsa"

	"github.com/caarlos0/env/v6"
	"github.com/median-man/team-tracker/utils"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port           string `env:"LISTEN_ADDR" envDefault:":3000"`
	Timeout        uint64 `env:"TIMEOUT" envDefault:"10"`
	ReadBufferSize int    `env:"READ_BUFFER_SIZE" envDefault:"4096"`
	BodyLimit      int    `env:"BODY_LIMIT" envDefault:"1048576"`
	AppName        string `env:"APP_NAME" envDefault:"Team Tracker"`
	IsProduction   bool   `env:"PRODUCTION"`

	Dsn      string `env:"DSN"`
	RedisUrl string `env:"REDIS_URL"`

	CookieKey     string `env:"COOKIE_KEY"`
	SessionTTL    uint64 `env:"SESSION_TTL" envDefault:"86400"`
	JwtPublicKey  string `env:"JWT_PUBLIC_KEY"`
	JwtPrivateKey string `env:"JWT_PRIVATE_KEY"`

	JwtParsedPublicKey  *rsa.PublicKey
	JwtParsedPrivateKey *rsa.PrivateKey

	EmailConfig EmailConfig `envPrefix:"EMAIL_"`
}

type EmailConfig struct {
	From             string `env:"FROM"`
	SmtpHost         string `env:"SMTP_HOST"`
	SmtpPort         int    `env:"SMTP_PORT" envDefault:"587"`
	SmtpUser         string `env:"SMTP_USER"`
	SmtpPassword     string `env:"SMTP_PASSWORD"`
	SmtpSkipInsecure bool   `env:"SMTP_SKIP_INSECURE" envDefault:"false"`
}

func Parse() (*Config, error) {
	cfg := Config{
		IsProduction: utils.ParseFlags(),
	}

	if err := env.Parse(&cfg); err != nil {
		log.Panic().Err(err).Msg("Failed to parse env config")
	}

	cfg.JwtParsedPublicKey = utils.ParsePublicKey(cfg.JwtPublicKey)
	cfg.JwtParsedPrivateKey = utils.ParsePrivateKey(cfg.JwtPrivateKey)

	return &cfg, nil
}
