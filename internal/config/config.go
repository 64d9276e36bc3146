package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Port int    `validate:"required,gt=0,lte=65535"`

	JWT       JWT    `validate:"required"`
	Dynamo    Dynamo `validate:"required"`
	Drive     Drive
	Gemini    Gemini
	PhoneAuth PhoneAuth
	Webhook   Webhook
	Pricing   Pricing
}

type JWT struct {
	Secret     string        `validate:"required"`
	AccessTTL  time.Duration `validate:"gt=0"`
	RefreshTTL time.Duration `validate:"gt=0"`

	// AdminPhones lists phone numbers that authenticate as staff.
	AdminPhones []string
}

type Dynamo struct {
	Region          string `validate:"required"`
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string

	OrdersTable   string `validate:"required"`
	ProfilesTable string `validate:"required"`
}

type Drive struct {
	APIBaseURL   string
	UploadURL    string
	AccessToken  string
	RootFolderID string
	Mock         bool
}

type Gemini struct {
	APIBaseURL string
	APIKey     string
	Model      string
	Mock       bool
}

type PhoneAuth struct {
	APIBaseURL string
	APIKey     string
	Mock       bool
}

type Webhook struct {
	ZainCashSecret string
	QiCardSecret   string
}

type Pricing struct {
	// StrictVocabulary rejects unknown service types and insurance tiers at
	// the orchestrator instead of letting the engine fall back silently.
	StrictVocabulary bool
}

func New() Config {
	return Config{
		Env:  env("ENV", "development"),
		Port: envInt("PORT", 8080),

		JWT: JWT{
			Secret:      env("JWT_SECRET", ""),
			AccessTTL:   envDuration("JWT_ACCESS_TTL", 24*time.Hour),
			RefreshTTL:  envDuration("JWT_REFRESH_TTL", 30*24*time.Hour),
			AdminPhones: splitNonEmpty(env("ADMIN_PHONES", "")),
		},

		Dynamo: Dynamo{
			Region:          env("AWS_REGION", "us-east-1"),
			AccessKeyID:     env("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: env("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        env("DYNAMODB_ENDPOINT", ""),
			OrdersTable:     env("ORDERS_TABLE", "orders"),
			ProfilesTable:   env("VIP_PROFILES_TABLE", "vip_profiles"),
		},

		Drive: Drive{
			APIBaseURL:   env("DRIVE_API_BASE_URL", "https://www.googleapis.com/drive/v3"),
			UploadURL:    env("DRIVE_UPLOAD_URL", "https://www.googleapis.com/upload/drive/v3/files"),
			AccessToken:  env("DRIVE_ACCESS_TOKEN", ""),
			RootFolderID: env("DRIVE_ROOT_FOLDER_ID", ""),
			Mock:         envBool("DRIVE_MOCK", false),
		},

		Gemini: Gemini{
			APIBaseURL: env("GEMINI_API_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			APIKey:     env("GEMINI_API_KEY", ""),
			Model:      env("GEMINI_MODEL", "gemini-1.5-flash"),
			Mock:       envBool("GEMINI_MOCK", false),
		},

		PhoneAuth: PhoneAuth{
			APIBaseURL: env("PHONE_AUTH_API_BASE_URL", "https://identitytoolkit.googleapis.com/v1"),
			APIKey:     env("PHONE_AUTH_API_KEY", ""),
			Mock:       envBool("PHONE_AUTH_MOCK", false),
		},

		Webhook: Webhook{
			ZainCashSecret: env("ZAINCASH_WEBHOOK_SECRET", ""),
			QiCardSecret:   env("QICARD_WEBHOOK_SECRET", ""),
		},

		Pricing: Pricing{
			StrictVocabulary: envBool("PRICING_STRICT_VOCABULARY", false),
		},
	}
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}

func (c Config) IsAdminPhone(phone string) bool {
	for _, p := range c.JWT.AdminPhones {
		if p == phone {
			return true
		}
	}
	return false
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitNonEmpty(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
