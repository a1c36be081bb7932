package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultDatabaseURL = "root:@tcp(127.0.0.1:3306)/travel_app?parseTime=true&charset=utf8mb4"

type Env struct {
	AppAddr   string
	GinMode   string
	SecretKey string

	DatabaseURL string
	DBTimeout   time.Duration

	Mail MailEnv

	ImagesDir          string
	CORSAllowedOrigins []string
	SeedFile           string
}

// MailEnv mirrors the MAIL_* variables plus the SES credentials.
type MailEnv struct {
	Transport     string // smtp | ses | log
	Server        string
	Port          int
	UseTLS        bool
	UseSSL        bool
	Username      string
	Password      string
	DefaultSender string
	Timeout       time.Duration

	AWSRegion    string
	AWSAccessKey string
	AWSSecretKey string
}

// LoadEnv reads .env (when present) and the process environment, falling back
// to development values.
func LoadEnv() Env {
	_ = godotenv.Load()

	username := getenv("MAIL_USERNAME", "")

	return Env{
		AppAddr:   getenv("APP_ADDR", ":8080"),
		GinMode:   getenv("GIN_MODE", ""),
		SecretKey: getenv("SECRET_KEY", "your_secret_key"),

		DatabaseURL: getenv("DATABASE_URL", defaultDatabaseURL),
		DBTimeout:   getenvDuration("DB_TIMEOUT", 5*time.Second),

		Mail: MailEnv{
			Transport:     strings.ToLower(getenv("MAIL_TRANSPORT", "smtp")),
			Server:        getenv("MAIL_SERVER", "smtp.gmail.com"),
			Port:          getenvInt("MAIL_PORT", 587),
			UseTLS:        getenvBool("MAIL_USE_TLS", true),
			UseSSL:        getenvBool("MAIL_USE_SSL", false),
			Username:      username,
			Password:      getenv("MAIL_PASSWORD", ""),
			DefaultSender: getenv("MAIL_DEFAULT_SENDER", username),
			Timeout:       getenvDuration("MAIL_TIMEOUT", 10*time.Second),

			AWSRegion:    getenv("AWS_REGION", "us-east-1"),
			AWSAccessKey: getenv("AWS_ACCESS_KEY_ID", ""),
			AWSSecretKey: getenv("AWS_SECRET_ACCESS_KEY", ""),
		},

		ImagesDir:          getenv("IMAGES_DIR", "static/images"),
		CORSAllowedOrigins: getenvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://127.0.0.1:3000"}),
		SeedFile:           getenv("SEED_FILE", "seed/destinations.yaml"),
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	n, err := strconv.Atoi(getenv(key, ""))
	if err != nil {
		return def
	}
	return n
}

func getenvBool(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

func getenvDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(getenv(key, ""))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getenvList(key string, def []string) []string {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	out := []string{}
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
