package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Outbound mail
	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
	EmailFrom string
	// Every outbound mail carries a hidden archive copy to this address.
	EmailBCC string

	// Inbound mail (admin inbox listing)
	IMAPHost string
	IMAPPort int

	// Contact-form recipient list (comma separated in env)
	ContactEmails []string

	// UF indicator service
	UFAPIURL        string
	UFFallbackValue decimal.Decimal

	// PDF rendering
	GotenbergURL string

	// Certificate upload storage
	UploadDir string

	// Browser origins allowed to call the API
	CORSAllowedOrigins []string

	// Catalog enums are configurable because the unit set has already been
	// extended once in production (M3 was added after the initial release).
	WasteUnits []string
	Currencies []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "felmart-backend")
	viper.SetDefault("SMTP_HOST", "mail.felmartresiduos.cl")
	viper.SetDefault("SMTP_PORT", 465)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASS", "")
	viper.SetDefault("EMAIL_FROM", "")
	viper.SetDefault("EMAIL_BCC", "felmartoilspa@gmail.com")
	viper.SetDefault("IMAP_HOST", "")
	viper.SetDefault("IMAP_PORT", 993)
	viper.SetDefault("CONTACT_EMAILS", "")
	viper.SetDefault("UF_API_URL", "https://mindicador.cl/api")
	viper.SetDefault("UF_FALLBACK_VALUE", "38000")
	viper.SetDefault("GOTENBERG_URL", "http://localhost:3000")
	viper.SetDefault("UPLOAD_DIR", "uploads/certificados")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,https://felmartresiduos.cl")
	viper.SetDefault("WASTE_UNITS", "IBC,UNIDAD,TONELADA,TAMBOR,KL,LT,M3")
	viper.SetDefault("CURRENCIES", "CLP,UF")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid JWT_EXPIRY_DURATION (%q). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetInt("SMTP_PORT")
	cfg.SMTPUser = viper.GetString("SMTP_USER")
	cfg.SMTPPass = viper.GetString("SMTP_PASS")
	cfg.EmailFrom = viper.GetString("EMAIL_FROM")
	if cfg.EmailFrom == "" {
		cfg.EmailFrom = cfg.SMTPUser
	}
	cfg.EmailBCC = viper.GetString("EMAIL_BCC")
	if cfg.SMTPUser == "" {
		log.Println("Warning: SMTP_USER not set. Outbound email will not function.")
	}

	cfg.IMAPHost = viper.GetString("IMAP_HOST")
	if cfg.IMAPHost == "" {
		cfg.IMAPHost = cfg.SMTPHost
	}
	cfg.IMAPPort = viper.GetInt("IMAP_PORT")

	cfg.ContactEmails = splitList(viper.GetString("CONTACT_EMAILS"))
	if len(cfg.ContactEmails) == 0 && cfg.SMTPUser != "" {
		cfg.ContactEmails = []string{cfg.SMTPUser}
	}

	cfg.UFAPIURL = viper.GetString("UF_API_URL")
	ufFallback, err := decimal.NewFromString(viper.GetString("UF_FALLBACK_VALUE"))
	if err != nil {
		ufFallback = decimal.NewFromInt(38000)
		log.Printf("Warning: Invalid UF_FALLBACK_VALUE. Defaulting to %s.\n", ufFallback)
	}
	cfg.UFFallbackValue = ufFallback

	cfg.GotenbergURL = viper.GetString("GOTENBERG_URL")
	cfg.UploadDir = viper.GetString("UPLOAD_DIR")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.WasteUnits = splitList(viper.GetString("WASTE_UNITS"))
	cfg.Currencies = splitList(viper.GetString("CURRENCIES"))

	return cfg, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
