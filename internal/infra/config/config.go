// internal/infra/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds every environment-sourced setting the storefront consumes.
// All values have hardcoded fallbacks so a bare process still boots.
type Config struct {
	Port string

	FirestoreProjectID       string
	FirestoreCredentialsFile string
	FirebaseProjectID        string

	// Pago Móvil destination account shown in payment instructions and
	// denormalized into every payment report.
	PagoMovilBanco    string
	PagoMovilTelefono string
	PagoMovilCedula   string
	PagoMovilTitular  string

	// Messaging handoff destinations.
	WhatsAppPhone string
	AdminPhone    string

	// Exchange rate provider.
	RateAPIURL string

	// Confirmation mail.
	SendGridAPIKey string
	MailFrom       string

	// Durable local state (cart, wishlist, rate cache).
	DataDir string

	// Origins allowed to call the API. Empty means allow all.
	AllowedOrigins []string

	// StrictTransitions rejects illegal order status transitions
	// (e.g. approving an already-rejected order). Off by default to
	// preserve the admin-override behavior.
	StrictTransitions bool
}

// Load reads the environment and returns a Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "wingx-store")

	return &Config{
		Port: getenvDefault("PORT", "8080"),

		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		PagoMovilBanco:    getenvDefault("PAGO_MOVIL_BANCO", "Mercantil"),
		PagoMovilTelefono: getenvDefault("PAGO_MOVIL_TELEFONO", "04121234567"),
		PagoMovilCedula:   getenvDefault("PAGO_MOVIL_CEDULA", "V-12345678"),
		PagoMovilTitular:  getenvDefault("PAGO_MOVIL_TITULAR", "Nombre del Titular"),

		WhatsAppPhone: getenvDefault("WHATSAPP_PHONE", "584121234567"),
		AdminPhone:    getenvDefault("ADMIN_PHONE", getenvDefault("WHATSAPP_PHONE", "584121234567")),

		RateAPIURL: getenvDefault("RATE_API_URL", "https://ve.dolarapi.com/v1/dolares/oficial"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		MailFrom:       getenvDefault("MAIL_FROM", "pedidos@wingx.store"),

		DataDir: getenvDefault("DATA_DIR", "./data"),

		AllowedOrigins: splitCSV(os.Getenv("ALLOWED_ORIGINS")),

		StrictTransitions: getenvBool("CHECKOUT_STRICT_TRANSITIONS", false),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
