package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	PublicBaseURL string
	WebRoot       string

	// CORS origins for the browser-facing API. The create-event proxy is
	// called cross-origin from the marketing pages, so this defaults open.
	CORSAllowedOrigins []string

	// Booking window configuration.
	BusinessStartHour int
	BusinessEndHour   int
	BusinessTimeZone  string

	// Google Calendar service account integration.
	GoogleCredentialsFile string
	CalendarID            string

	// SendGrid Email Configuration
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	// Internal recipients: the booking attendee copied on every meeting and
	// the inbox that receives contact-form messages.
	BookingAttendeeEmail  string
	ContactRecipientEmail string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		WebRoot:       getEnv("WEB_ROOT", ""),

		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		BusinessStartHour: getEnvAsInt("BUSINESS_START_HOUR", 9),
		BusinessEndHour:   getEnvAsInt("BUSINESS_END_HOUR", 15),
		BusinessTimeZone:  getEnv("BUSINESS_TIMEZONE", "America/Mexico_City"),

		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", ""),
		CalendarID:            getEnv("GOOGLE_CALENDAR_ID", ""),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", "contacto@zondaerp.com"),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Equipo ZONDA ERP"),

		BookingAttendeeEmail:  getEnv("BOOKING_ATTENDEE_EMAIL", "contacto@zondaerp.com"),
		ContactRecipientEmail: getEnv("CONTACT_RECIPIENT_EMAIL", "contacto@zondaerp.com"),
	}
}

// Validate enforces invariants that would otherwise surface as broken
// availability responses at runtime.
func (c *Config) Validate() error {
	if c.BusinessStartHour < 0 || c.BusinessEndHour > 24 || c.BusinessStartHour >= c.BusinessEndHour {
		return fmt.Errorf("config: invalid business hours %d-%d", c.BusinessStartHour, c.BusinessEndHour)
	}
	if c.BusinessTimeZone == "" {
		return fmt.Errorf("config: business timezone must not be empty")
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
