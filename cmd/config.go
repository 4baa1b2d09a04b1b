package cmd

// Config carries every environment-driven setting of the tracker.
// DatabaseURL is the only hard requirement; missing Twilio credentials
// disable SMS sending instead of failing startup.
type Config struct {
	HTTPPort       string
	DatabaseURL    string
	DBMaxOpenConns int
	DBMaxIdleConns int
	TwilioSID      string
	TwilioAuth     string
	TwilioNumber   string
	ServerURL      string
}
