package main

// Config is populated from the environment, optionally seeded from a
// local .env file.
type Config struct {
	Port          string `envconfig:"PORT" default:"8080"`
	SheetURL      string `envconfig:"SHEET_URL" required:"true"`
	LineAccountID string `envconfig:"LINE_ACCOUNT_ID" default:"@234csaak"`
	AdminUsername string `envconfig:"ADMIN_USERNAME" required:"true"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" required:"true"`
}
