package main

// AppConfig is the application-level configuration. Store and HTTP server
// settings live in their own packages' Config structs and are loaded
// separately.
type AppConfig struct {
	// Port is the HTTP listening port.
	Port int `env:"PORT" envDefault:"8080"`

	// Env selects logging defaults: "production" means JSON logs at info
	// level, anything else means text logs at debug level.
	Env string `env:"APP_ENV" envDefault:"development"`

	// ServiceName appears in logs and in the health endpoint payload.
	ServiceName string `env:"SERVICE_NAME" envDefault:"prasadam-connect-api"`

	// CORSAllowedOrigins is the list of trusted cross-origin request
	// sources. Empty means CORS stays disabled, which is the deliberate
	// fail-closed default for production.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// RedactedFields is the denylist of user payload keys stripped from
	// API responses.
	RedactedFields []string `env:"USER_REDACTED_FIELDS" envSeparator:"," envDefault:"address"`
}
