package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
	Images   ImagesConfig   `mapstructure:"images"   validate:"required"`
	Links    LinksConfig    `mapstructure:"links"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"required,min=32"`
	BcryptCost                  int    `mapstructure:"bcrypt_cost"                    validate:"gte=4,lte=31"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"required,gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`
}

// LLMConfig contains the generative-text provider settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`
	// BaseURL overrides the Gemini API endpoint. Empty uses the SDK default.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

// ImagesConfig contains the image-search provider settings.
type ImagesConfig struct {
	UnsplashAccessKey string `mapstructure:"unsplash_access_key" validate:"required"`
	BaseURL           string `mapstructure:"base_url"            validate:"required,url"`
	TimeoutSeconds    int    `mapstructure:"timeout_seconds"     validate:"required,gt=0"`
}

// LinksConfig controls the URLs derived for each gift suggestion.
type LinksConfig struct {
	PlaceholderBaseURL string `mapstructure:"placeholder_base_url" validate:"required,url"`
	MarketplaceBaseURL string `mapstructure:"marketplace_base_url" validate:"required,url"`
}
