package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// StatsProvider selects the statistics collaborator.
	StatsProvider string `mapstructure:"stats_provider" default:"null"`
}

const (
	StatsProviderNull = "null"
)

// IsValidStatsProvider checks if the configured statistics provider is known.
func (c Config) IsValidStatsProvider() bool {
	switch c.StatsProvider {
	case "", StatsProviderNull:
		return true
	default:
		return false
	}
}
