package storage

import (
	"net/http"
	"time"
)

// Strategy is the way a client obtains its credentials and region.
type Strategy int

const (
	// StrategyStaticRegion uses the configured key pair and region.
	StrategyStaticRegion Strategy = iota + 1
	// StrategyStatic uses the configured key pair; the backend resolves the region.
	StrategyStatic
	// StrategyAmbientRegion discovers credentials from the environment with an explicit region.
	StrategyAmbientRegion
	// StrategyAmbient discovers credentials and region from the environment.
	StrategyAmbient
)

// Static reports whether the strategy uses the configured key pair.
func (s Strategy) Static() bool {
	return s == StrategyStaticRegion || s == StrategyStatic
}

func (s Strategy) String() string {
	switch s {
	case StrategyStaticRegion:
		return "static+region"
	case StrategyStatic:
		return "static"
	case StrategyAmbientRegion:
		return "ambient+region"
	case StrategyAmbient:
		return "ambient"
	default:
		return "unknown"
	}
}

// Settings is the construction plan handed to a Constructor.
// Credential fields are only populated for static strategies and Region only
// for strategies that carry one.
type Settings struct {
	Strategy  Strategy
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
	Timeout   time.Duration
	// Transport is shared by every client of a Factory. Nil means the client
	// builds and owns its own.
	Transport *http.Transport
}

// Resolve maps a configuration onto exactly one strategy. Order matters:
// key pair with region, key pair alone, region alone, nothing.
func Resolve(cfg Config) Settings {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	s := Settings{
		Endpoint: cfg.Endpoint,
		UseSSL:   cfg.UseSSL,
		Timeout:  time.Duration(timeout) * time.Second,
	}

	switch {
	case cfg.HasStaticCredentials() && cfg.Region != "":
		s.Strategy = StrategyStaticRegion
		s.AccessKey, s.SecretKey, s.Region = cfg.AccessKey, cfg.SecretKey, cfg.Region
	case cfg.HasStaticCredentials():
		s.Strategy = StrategyStatic
		s.AccessKey, s.SecretKey = cfg.AccessKey, cfg.SecretKey
	case cfg.Region != "":
		s.Strategy = StrategyAmbientRegion
		s.Region = cfg.Region
	default:
		s.Strategy = StrategyAmbient
	}

	return s
}
