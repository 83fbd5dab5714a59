// Package config builds the process configuration from environment variables
// so main stays lean. The resulting struct is threaded through constructors;
// nothing reads the environment after startup.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Profile selects how backends are wired. It is fixed at process start.
type Profile string

const (
	// ProfileTest wires deterministic in-memory backends for reproducible runs.
	ProfileTest Profile = "test"
	// ProfileDev wires live backends (Postgres, Redis, chat API).
	ProfileDev Profile = "dev"
	// ProfileIntegration is reserved for the integration test harness and is
	// rejected at startup; integration tests construct their own backends.
	ProfileIntegration Profile = "integration"
)

// IsTest reports whether the profile selects deterministic backends.
func (p Profile) IsTest() bool { return p == ProfileTest }

// Config captures everything the server needs at startup.
type Config struct {
	Addr    string
	Profile Profile

	DatabaseURL  string
	Redis        RedisConfig
	KafkaBrokers []string
	AuditTopic   string

	ChatAPIBaseURL             string
	AuthorizedServiceAccountID string
	JWTSigningKey              string

	RosterPath       string
	ProtocolSeedPath string
}

// RedisConfig captures Redis connection settings.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	addr := os.Getenv("GANGWAY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	profile := Profile(os.Getenv("ENV_PROFILE"))
	if profile == "" {
		profile = ProfileTest
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	topic := os.Getenv("AUDIT_TOPIC")
	if topic == "" {
		topic = "gangway.audit.events"
	}

	return Config{
		Addr:    addr,
		Profile: profile,

		DatabaseURL: os.Getenv("DATABASE_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		KafkaBrokers: brokers,
		AuditTopic:   topic,

		ChatAPIBaseURL:             os.Getenv("CHAT_API_BASE_URL"),
		AuthorizedServiceAccountID: os.Getenv("GCHAT_SA_ID"),
		JWTSigningKey:              os.Getenv("JWT_SIGNING_KEY"),

		RosterPath:       os.Getenv("ROSTER_PATH"),
		ProtocolSeedPath: os.Getenv("PROTOCOL_SEED_PATH"),
	}
}

// Validate checks that every variable the selected profile requires is
// present. The server refuses to start on a partial configuration.
func (c Config) Validate() error {
	switch c.Profile {
	case ProfileTest:
		return nil
	case ProfileIntegration:
		return fmt.Errorf("profile %q is reserved for the integration test harness and cannot run the server", c.Profile)
	case ProfileDev:
		var missing []string
		if c.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
		if c.AuthorizedServiceAccountID == "" {
			missing = append(missing, "GCHAT_SA_ID")
		}
		if c.JWTSigningKey == "" {
			missing = append(missing, "JWT_SIGNING_KEY")
		}
		if len(missing) > 0 {
			return fmt.Errorf("profile %q requires environment variables: %s", c.Profile, strings.Join(missing, ", "))
		}
		return nil
	default:
		return fmt.Errorf("unknown profile %q", c.Profile)
	}
}
