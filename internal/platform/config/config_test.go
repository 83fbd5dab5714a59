package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("GANGWAY_ADDR", "")
	t.Setenv("ENV_PROFILE", "")
	t.Setenv("AUDIT_TOPIC", "")

	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, ProfileTest, cfg.Profile)
	assert.Equal(t, "gangway.audit.events", cfg.AuditTopic)
	assert.True(t, cfg.Profile.IsTest())
}

func TestFromEnvKafkaBrokers(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker-a:9092, broker-b:9092")

	cfg := FromEnv()

	assert.Equal(t, []string{"broker-a:9092", "broker-b:9092"}, cfg.KafkaBrokers)
}

func TestValidate(t *testing.T) {
	t.Run("test profile needs nothing", func(t *testing.T) {
		cfg := Config{Profile: ProfileTest}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("integration profile is rejected", func(t *testing.T) {
		cfg := Config{Profile: ProfileIntegration}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reserved")
	})

	t.Run("dev profile reports all missing variables", func(t *testing.T) {
		cfg := Config{Profile: ProfileDev}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DATABASE_URL")
		assert.Contains(t, err.Error(), "GCHAT_SA_ID")
		assert.Contains(t, err.Error(), "JWT_SIGNING_KEY")
	})

	t.Run("dev profile passes when fully configured", func(t *testing.T) {
		cfg := Config{
			Profile:                    ProfileDev,
			DatabaseURL:                "postgres://localhost/gangway",
			AuthorizedServiceAccountID: "sa-gchat-provisioner",
			JWTSigningKey:              "secret",
		}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown profile is rejected", func(t *testing.T) {
		cfg := Config{Profile: Profile("staging")}
		assert.Error(t, cfg.Validate())
	})
}
