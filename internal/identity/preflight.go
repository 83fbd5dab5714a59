package identity

import (
	"context"
	"fmt"
	"log/slog"

	"gangway/internal/platform/config"
)

// AuthorizePreflight checks at startup that the process holds usable
// credentials for its profile. The test profile always passes; live profiles
// require a signing key and the authorized provisioning service account.
// Failure aborts startup with a logged diagnostic.
func AuthorizePreflight(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if cfg.Profile.IsTest() {
		logger.InfoContext(ctx, "authorization preflight skipped in test profile")
		return nil
	}

	if cfg.JWTSigningKey == "" {
		logger.ErrorContext(ctx, "authorization preflight failed", "reason", "missing signing key")
		return fmt.Errorf("authorization preflight: JWT signing key is not configured")
	}
	if cfg.AuthorizedServiceAccountID == "" {
		logger.ErrorContext(ctx, "authorization preflight failed", "reason", "missing provisioning service account")
		return fmt.Errorf("authorization preflight: provisioning service account is not configured")
	}

	logger.InfoContext(ctx, "authorization preflight passed",
		"service_account", cfg.AuthorizedServiceAccountID,
	)
	return nil
}
