// main wires high-level dependencies by profile, exposes the HTTP router, and
// keeps the server lifecycle small. Business logic lives in internal packages.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"gangway/internal/assignment"
	"gangway/internal/audit"
	"gangway/internal/identity"
	"gangway/internal/platform/config"
	"gangway/internal/platform/httpserver"
	"gangway/internal/platform/logger"
	"gangway/internal/platform/middleware"
	platformredis "gangway/internal/platform/redis"
	protocolhandler "gangway/internal/protocol/handler"
	protocolmetrics "gangway/internal/protocol/metrics"
	"gangway/internal/protocol/seed"
	"gangway/internal/protocol/service"
	"gangway/internal/protocol/store"
	"gangway/internal/provisioning"
	"gangway/internal/session"
	httptransport "gangway/internal/transport/http"
	"gangway/internal/workflow"
	workflowhandler "gangway/internal/workflow/handler"
	workflowmetrics "gangway/internal/workflow/metrics"
	"gangway/pkg/platform/retry"
)

const (
	auditInboxSize = 256
	tokenIssuer    = "gangway"
	tokenAudience  = "gangway-api"
	tokenTTL       = time.Hour
)

// fallbackServiceAccountID is the provisioning identity used by the test
// profile, where no real service account exists.
const fallbackServiceAccountID = "gchat-provisioner@enterprise.com"

func main() {
	log := logger.New(slog.LevelInfo)

	if err := run(log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if err := identity.AuthorizePreflight(ctx, cfg, log); err != nil {
		return err
	}

	serviceAccountID := cfg.AuthorizedServiceAccountID
	if serviceAccountID == "" {
		serviceAccountID = fallbackServiceAccountID
	}

	// Protocol store: deterministic fixtures in test, Postgres in dev.
	var protocolStore store.Store
	if cfg.Profile.IsTest() {
		protocolStore = store.NewDeterministic(protocolmetrics.New())
	} else {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		artifact := seed.Default()
		if cfg.ProtocolSeedPath != "" {
			artifact, err = seed.Load(cfg.ProtocolSeedPath)
			if err != nil {
				return fmt.Errorf("load protocol seed: %w", err)
			}
		}
		protocolStore = store.NewPostgres(db, artifact, store.DefaultCreationPolicy(), log, protocolmetrics.New())
	}
	protocolService := service.New(protocolStore, log)

	roster := assignment.DefaultRoster()
	if cfg.RosterPath != "" {
		var err error
		roster, err = assignment.LoadRoster(cfg.RosterPath)
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}
	}
	verifier := assignment.NewVerifier(roster)

	// Session state: Redis when configured, process memory otherwise. One
	// namespace per process; runs overwrite the shared keys last-writer-wins.
	var stateStore session.StateStore = session.NewInMemoryStore()
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		stateStore = session.NewRedisStore(redisClient.Client, uuid.NewString())
		log.InfoContext(ctx, "session state backed by redis")
	}
	persister := session.NewAdapter(stateStore, log)

	var connector provisioning.Connector
	if cfg.Profile.IsTest() {
		connector = provisioning.NewMockConnector(serviceAccountID)
	} else {
		connector = provisioning.NewChatConnector(cfg.ChatAPIBaseURL, log)
	}
	provisioner := provisioning.NewClient(connector, retry.Default(), log)

	// Audit trail: a buffered inbox feeds a single worker so emission never
	// blocks a run.
	inbox := make(chan audit.Event, auditInboxSize)
	publisher := audit.NewPublisher(inbox, log)

	var auditStore audit.Store = audit.NewInMemoryStore()
	if !cfg.Profile.IsTest() && cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("open audit database: %w", err)
		}
		defer db.Close()

		pgStore := audit.NewPostgresStore(db)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("audit schema: %w", err)
		}
		auditStore = pgStore
	}

	var sink audit.Sink
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink, err := audit.NewKafkaSink(ctx, cfg.KafkaBrokers, cfg.AuditTopic)
		if err != nil {
			return fmt.Errorf("connect kafka: %w", err)
		}
		defer kafkaSink.Close()
		sink = kafkaSink
		log.InfoContext(ctx, "audit events forwarded to kafka", "topic", cfg.AuditTopic)
	}
	worker := audit.NewWorker(auditStore, sink, inbox, log)

	coordinator := workflow.New(
		protocolService,
		verifier,
		persister,
		provisioner,
		workflow.StaticGate{},
		serviceAccountID,
		log,
		workflow.WithAuditPublisher(publisher),
		workflow.WithMetrics(workflowmetrics.New()),
	)

	var validator middleware.TokenValidator
	if cfg.JWTSigningKey != "" {
		validator = identity.NewTokenService(cfg.JWTSigningKey, tokenIssuer, tokenAudience, tokenTTL)
	}

	router := httptransport.NewRouter(validator, log,
		protocolhandler.New(protocolService, log),
		workflowhandler.New(coordinator, log),
	)
	srv := httpserver.New(cfg.Addr, router)

	log.InfoContext(ctx, "starting gangway",
		"addr", cfg.Addr,
		"profile", cfg.Profile,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := worker.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("audit worker: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
