package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/consultorio/internal/audit"
	"github.com/BruksfildServices01/consultorio/internal/config"
	dbpkg "github.com/BruksfildServices01/consultorio/internal/db"
	"github.com/BruksfildServices01/consultorio/internal/domain/physician"
	"github.com/BruksfildServices01/consultorio/internal/logger"
	"github.com/BruksfildServices01/consultorio/internal/middleware"
	"github.com/BruksfildServices01/consultorio/internal/notification"
	"github.com/BruksfildServices01/consultorio/internal/routes"
	"github.com/BruksfildServices01/consultorio/internal/session"
	"github.com/BruksfildServices01/consultorio/internal/storage"
	ucAuth "github.com/BruksfildServices01/consultorio/internal/usecase/auth"
	"github.com/BruksfildServices01/consultorio/internal/validators"
	"github.com/BruksfildServices01/consultorio/internal/web"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "api",
		Short: "Consultório: cadastro de médicos e pacientes",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedSpecialtiesCmd())
	rootCmd.AddCommand(purgeSessionsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := logger.New(cfg.Env)

			db, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}
			if err := dbpkg.Migrate(db); err != nil {
				return err
			}

			log.Info().Msg("migrations applied")
			return nil
		},
	}
}

func seedSpecialtiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-specialties [names...]",
		Short: "Insert specialties (default list when no names are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := logger.New(cfg.Env)

			db, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}

			created, err := dbpkg.SeedSpecialties(db, args)
			if err != nil {
				return err
			}

			log.Info().Int64("created", created).Msg("specialties seeded")
			return nil
		},
	}
}

func purgeSessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge-sessions",
		Short: "Delete expired sessions from the database store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := logger.New(cfg.Env)

			db, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}

			n, err := session.NewGormStore(db).PurgeExpired(cmd.Context())
			if err != nil {
				return err
			}

			log.Info().Int64("deleted", n).Msg("expired sessions purged")
			return nil
		},
	}
}

func runServer() error {
	cfg := config.Load()
	log := logger.New(cfg.Env)

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.SessionSecret == "changeme" && !cfg.IsDev() {
		return errors.New("SESSION_SECRET must be set outside development")
	}

	// Database
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	log.Info().Msg("connected to database")

	ctx := context.Background()

	sessions, closeSessions, err := newSessionStore(ctx, cfg, db)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start session store")
	}
	defer closeSessions()

	photos, err := newPhotoStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure photo storage")
	}
	if err := photos.Prepare(ctx); err != nil {
		// o upload tenta de novo e mostra o erro ao médico
		log.Warn().Err(err).Msg("photo storage not ready")
	}

	sender, err := notification.NewSender(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure mail provider")
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)
	defer auditDispatcher.Close()

	var domains ucAuth.DomainChecker
	if cfg.CheckEmailDomain {
		domains = validators.NewEmailDomainChecker(nil)
	}

	tmpl, err := web.Templates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.SetHTMLTemplate(tmpl)

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      log,
		Sessions: sessions,
		Photos:   photos,
		Notifier: notification.NewEmailNotifier(sender, cfg.ResetTokenTTL),
		Audit:    auditDispatcher,
		Codes:    physician.RandomCodes{},
		Domains:  domains,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
	return nil
}

func newSessionStore(ctx context.Context, cfg *config.Config, db *gorm.DB) (session.Store, func(), error) {
	switch cfg.SessionStore {
	case "redis":
		client, err := session.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return session.NewRedisStore(client), func() { _ = client.Close() }, nil
	case "db", "":
		return session.NewGormStore(db), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown SESSION_STORE %q", cfg.SessionStore)
	}
}

func newPhotoStore(cfg *config.Config) (storage.PhotoStore, error) {
	switch cfg.PhotoStorage {
	case "s3":
		return storage.NewS3Store(storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	case "disk", "":
		return storage.NewDiskStore(cfg.UploadDir), nil
	default:
		return nil, fmt.Errorf("unknown PHOTO_STORAGE %q", cfg.PhotoStorage)
	}
}
