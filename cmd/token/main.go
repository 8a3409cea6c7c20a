// Command token issues a bearer token signed with the configured JWT secret,
// for calling the API locally when jwt.enabled is set.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/crm/backend/internal/infrastructure/auth"
	"github.com/crm/backend/internal/infrastructure/config"
	"github.com/crm/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

func main() {
	var (
		subject string
		name    string
		ttl     time.Duration
	)
	flag.StringVar(&subject, "sub", "", "Token subject (required)")
	flag.StringVar(&name, "name", "", "Display name carried in the token")
	flag.DurationVar(&ttl, "ttl", 0, "Token lifetime (default: jwt.access_token_expiration)")
	flag.Parse()

	log, err := logger.New(&logger.Config{Level: "info", Format: "console", Output: "stderr"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("jwt.secret is not configured (set CRM_JWT_SECRET)")
	}
	if !cfg.JWT.Enabled {
		log.Warn("jwt.enabled is false; the server will not check this token")
	}

	token, err := auth.NewJWTService(cfg.JWT).GenerateToken(subject, name, ttl)
	if err != nil {
		log.Fatal("Failed to issue token", zap.Error(err))
	}

	log.Info("Token issued",
		zap.String("subject", subject),
		zap.Time("expires_at", token.ExpiresAt),
	)
	fmt.Println(token.AccessToken)
}
