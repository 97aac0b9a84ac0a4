package main

import (
	"log"

	"finboard/pkg/auth"
	"finboard/pkg/bootstrap"
	"finboard/pkg/config"
	"finboard/pkg/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal("load config: ", err)
	}

	r, err := newServer(cfg)
	if err != nil {
		log.Fatal(err)
	}
	r.Run(cfg.Server.Addr)
}

// newServer wires the store, token issuer, bootstrapper and auth service
// into a gin engine. Shared with the integration tests.
func newServer(cfg *config.Config) (*gin.Engine, error) {
	secret := cfg.JWT.Secret
	if secret == "" {
		secret = "dev-insecure-secret-change" // development fallback
	}

	st, err := store.Open(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate {
		st.AutoMigrate()
	}
	if cfg.Admin.Password != "" {
		if err := st.SeedAdmin("admin@example.com", cfg.Admin.Password); err != nil {
			log.Printf("seed admin warning: %v", err)
		}
	}

	issuer := auth.NewTokenIssuer([]byte(secret))
	boot := bootstrap.New(st, nil)
	svc := auth.NewService(st, issuer, boot, cfg.Auth.BcryptCost)

	r := gin.Default()
	setupRoutes(r, svc, issuer, st)
	return r, nil
}
