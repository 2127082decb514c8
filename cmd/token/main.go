// Command token mints a service token for the write endpoints.
//
//	JWT_SECRET_KEY=... go run ./cmd/token -client importer
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/auth"
	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/config"
)

func main() {
	client := flag.String("client", "", "client name stored as the token subject")
	ttl := flag.Duration("ttl", 0, "token lifetime, defaults to JWT_ACCESS_TOKEN_TTL")
	flag.Parse()

	var cfg config.JWTConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load jwt config: %v", err)
	}
	if *ttl > 0 {
		cfg.AccessTokenTTL = *ttl
	}

	token, expiresAt, err := auth.NewJWTService(cfg.SecretKey, cfg.AccessTokenTTL).GenerateAccessToken(*client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate token: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.Format(time.RFC3339))
}
