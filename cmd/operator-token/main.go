// Command operator-token issues a bearer token for the paymaster write
// endpoints, signed with the relay's operator secret.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chainsafe/castpay-relayer/pkg/auth"
	"github.com/chainsafe/castpay-relayer/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	subject := flag.String("subject", "operator", "Token subject, logged with every paymaster write")
	ttl := flag.Duration("ttl", time.Hour, "Token lifetime")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	validator := auth.NewOperatorValidator(cfg.Auth.OperatorJWTSecret, cfg.Auth.JWTIssuer)
	token, err := validator.IssueToken(*subject, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
