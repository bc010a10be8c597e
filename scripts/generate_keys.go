//go:build ignore

// This script generates secure random keys for the pantry service and, optionally,
// a development access token signed with the generated JWT secret.
// Run with: go run scripts/generate_keys.go [-user alice -household home -ttl 24h]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/guttosm/pantry-service/internal/service"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

func main() {
	user := flag.String("user", "", "mint a development token for this user id")
	household := flag.String("household", "", "household id carried by the development token")
	ttl := flag.Duration("ttl", 24*time.Hour, "development token lifetime")
	flag.Parse()

	fmt.Println("=== Pantry Service Key Generator ===")
	fmt.Println()

	// Generate JWT Secret Key (32 bytes = 256 bits)
	jwtSecret, err := generateSecureKey(32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating JWT secret: %v\n", err)
		os.Exit(1)
	}

	// Generate API Key (24 bytes)
	apiKey, err := generateSecureKey(24)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating API key: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# JWT Configuration (AUTH_ENABLED=true, no API_KEYS)")
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Println()
	fmt.Println("# API Key (gateway mode: guards X-User-ID / X-Household-ID)")
	if *household != "" {
		fmt.Println("# Bound to one household; drop the suffix to allow any household")
		fmt.Printf("API_KEYS=%s:%s\n", apiKey, *household)
	} else {
		fmt.Printf("API_KEYS=%s\n", apiKey)
	}
	fmt.Println()

	if *user != "" {
		tokens := service.NewTokenService(service.TokenConfig{SecretKey: jwtSecret, AccessTokenTTL: *ttl})
		token, err := tokens.GenerateAccessToken(dto.Claims{UserID: *user, HouseholdID: *household})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating development token: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("# Development token for %s (expires in %s)\n", *user, ttl.String())
		fmt.Printf("Authorization: Bearer %s\n", token)
		fmt.Println()
	}

	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Use different keys for each environment (dev, staging, prod)")
	fmt.Println("- Store production keys in a secure secret manager")
}
