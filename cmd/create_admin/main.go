package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"finboard/pkg/store"
)

// Ensures the reserved admin account exists. The admin is excluded from
// every counterparty pool, so it is safe to create at any time.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: go run ./cmd/create_admin <password> [email]")
		os.Exit(2)
	}
	password := os.Args[1]
	email := "admin@example.com"
	if len(os.Args) > 2 {
		email = os.Args[2]
	}

	dsn := os.Getenv("FINBOARD_DATABASE_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("FINBOARD_DATABASE_DSN not set in environment")
	}
	st, err := store.Open(dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	st.AutoMigrate()

	if err := st.SeedAdmin(email, password); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Println("admin account ready")
}
