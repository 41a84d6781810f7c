// Command create-admin creates a back-office account with a random name and password.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/seifeddinerezgui/gethrought/internal/config"
	"github.com/seifeddinerezgui/gethrought/internal/database"
	"github.com/seifeddinerezgui/gethrought/internal/model"
	"github.com/seifeddinerezgui/gethrought/internal/store"
	"github.com/seifeddinerezgui/gethrought/internal/utilities"
)

// generateRandomString creates a random hex string of length 2n
func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal(err)
	}
	return hex.EncodeToString(bytes)
}

// generateUniqueUsername tries until a unique username is found
func generateUniqueUsername(ctx context.Context, s store.Store) (string, error) {
	for {
		username := "admin_" + generateRandomString(4)
		_, err := s.GetUserByUsername(ctx, username)
		if errors.Is(err, store.ErrNotFound) {
			return username, nil
		}
		if err != nil {
			return "", err
		}
		// If username exists, loop again
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db, err := database.NewDBInstance(cfg.DB, zap.NewNop())
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}
	defer func() { _ = db.Close() }()
	s := store.NewGormStore(db.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Generate unique username and password
	username, err := generateUniqueUsername(ctx, s)
	if err != nil {
		log.Fatal("failed to check username: ", err)
	}
	password := generateRandomString(8)

	// Hash the password before storing
	hashedPassword, err := utilities.HashPassword(password)
	if err != nil {
		log.Fatal("failed to hash password: ", err)
	}

	admin := model.User{
		Username: username,
		Password: hashedPassword,
		Role:     model.RoleAdmin,
	}
	if err := s.CreateUser(ctx, &admin); err != nil {
		log.Fatal("failed to create admin: ", err)
	}

	// Print credentials (only show plain password here!)
	fmt.Println("Admin credentials generated successfully!")
	fmt.Println("======================================")
	fmt.Printf("Username: %s\n", admin.Username)
	fmt.Printf("Password: %s\n", password)
	fmt.Println("======================================")
}
