package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/reelify/reelify-backend/internal/config"
	"github.com/reelify/reelify-backend/internal/database"
	"github.com/reelify/reelify-backend/internal/logger"
	"github.com/reelify/reelify-backend/internal/model"
	"github.com/reelify/reelify-backend/internal/repository"
	"github.com/reelify/reelify-backend/internal/service"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// No Redis here; account upserts go straight through the repository.
	userRepo := repository.NewUserRepository(pool)
	authService := service.NewAuthService(cfg)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create Admin User ===")

	// Name
	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("Error: Name is required")
		return
	}

	// Email
	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	// Password
	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	hash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	admin := &model.User{
		Name:         name,
		Email:        email,
		Role:         model.RoleAdmin,
		PasswordHash: hash,
	}

	if err := userRepo.Upsert(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("Failed to upsert admin user")
	}

	// Upsert preserves the role of an existing account, so grant
	// explicitly in case the email was already registered.
	if admin.Role != model.RoleAdmin {
		if _, err := userRepo.SetRole(ctx, email, model.RoleAdmin); err != nil {
			log.Fatal().Err(err).Msg("Failed to grant admin role")
		}
	}

	fmt.Printf("\nSuccess! Admin '%s' (%s) ready with ID: %d\n", admin.Name, admin.Email, admin.ID)
}
