// Command catalogctl is the operator tool for an artcatalog installation:
// seeding a fresh data directory, creating admin accounts and uploading
// artwork images to the storage backend.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"artcatalog/internal/cli"
	"artcatalog/internal/netx"
	"artcatalog/internal/seed"
	"artcatalog/internal/server/auth"
	"artcatalog/internal/server/config"
	"artcatalog/internal/server/models"
	"artcatalog/internal/server/repomanager"
	"artcatalog/internal/server/repositories/users"
	"artcatalog/internal/server/services"
)

const usage = `usage: catalogctl <command> [flags]

commands:
  seed                  populate an empty data directory with starter data
  create-admin          interactively create an admin account
  upload-image <file>   upload an image and print its storage key

flags are the server flags (-d data dir, -e S3 endpoint, ...)`

func main() {

	// Optional; settings usually come from the environment directly.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	cfg := config.LoadConfig()

	var err error
	switch os.Args[1] {
	case "seed":
		err = runSeed(ctx, cfg)
	case "create-admin":
		err = runCreateAdmin(ctx, cfg)
	case "upload-image":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		err = runUploadImage(ctx, cfg, os.Args[2])
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("%v", err)
	}
}

func runSeed(ctx context.Context, cfg *config.Config) error {
	m, err := repomanager.NewJSONFileManager(cfg.DataDir)
	if err != nil {
		return err
	}
	if err := seed.Apply(ctx, m); err != nil {
		return err
	}
	fmt.Printf("seeded %s\n", cfg.DataDir)
	return nil
}

func runCreateAdmin(ctx context.Context, cfg *config.Config) error {
	m, err := repomanager.NewJSONFileManager(cfg.DataDir)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)

	username, err := cli.GetSimpleText(reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := cli.GetSimpleText(reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := cli.GetPassword("Enter password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer cli.WipeByteArray(password)

	confirm, err := cli.GetPassword("Confirm password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer cli.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		return fmt.Errorf("passwords do not match")
	}
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}

	hash, err := auth.HashPassword(string(password))
	if err != nil {
		return err
	}

	user, err := m.Users().Create(ctx, users.CreateParams{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Status:       models.UserStatusActive,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created admin %q (id %d)\n", user.Username, user.ID)
	return nil
}

func runUploadImage(ctx context.Context, cfg *config.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	key, putURL, err := services.NewImageService(cfg).PresignUpload(ctx)
	if err != nil {
		return err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if err := netx.UploadToPresignedURL(putURL, contentType, data); err != nil {
		return err
	}

	fmt.Printf("uploaded %s\nimage_url key: %s\n", path, key)
	return nil
}
