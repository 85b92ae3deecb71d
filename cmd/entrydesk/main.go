package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/kirinyoku/entrydesk/docs"
	"github.com/kirinyoku/entrydesk/internal/app"
	"github.com/kirinyoku/entrydesk/internal/auth"
	"github.com/kirinyoku/entrydesk/internal/config"
)

// @title entrydesk API
// @version 1.0
// @description Admin API for event registrations: payment verification and gate entry.
// @host localhost:8080
// @BasePath /
func main() {
	hashPassword := flag.Bool("hash-password", false, "read a password from stdin, print its ADMIN_PASSWORD_HASH and exit")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *hashPassword {
		if err := printPasswordHash(os.Stdin, os.Stdout); err != nil {
			logger.Error("failed to hash password", "error", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create application", "error", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		logger.Error("application finished with error", "error", err)
		os.Exit(1)
	}
}

// printPasswordHash hashes the first line of r and writes the bcrypt hash to w.
func printPasswordHash(r io.Reader, w io.Writer) error {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return errors.New("empty password")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, hash)
	return err
}
