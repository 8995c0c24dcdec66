// Command provision applies the database migrations and creates one user
// account. There is no public sign-up; every account is made here.
//
//	provision -email ann@example.com -name Ann [-admin] [-limit 100]
//
// The password is prompted without echo on a terminal, or read as the first
// line of stdin otherwise.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/MKhiriev/go-insight-keeper/internal/config"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/service"
	"github.com/MKhiriev/go-insight-keeper/internal/store"
)

func main() {
	log := logger.NewLogger("insight-provision")

	_ = godotenv.Load()

	opts, err := parseOptions(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}

	cfg, err := config.GetStorageConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	password, err := promptPassword(bufio.NewReader(os.Stdin), os.Stderr, term.IsTerminal(int(os.Stdin.Fd())))
	if err != nil {
		log.Fatal().Err(err).Msg("error reading password")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	authService := service.NewAuthService(storages.UserRepository, cfg.App, log)

	user, err := provision(log.WithContext(ctx), authService, opts, password)
	if err != nil {
		log.Error().Err(err).Msg("error creating user")
		return
	}

	fmt.Printf("created user %d <%s> admin=%t daily_limit=%d\n", user.UserID, user.Email, user.IsAdmin, user.DailyLimit)
}
