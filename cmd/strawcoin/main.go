package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/alexrkaufman/strawcoin/internal/app"
	"github.com/alexrkaufman/strawcoin/pkg/auth"
)

//	@title			Straw Coin API
//	@version		1.0
//	@description	Play-money ledger for a live performance audience

// @host		localhost:8080
// @BasePath	/

// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name							Authorization
func main() {
	if len(os.Args) > 1 && os.Args[1] == "hash-passphrase" {
		os.Exit(hashPassphrase(os.Args[2:]))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if len(os.Args) > 1 && os.Args[1] == "clear-sessions" {
		n, err := app.New().ClearSessions(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Can't clear sessions")
			os.Exit(1)
		}
		fmt.Printf("cleared %d sessions\n", n)
		return
	}

	app := app.New()
	err := app.Start(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Can't start application")
		zap.L().Fatal("Can't start application: ", zap.Error(err))
	}

	err = app.Wait(ctx, cancel)
	if err != nil {
		zap.L().Fatal("All systems closed with errors. LastError:", zap.Error(err))
	}

	zap.L().Info("All systems closed without errors")
}

// hashPassphrase prints a bcrypt hash suitable for PRIVILEGED_PASSWORD_HASH.
func hashPassphrase(args []string) int {
	if len(args) != 1 || args[0] == "" {
		fmt.Fprintln(os.Stderr, "usage: strawcoin hash-passphrase <passphrase>")
		return 2
	}
	hash, err := (&auth.HashService{}).HashPassphrase(args[0])
	if err != nil {
		log.Error().Err(err).Msg("Can't hash passphrase")
		return 1
	}
	fmt.Println(hash)
	return 0
}
