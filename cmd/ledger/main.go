package main

import (
	"fmt"
	"os"

	"github.com/tirasundara/account-ledger/internal/config"
	applog "github.com/tirasundara/account-ledger/internal/log"
	"github.com/tirasundara/account-ledger/internal/menu"
	"github.com/tirasundara/account-ledger/internal/report"
	"github.com/tirasundara/account-ledger/internal/repository"
	"github.com/tirasundara/account-ledger/internal/service"
)

func main() {
	// Optional .env for local development
	config.LoadEnvFile()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		exitWithError(err.Error())
	}

	logger := applog.NewSession(applog.New(cfg.LoggerConfig()))
	logger.Debug("starting account ledger",
		applog.FieldComponent, applog.ComponentApp,
		applog.FieldOperation, applog.OpStartup,
	)

	balanceRepo := repository.NewDefaultBalanceRepository()
	accountService := service.NewAccountService(balanceRepo, logger)

	m := menu.NewMenu(accountService, report.NewTextFormatter(), os.Stdin, os.Stdout, logger)
	if err := m.Run(); err != nil {
		exitWithError(err.Error())
	}
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	os.Exit(1)
}
