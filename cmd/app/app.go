package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/communitylens/ledger/internal/api"
	"github.com/communitylens/ledger/internal/config"
	"github.com/communitylens/ledger/internal/db"
	"github.com/communitylens/ledger/internal/logger"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	sqliteDB, err := db.OpenSQLite(conf.SQLite)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	s := api.NewServer(conf, sqliteDB)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
