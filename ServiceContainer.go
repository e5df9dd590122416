package main

import (
	"errors"
	"log/slog"
	"miniSheet/contracts"
	"time"

	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
)

type ServiceContainer struct {
	Database          *bbolt.DB
	Sheet             *Sheet
	SheetRepository   contracts.SheetRepository
	WebhookDispatcher contracts.WebhookDispatcher
	ApiController     contracts.ApiController
	Router            *gin.Engine
}

func BuildServiceContainer(config Config, logger *slog.Logger) (container ServiceContainer, err error) {
	container.Sheet, err = NewDefaultSheet(config.Grid.Columns, config.Grid.Rows, config.CyclePolicy)
	if err != nil {
		return
	}

	if config.DatabasePath != "" {
		container.Database, err = bbolt.Open(config.DatabasePath, 0600, &bbolt.Options{Timeout: time.Second})
		if err != nil {
			return
		}
	}

	container.WebhookDispatcher = NewWebhookDispatcher(config.WebhookWorkers, logger)

	sheetRepository := NewSheetRepository(
		container.Sheet, container.Database,
		NewCellBinarySerializer(), NewCanonicalizer(),
		container.WebhookDispatcher, logger,
	)
	container.SheetRepository = sheetRepository

	if err = sheetRepository.Restore(); err != nil {
		err = errors.Join(err, container.Close())
		return
	}

	container.ApiController = NewApiController(container.SheetRepository, container.WebhookDispatcher)
	container.Router = SetupRouter(container.ApiController, logger)

	return
}

func (container *ServiceContainer) Close() error {
	if container.WebhookDispatcher != nil {
		container.WebhookDispatcher.Close()
	}

	if container.Database != nil {
		return container.Database.Close()
	}

	return nil
}
