package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/commerce/internal/service/catalog"
	"github.com/vladislavdragonenkov/commerce/internal/service/order"
	"github.com/vladislavdragonenkov/commerce/internal/service/stock"
)

// services содержит сервисный слой приложения поверх выбранного хранилища.
type services struct {
	ledger   *stock.Ledger
	catalog  *catalog.Service
	workflow *order.Workflow
	logger   *log.Entry
}

// newServices собирает учёт остатков, каталог и workflow размещения заказов.
func newServices(deps *runtimeDependencies, logger *log.Entry) *services {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	ledger := stock.NewLedger(deps.stocks, logger.WithField("layer", "stock"))
	catalogSvc := catalog.NewService(deps.products, ledger, logger.WithField("layer", "catalog"))
	workflow := order.NewWorkflow(
		deps.orders,
		ledger,
		order.NewBuilder(catalogSvc),
		deps.tx,
		logger.WithField("layer", "order"),
	)

	return &services{
		ledger:   ledger,
		catalog:  catalogSvc,
		workflow: workflow,
		logger:   logger,
	}
}
