package handlers

import (
	"github.com/jmoiron/sqlx"

	"bakehouse/internal/repos"
	"bakehouse/internal/services"
)

type Deps struct {
	ItemHandler   *ItemHandler
	OrderHandler  *OrderHandler
	ReportHandler *ReportHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	itemRepo := repos.NewItemRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	catalogSvc := services.NewCatalogService(itemRepo)
	orderSvc := services.NewOrderService(orderRepo)
	reportSvc := services.NewReportService(itemRepo, orderRepo)

	return &Deps{
		ItemHandler:   &ItemHandler{Catalog: catalogSvc},
		OrderHandler:  &OrderHandler{Orders: orderSvc},
		ReportHandler: &ReportHandler{Reports: reportSvc},
	}
}
