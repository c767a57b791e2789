package routes

import (
	"pujasari/controllers"
	"pujasari/models"
	"pujasari/repository"
	"pujasari/schema"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func OrderRoutes(g group, store repository.Store, log *logrus.Logger) {
	orders := controllers.NewOrderController(store, log)

	// Harus sebelum /:id supaya "export" tidak dianggap id
	g.handle(fiber.MethodGet, "/export", orders.Export, schema.Operation{
		Summary:     "Export riwayat checkout ke Excel",
		Query:       models.OrderQuery{},
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Responses: schema.Responses{
			fiber.StatusOK:         {Body: schema.File{}, Description: "File xlsx"},
			fiber.StatusBadRequest: schema.BadRequest(),
		},
	})

	registerCRUD(g, orders, crudDocs{
		noun:   "pesanan",
		item:   models.Order{},
		create: models.OrderInput{},
		patch:  models.OrderPatch{},
		query:  models.OrderQuery{},
	})
}
