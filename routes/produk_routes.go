package routes

import (
	"pujasari/controllers"
	"pujasari/models"
	"pujasari/repository"

	"github.com/sirupsen/logrus"
)

func ProductRoutes(g group, store repository.Store, log *logrus.Logger) {
	registerCRUD(g, controllers.NewProductController(store, log), crudDocs{
		noun:   "produk",
		item:   models.Product{},
		create: models.ProductInput{},
		patch:  models.ProductPatch{},
		query:  models.ProductQuery{},
	})
}
