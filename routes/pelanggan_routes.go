package routes

import (
	"pujasari/controllers"
	"pujasari/models"
	"pujasari/repository"

	"github.com/sirupsen/logrus"
)

func CustomerRoutes(g group, store repository.Store, log *logrus.Logger) {
	registerCRUD(g, controllers.NewCustomerController(store, log), crudDocs{
		noun:   "customer",
		item:   models.Customer{},
		create: models.CustomerInput{},
		patch:  models.CustomerPatch{},
	})
}
