package routes

import (
	"pujasari/controllers"
	"pujasari/models"
	"pujasari/repository"

	"github.com/sirupsen/logrus"
)

// Route owner-only juga terbuka, tidak ada pengecekan role
func AdminRoutes(g group, store repository.Store, log *logrus.Logger) {
	registerCRUD(g, controllers.NewAdminController(store, log), crudDocs{
		noun:   "admin",
		item:   models.Admin{},
		create: models.AdminInput{},
		patch:  models.AdminPatch{},
		query:  models.AdminQuery{},
	})
}
