package routes

import (
	"pujasari/controllers"
	"pujasari/models"
	"pujasari/repository"

	"github.com/sirupsen/logrus"
)

func RecipeRoutes(g group, store repository.Store, log *logrus.Logger) {
	registerCRUD(g, controllers.NewRecipeController(store, log), crudDocs{
		noun:   "resep",
		item:   models.Recipe{},
		create: models.RecipeInput{},
		patch:  models.RecipePatch{},
	})
}
