package controllers

import (
	"pujasari/models"
	"pujasari/repository"

	"github.com/sirupsen/logrus"
)

type RecipeController = Resource[models.Recipe, *models.Recipe, models.RecipeInput, models.RecipePatch, NoQuery]

func NewRecipeController(store repository.Store, log *logrus.Logger) *RecipeController {
	return NewResource[models.Recipe, *models.Recipe, models.RecipeInput, models.RecipePatch, NoQuery](
		"resep", repository.NewRefs(store, repository.RecipesCollection), log)
}
