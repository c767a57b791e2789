package controllers

import (
	"pujasari/models"
	"pujasari/repository"

	"github.com/sirupsen/logrus"
)

type ProductController = Resource[models.Product, *models.Product, models.ProductInput, models.ProductPatch, models.ProductQuery]

func NewProductController(store repository.Store, log *logrus.Logger) *ProductController {
	return NewResource[models.Product, *models.Product, models.ProductInput, models.ProductPatch, models.ProductQuery](
		"produk", repository.NewRefs(store, repository.ProductsCollection), log)
}
