package controllers

import (
	"pujasari/models"
	"pujasari/repository"

	"github.com/sirupsen/logrus"
)

type CustomerController = Resource[models.Customer, *models.Customer, models.CustomerInput, models.CustomerPatch, NoQuery]

// NoQuery untuk resource yang tidak punya filter list
type NoQuery struct{}

func (NoQuery) Filters() []repository.Filter { return nil }

func NewCustomerController(store repository.Store, log *logrus.Logger) *CustomerController {
	return NewResource[models.Customer, *models.Customer, models.CustomerInput, models.CustomerPatch, NoQuery](
		"customer", repository.NewRefs(store, repository.CustomersCollection), log)
}
