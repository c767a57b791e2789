package controllers

import (
	"pujasari/models"
	"pujasari/repository"

	"github.com/sirupsen/logrus"
)

type AdminController = Resource[models.Admin, *models.Admin, models.AdminInput, models.AdminPatch, models.AdminQuery]

func NewAdminController(store repository.Store, log *logrus.Logger) *AdminController {
	return NewResource[models.Admin, *models.Admin, models.AdminInput, models.AdminPatch, models.AdminQuery](
		"admin", repository.NewRefs(store, repository.AdminsCollection), log)
}
