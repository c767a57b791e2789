package models

import (
	"pujasari/repository"
	"pujasari/schema"
)

type Admin struct {
	ID        string           `json:"id" bson:"-" description:"Id admin"`
	Alamat    string           `json:"alamat" bson:"alamat" description:"Alamat admin" example:"Jl. Kenangan 2" default:""`
	Email     string           `json:"email" bson:"email" description:"Email admin" example:"someone@something.com"`
	Name      string           `json:"name" bson:"name" description:"Nama admin" example:"Aji"`
	NoHP      string           `json:"no_hp" bson:"no_hp" description:"No handphone admin" example:"081200002343"`
	AdminKind schema.AdminKind `json:"admin_kind,omitempty" bson:"admin_kind,omitempty" default:"employee"`
}

func (a *Admin) SetID(id string) { a.ID = id }

// AdminInput adalah body untuk membuat admin baru
type AdminInput struct {
	Alamat    string           `json:"alamat" bson:"alamat" description:"Alamat admin" example:"Jl. Kenangan 2" default:""`
	Email     string           `json:"email" bson:"email" validate:"required,email_address" description:"Email admin" example:"someone@something.com"`
	Name      string           `json:"name" bson:"name" validate:"required" description:"Nama admin" example:"Aji"`
	NoHP      string           `json:"no_hp" bson:"no_hp" validate:"required,no_hp" description:"No handphone admin" example:"081200002343"`
	AdminKind schema.AdminKind `json:"admin_kind" bson:"admin_kind" validate:"omitempty,enum" default:"employee"`
}

func (in *AdminInput) ApplyDefaults() {
	if in.AdminKind == "" {
		in.AdminKind = schema.AdminKindEmployee
	}
}

// AdminPatch adalah body update admin, field kosong tidak diubah
type AdminPatch struct {
	Alamat    *string           `json:"alamat" bson:"alamat,omitempty" description:"Alamat admin"`
	Email     *string           `json:"email" bson:"email,omitempty" validate:"omitempty,email_address" description:"Email admin"`
	Name      *string           `json:"name" bson:"name,omitempty" validate:"omitempty,min=1" description:"Nama admin"`
	NoHP      *string           `json:"no_hp" bson:"no_hp,omitempty" validate:"omitempty,no_hp" description:"No handphone admin"`
	AdminKind *schema.AdminKind `json:"admin_kind" bson:"admin_kind,omitempty" validate:"omitempty,enum"`
}

type AdminQuery struct {
	AdminKind schema.AdminKind `query:"admin_kind" validate:"omitempty,enum"`
}

func (q AdminQuery) Filters() []repository.Filter {
	var filters []repository.Filter
	if q.AdminKind != "" {
		filters = append(filters, repository.Where("admin_kind", repository.OpEqual, string(q.AdminKind)))
	}
	return filters
}
