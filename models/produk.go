package models

import (
	"pujasari/repository"
	"pujasari/schema"
)

type Product struct {
	ID        string                `json:"id" bson:"-" description:"Id produk"`
	Category  schema.KategoriProduk `json:"category" bson:"category"`
	Deskripsi string                `json:"deskripsi" bson:"deskripsi" description:"Deskripsi produk" example:"Biji kapulaga merupakan..."`
	Harga     float64               `json:"harga" bson:"harga" description:"Harga produk" example:"25000"`
	Nama      string                `json:"nama" bson:"nama" description:"Nama produk" example:"Biji Kapulaga"`
	PhotoName string                `json:"photo_name" bson:"photo_name" description:"Nama foto produk" example:"kapulaga_biji.jpeg"`
	Promo     float64               `json:"promo" bson:"promo" description:"Potongan harga/diskon (bentuk pecahan)" example:"0.2"`
}

func (p *Product) SetID(id string) { p.ID = id }

// ProductInput adalah body untuk membuat produk baru. Promo default 0.
type ProductInput struct {
	Category  schema.KategoriProduk `json:"category" bson:"category" validate:"required,enum"`
	Deskripsi string                `json:"deskripsi" bson:"deskripsi" validate:"required" description:"Deskripsi produk" example:"Biji kapulaga merupakan..."`
	Harga     *float64              `json:"harga" bson:"harga" validate:"required" description:"Harga produk" example:"25000"`
	Nama      string                `json:"nama" bson:"nama" validate:"required" description:"Nama produk" example:"Biji Kapulaga"`
	PhotoName string                `json:"photo_name" bson:"photo_name" validate:"required" description:"Nama foto produk" example:"kapulaga_biji.jpeg"`
	Promo     float64               `json:"promo" bson:"promo" description:"Potongan harga/diskon (bentuk pecahan)" example:"0.2" default:"0"`
}

type ProductPatch struct {
	Category  *schema.KategoriProduk `json:"category" bson:"category,omitempty" validate:"omitempty,enum"`
	Deskripsi *string                `json:"deskripsi" bson:"deskripsi,omitempty" description:"Deskripsi produk"`
	Harga     *float64               `json:"harga" bson:"harga,omitempty" description:"Harga produk"`
	Nama      *string                `json:"nama" bson:"nama,omitempty" description:"Nama produk"`
	PhotoName *string                `json:"photo_name" bson:"photo_name,omitempty" description:"Nama foto produk"`
	Promo     *float64               `json:"promo" bson:"promo,omitempty" description:"Potongan harga/diskon (bentuk pecahan)"`
}

// ProductQuery adalah filter GET /products. Nilai 0 dianggap tidak diisi.
type ProductQuery struct {
	Category    schema.KategoriProduk `query:"category" validate:"omitempty,enum"`
	HargaMulai  float64               `query:"hargaMulai" description:"Filter harga mulai" example:"5000"`
	HargaHingga float64               `query:"hargaHingga" description:"Filter harga hingga" example:"30000"`
	Promo       float64               `query:"promo" description:"Potongan harga/diskon (bentuk pecahan)" example:"0.2"`
}

func (q ProductQuery) Filters() []repository.Filter {
	var filters []repository.Filter
	if q.Category != "" {
		filters = append(filters, repository.Where("category", repository.OpEqual, string(q.Category)))
	}
	if q.HargaMulai != 0 {
		filters = append(filters, repository.Where("harga", repository.OpGreaterOrEqual, q.HargaMulai))
	}
	if q.HargaHingga != 0 {
		filters = append(filters, repository.Where("harga", repository.OpLessOrEqual, q.HargaHingga))
	}
	if q.Promo != 0 {
		filters = append(filters, repository.Where("promo", repository.OpEqual, q.Promo))
	}
	return filters
}
