package models

import (
	"time"

	"pujasari/repository"
	"pujasari/schema"
)

type OrderItem struct {
	ItemID string  `json:"item_id" bson:"item_id" validate:"required" description:"Id produk"`
	Amount float64 `json:"amount" bson:"amount" validate:"gt=0" description:"Banyak Item"`
}

// Order adalah riwayat checkout customer
type Order struct {
	ID            string                 `json:"id" bson:"-" description:"Id pesanan"`
	Bank          schema.Bank            `json:"bank" bson:"bank"`
	NoVC          string                 `json:"no_vc" bson:"no_vc" description:"Nomor Virtual Account yang dapat digunakan"`
	PaymentMethod schema.PaymentMethod   `json:"payment_method" bson:"payment_method"`
	Status        schema.StatusPemesanan `json:"status" bson:"status"`
	Time          int64                  `json:"time" bson:"time" description:"Waktu pemesanan (unix milidetik)" example:"1652521028791"`
	UserID        string                 `json:"user_id" bson:"user_id" description:"ID User pemesan"`
	CheckoutItems []OrderItem            `json:"checkout_items" bson:"checkout_items" description:"Produk-produk yang di checkout"`
}

func (o *Order) SetID(id string) { o.ID = id }

func (o *Order) Normalize() {
	if o.CheckoutItems == nil {
		o.CheckoutItems = []OrderItem{}
	}
}

// Total menjumlahkan banyak item yang di checkout
func (o Order) Total() float64 {
	var total float64
	for _, it := range o.CheckoutItems {
		total += it.Amount
	}
	return total
}

var now = time.Now

type OrderInput struct {
	Bank          schema.Bank            `json:"bank" bson:"bank" validate:"required,enum"`
	NoVC          string                 `json:"no_vc" bson:"no_vc" description:"Nomor Virtual Account yang dapat digunakan"`
	PaymentMethod schema.PaymentMethod   `json:"payment_method" bson:"payment_method" validate:"required,enum"`
	Status        schema.StatusPemesanan `json:"status" bson:"status" validate:"omitempty,enum" default:"Menunggu_Pembayaran"`
	Time          int64                  `json:"time" bson:"time" validate:"gte=0" description:"Waktu pemesanan (unix milidetik), default waktu server" example:"1652521028791"`
	UserID        string                 `json:"user_id" bson:"user_id" validate:"required" description:"ID User pemesan"`
	CheckoutItems []OrderItem            `json:"checkout_items" bson:"checkout_items" validate:"required,dive" description:"Produk-produk yang di checkout"`
}

func (in *OrderInput) ApplyDefaults() {
	if in.Status == "" {
		in.Status = schema.StatusMenungguPembayaran
	}
	if in.Time == 0 {
		in.Time = now().UnixMilli()
	}
}

// OrderPatch hanya mengizinkan perubahan status, field lain diabaikan
type OrderPatch struct {
	Status *schema.StatusPemesanan `json:"status" bson:"status,omitempty" validate:"omitempty,enum"`
}

type OrderQuery struct {
	Bank          schema.Bank            `query:"bank" validate:"omitempty,enum"`
	PaymentMethod schema.PaymentMethod   `query:"payment_method" validate:"omitempty,enum"`
	Status        schema.StatusPemesanan `query:"status" validate:"omitempty,enum"`
	UserID        string                 `query:"user_id" description:"ID User pemesan"`
	FromDate      int64                  `query:"fromDate" description:"timestamp awal periode" example:"1652521028791"`
	ToDate        int64                  `query:"toDate" description:"timestamp akhir periode" example:"1652521028791"`
}

func (q OrderQuery) Filters() []repository.Filter {
	var filters []repository.Filter
	equals := []struct{ field, value string }{
		{"bank", string(q.Bank)},
		{"payment_method", string(q.PaymentMethod)},
		{"status", string(q.Status)},
		{"user_id", q.UserID},
	}
	for _, eq := range equals {
		if eq.value != "" {
			filters = append(filters, repository.Where(eq.field, repository.OpEqual, eq.value))
		}
	}
	if q.FromDate != 0 {
		filters = append(filters, repository.Where("time", repository.OpGreaterOrEqual, q.FromDate))
	}
	if q.ToDate != 0 {
		filters = append(filters, repository.Where("time", repository.OpLessOrEqual, q.ToDate))
	}
	return filters
}
