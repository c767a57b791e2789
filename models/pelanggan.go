package models

// CheckoutItem adalah item yang sedang dalam cart checkout customer
type CheckoutItem struct {
	ItemID string  `json:"itemId" bson:"itemId" description:"Id produk yang dalam proses checkout"`
	Amount float64 `json:"amount" bson:"amount" description:"Banyak produk yang dalam proses checkout"`
}

type Customer struct {
	ID                   string         `json:"id" bson:"-" description:"Id customer"`
	Alamat               string         `json:"alamat" bson:"alamat" description:"Alamat customer" example:"Jl. Kenangan 2" default:""`
	Email                string         `json:"email" bson:"email" description:"Email customer" example:"someone@something.com"`
	Name                 string         `json:"name" bson:"name" description:"Nama customer" example:"Budi"`
	NoHP                 string         `json:"no_hp" bson:"no_hp" description:"No handphone customer" example:"081200002343"`
	PhotoURL             *string        `json:"photo_url,omitempty" bson:"photo_url,omitempty" description:"URL foto customer" example:"https://image/photo.jpg"`
	CurrentCheckoutItems []CheckoutItem `json:"current_checkout_items" bson:"current_checkout_items" description:"Item-item yang sedang dalam cart checkout customer"`
}

func (c *Customer) SetID(id string) { c.ID = id }

// Normalize memastikan cart kosong dikirim sebagai [] bukan null
func (c *Customer) Normalize() {
	if c.CurrentCheckoutItems == nil {
		c.CurrentCheckoutItems = []CheckoutItem{}
	}
}

type CustomerInput struct {
	Alamat   string  `json:"alamat" bson:"alamat" description:"Alamat customer" example:"Jl. Kenangan 2" default:""`
	Email    string  `json:"email" bson:"email" validate:"required,email_address" description:"Email customer" example:"someone@something.com"`
	Name     string  `json:"name" bson:"name" validate:"required" description:"Nama customer" example:"Budi"`
	NoHP     string  `json:"no_hp" bson:"no_hp" validate:"required,no_hp" description:"No handphone customer" example:"081200002343"`
	PhotoURL *string `json:"photo_url" bson:"photo_url,omitempty" validate:"omitempty,url" description:"URL foto customer" example:"https://image/photo.jpg"`

	// selalu dikosongkan saat customer dibuat
	CurrentCheckoutItems []CheckoutItem `json:"-" bson:"current_checkout_items"`
}

func (in *CustomerInput) ApplyDefaults() {
	in.CurrentCheckoutItems = []CheckoutItem{}
}

type CustomerPatch struct {
	Alamat   *string `json:"alamat" bson:"alamat,omitempty" description:"Alamat customer"`
	Email    *string `json:"email" bson:"email,omitempty" validate:"omitempty,email_address" description:"Email customer"`
	Name     *string `json:"name" bson:"name,omitempty" validate:"omitempty,min=1" description:"Nama customer"`
	NoHP     *string `json:"no_hp" bson:"no_hp,omitempty" validate:"omitempty,no_hp" description:"No handphone customer"`
	PhotoURL *string `json:"photo_url" bson:"photo_url,omitempty" validate:"omitempty,url" description:"URL foto customer"`
}
