package models

type Recipe struct {
	ID      string   `json:"id" bson:"-" description:"Id resep"`
	Nama    string   `json:"nama" bson:"nama" description:"Nama resep" example:"Sayur Asem"`
	Bahan   []string `json:"bahan" bson:"bahan" description:"Bahan-bahan resep"`
	Langkah []string `json:"langkah" bson:"langkah" description:"Langkah-langkah dalam membuat resep"`
}

func (r *Recipe) SetID(id string) { r.ID = id }

func (r *Recipe) Normalize() {
	if r.Bahan == nil {
		r.Bahan = []string{}
	}
	if r.Langkah == nil {
		r.Langkah = []string{}
	}
}

type RecipeInput struct {
	Nama    string   `json:"nama" bson:"nama" validate:"required" description:"Nama resep" example:"Sayur Asem"`
	Bahan   []string `json:"bahan" bson:"bahan" validate:"required" description:"Bahan-bahan resep"`
	Langkah []string `json:"langkah" bson:"langkah" validate:"required" description:"Langkah-langkah dalam membuat resep"`
}

type RecipePatch struct {
	Nama    *string   `json:"nama" bson:"nama,omitempty" description:"Nama resep"`
	Bahan   *[]string `json:"bahan" bson:"bahan,omitempty" description:"Bahan-bahan resep"`
	Langkah *[]string `json:"langkah" bson:"langkah,omitempty" description:"Langkah-langkah dalam membuat resep"`
}
