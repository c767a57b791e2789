// Package schema holds the value sets and reply envelopes shared by every
// endpoint, and turns them into the OpenAPI document served under /docs.
package schema

import (
	"net/http"

	"github.com/swaggest/jsonschema-go"
)

// Enum is implemented by every registered value set. Validation and the
// generated API document both read the allowed values from here.
type Enum interface {
	Values() []string
	Valid() bool
}

// Describer gives a value set a human readable description.
type Describer interface {
	Description() string
}

// prepareEnum lists the allowed values of e in its JSON schema.
func prepareEnum(s *jsonschema.Schema, e Enum) error {
	values := make([]any, 0, len(e.Values()))
	for _, v := range e.Values() {
		values = append(values, v)
	}
	s.WithEnum(values...)
	if d, ok := e.(Describer); ok {
		s.WithDescription(d.Description())
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// Bank adalah tipe bank yang dapat digunakan.
type Bank string

const (
	BankBNI Bank = "BNI"
	BankBCA Bank = "BCA"
)

func (Bank) Values() []string { return []string{string(BankBNI), string(BankBCA)} }
func (b Bank) Valid() bool { return contains(b.Values(), string(b)) }
func (Bank) Description() string { return "Tipe bank yang dapat digunakan" }
func (b Bank) PrepareJSONSchema(s *jsonschema.Schema) error { return prepareEnum(s, b) }

// PaymentMethod adalah jenis metode pembayaran yang dapat dilakukan.
type PaymentMethod string

const (
	PaymentVirtualAccount PaymentMethod = "VirtualAccount"
	PaymentCash           PaymentMethod = "Cash"
)

func (PaymentMethod) Values() []string {
	return []string{string(PaymentVirtualAccount), string(PaymentCash)}
}
func (p PaymentMethod) Valid() bool { return contains(p.Values(), string(p)) }
func (PaymentMethod) Description() string { return "Jenis metode pembayaran yang dapat dilakukan" }
func (p PaymentMethod) PrepareJSONSchema(s *jsonschema.Schema) error { return prepareEnum(s, p) }

// KategoriProduk adalah kategori produk yang tersedia.
type KategoriProduk string

const (
	KategoriDaging KategoriProduk = "daging"
	KategoriSayur  KategoriProduk = "sayur"
	KategoriBuah   KategoriProduk = "buah"
	KategoriRempah KategoriProduk = "rempah"
	KategoriPaket  KategoriProduk = "paket"
)

func (KategoriProduk) Values() []string {
	return []string{
		string(KategoriDaging),
		string(KategoriSayur),
		string(KategoriBuah),
		string(KategoriRempah),
		string(KategoriPaket),
	}
}
func (k KategoriProduk) Valid() bool { return contains(k.Values(), string(k)) }
func (KategoriProduk) Description() string { return "Kategori produk yang tersedia" }
func (k KategoriProduk) PrepareJSONSchema(s *jsonschema.Schema) error { return prepareEnum(s, k) }

// StatusPemesanan adalah status pemesanan produk. Any status may follow any
// other; no transition order is enforced.
type StatusPemesanan string

const (
	StatusMenungguPembayaran StatusPemesanan = "Menunggu_Pembayaran"
	StatusDikirim            StatusPemesanan = "Dikirim"
	StatusSampai             StatusPemesanan = "Sampai"
)

func (StatusPemesanan) Values() []string {
	return []string{
		string(StatusMenungguPembayaran),
		string(StatusDikirim),
		string(StatusSampai),
	}
}
func (s StatusPemesanan) Valid() bool { return contains(s.Values(), string(s)) }
func (StatusPemesanan) Description() string { return "Status pemesanan produk" }
func (st StatusPemesanan) PrepareJSONSchema(s *jsonschema.Schema) error { return prepareEnum(s, st) }

// AdminKind adalah jenis admin.
type AdminKind string

const (
	AdminKindEmployee AdminKind = "employee"
	AdminKindOwner    AdminKind = "owner"
)

func (AdminKind) Values() []string { return []string{string(AdminKindEmployee), string(AdminKindOwner)} }
func (a AdminKind) Valid() bool { return contains(a.Values(), string(a)) }
func (AdminKind) Description() string { return "Jenis admin (employee, owner)" }
func (a AdminKind) PrepareJSONSchema(s *jsonschema.Schema) error { return prepareEnum(s, a) }

// ErrorResponse is the body of every 400, 404 and 500 reply.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// NewErrorResponse builds the envelope for code, labelled with the standard
// status text ("Not Found", "Bad Request", ...).
func NewErrorResponse(code int, message string) ErrorResponse {
	return ErrorResponse{
		StatusCode: code,
		Error:      http.StatusText(code),
		Message:    message,
	}
}

// IDResponse is returned by every create endpoint.
type IDResponse struct {
	ID string `json:"id" description:"Id dokumen yang ditambahkan"`
}

// File is a binary download such as the order export.
type File []byte

func (File) JSONSchema() (jsonschema.Schema, error) {
	var s jsonschema.Schema
	s.AddType(jsonschema.String)
	s.WithFormat("binary")
	return s, nil
}

// The envelopes below document ErrorResponse with statusCode and error
// pinned to a single status.
type (
	badRequestEnvelope          ErrorResponse
	notFoundEnvelope            ErrorResponse
	internalServerErrorEnvelope ErrorResponse
)

func (badRequestEnvelope) PrepareJSONSchema(s *jsonschema.Schema) error {
	return pinEnvelope(s, http.StatusBadRequest)
}

func (notFoundEnvelope) PrepareJSONSchema(s *jsonschema.Schema) error {
	return pinEnvelope(s, http.StatusNotFound)
}

func (internalServerErrorEnvelope) PrepareJSONSchema(s *jsonschema.Schema) error {
	return pinEnvelope(s, http.StatusInternalServerError)
}

func pinEnvelope(s *jsonschema.Schema, code int) error {
	label := http.StatusText(code)
	s.WithDescription(label)
	s.Required = []string{"statusCode", "error", "message"}
	if p, ok := s.Properties["statusCode"]; ok && p.TypeObject != nil {
		p.TypeObject.WithEnum(code)
	}
	if p, ok := s.Properties["error"]; ok && p.TypeObject != nil {
		p.TypeObject.WithEnum(label)
	}
	return nil
}
