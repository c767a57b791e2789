package schema

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValues(t *testing.T) {
	assert.Equal(t, []string{"BNI", "BCA"}, Bank("").Values())
	assert.Equal(t, []string{"VirtualAccount", "Cash"}, PaymentMethod("").Values())
	assert.Equal(t, []string{"daging", "sayur", "buah", "rempah", "paket"}, KategoriProduk("").Values())
	assert.Equal(t, []string{"Menunggu_Pembayaran", "Dikirim", "Sampai"}, StatusPemesanan("").Values())
	assert.Equal(t, []string{"employee", "owner"}, AdminKind("").Values())
}

func TestEnumValid(t *testing.T) {
	cases := []struct {
		value Enum
		want  bool
	}{
		{BankBCA, true},
		{Bank("Mandiri"), false},
		{PaymentCash, true},
		{PaymentMethod("cash"), false},
		{KategoriBuah, true},
		{KategoriProduk(""), false},
		{StatusDikirim, true},
		{StatusPemesanan("Batal"), false},
		{AdminKindOwner, true},
		{AdminKind("root"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.value.Valid(), "%v", tc.value)
	}
}

func TestNewErrorResponse(t *testing.T) {
	assert.Equal(t, ErrorResponse{
		StatusCode: http.StatusNotFound,
		Error:      "Not Found",
		Message:    "Produk x tidak ditemukan",
	}, NewErrorResponse(http.StatusNotFound, "Produk x tidak ditemukan"))

	assert.Equal(t, "Bad Request", NewErrorResponse(http.StatusBadRequest, "").Error)
}

func TestEnumSchema(t *testing.T) {
	s := reflected(t, StatusPemesanan(""))
	assert.Equal(t, []any{"Menunggu_Pembayaran", "Dikirim", "Sampai"}, s["enum"])
	assert.Equal(t, "Status pemesanan produk", s["description"])
}

func TestEnvelopeSchemas(t *testing.T) {
	assert.Nil(t, NoContent().Body)

	cases := []struct {
		reply Reply
		code  int
	}{
		{BadRequest(), http.StatusBadRequest},
		{NotFound(), http.StatusNotFound},
		{InternalServerError(), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		s := reflected(t, tc.reply.Body)
		assert.Equal(t, http.StatusText(tc.code), s["description"])
		assert.ElementsMatch(t, []any{"statusCode", "error", "message"}, s["required"])

		props, ok := s["properties"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, []any{float64(tc.code)}, props["statusCode"].(map[string]any)["enum"])
		assert.Equal(t, []any{http.StatusText(tc.code)}, props["error"].(map[string]any)["enum"])
	}
}

func TestFileSchema(t *testing.T) {
	s := reflected(t, File{})
	assert.Equal(t, "string", s["type"])
	assert.Equal(t, "binary", s["format"])
}
