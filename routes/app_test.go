package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pujasari/config"
	"pujasari/repository"
	"pujasari/schema"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type testServer struct {
	t     *testing.T
	app   *fiber.App
	doc   *schema.Document
	store repository.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithStore(t, repository.NewMemoryStore())
}

func newTestServerWithStore(t *testing.T, store repository.Store) *testServer {
	t.Helper()
	log, _ := test.NewNullLogger()
	app, doc := New(Options{
		Config: config.Config{CorsOrigins: "*"},
		Store:  store,
		Logger: log,
	})
	return &testServer{t: t, app: app, doc: doc, store: store}
}

func (s *testServer) do(method, path string, body any) (*http.Response, []byte) {
	s.t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(s.t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	return resp, out
}

func (s *testServer) create(path string, body any) string {
	s.t.Helper()
	resp, raw := s.do(fiber.MethodPost, path, body)
	require.Equal(s.t, fiber.StatusOK, resp.StatusCode, string(raw))
	var out schema.IDResponse
	require.NoError(s.t, json.Unmarshal(raw, &out))
	require.NotEmpty(s.t, out.ID)
	return out.ID
}

func (s *testServer) getJSON(path string, out any) {
	s.t.Helper()
	resp, raw := s.do(fiber.MethodGet, path, nil)
	require.Equal(s.t, fiber.StatusOK, resp.StatusCode, string(raw))
	require.NoError(s.t, json.Unmarshal(raw, out))
}

func envelope(t *testing.T, raw []byte) schema.ErrorResponse {
	t.Helper()
	var out schema.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

var apel = map[string]any{
	"category":   "buah",
	"deskripsi":  "Apel merah",
	"harga":      15000,
	"nama":       "Apel",
	"photo_name": "apel.jpg",
}

func TestProductCreateAndGet(t *testing.T) {
	s := newTestServer(t)
	id := s.create("/products", apel)

	var got map[string]any
	s.getJSON("/products/"+id, &got)
	assert.Equal(t, map[string]any{
		"id":         id,
		"category":   "buah",
		"deskripsi":  "Apel merah",
		"harga":      15000.0,
		"nama":       "Apel",
		"photo_name": "apel.jpg",
		"promo":      0.0,
	}, got)
}

func TestProductPartialUpdate(t *testing.T) {
	s := newTestServer(t)
	id := s.create("/products", apel)

	resp, raw := s.do(fiber.MethodPut, "/products/"+id, map[string]any{"harga": 17000})
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode, string(raw))
	assert.Empty(t, raw)

	var got map[string]any
	s.getJSON("/products/"+id, &got)
	assert.Equal(t, 17000.0, got["harga"])
	assert.Equal(t, "Apel", got["nama"])
	assert.Equal(t, "Apel merah", got["deskripsi"])

	// body kosong tidak mengubah apa pun
	resp, _ = s.do(fiber.MethodPut, "/products/"+id, map[string]any{})
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestUpdateSurvivesLaterRequests(t *testing.T) {
	s := newTestServer(t)
	id := s.create("/products", apel)

	resp, raw := s.do(fiber.MethodPut, "/products/"+id, map[string]any{"harga": 12000})
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode, string(raw))

	// request lain menimpa buffer yang dipakai PUT di atas
	resp, _ = s.do(fiber.MethodGet, "/products/zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var list []map[string]any
	s.getJSON("/products", &list)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0]["id"])
	assert.Equal(t, 12000.0, list[0]["harga"])

	var got map[string]any
	s.getJSON("/products/"+id, &got)
	assert.Equal(t, 12000.0, got["harga"])

	orderID := s.create("/orders", newOrder("u1", "", 100))
	resp, raw = s.do(fiber.MethodPut, "/orders/"+orderID, map[string]any{"status": "Sampai"})
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode, string(raw))
	s.do(fiber.MethodDelete, "/orders/zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz", nil)

	var orders []map[string]any
	s.getJSON("/orders", &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, "Sampai", orders[0]["status"])

	resp, raw = s.do(fiber.MethodGet, "/orders/export", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
}

func TestNotFoundEnvelopes(t *testing.T) {
	s := newTestServer(t)
	for _, tc := range []struct{ method, path string }{
		{fiber.MethodGet, "/products/does-not-exist"},
		{fiber.MethodPut, "/products/does-not-exist"},
		{fiber.MethodDelete, "/products/does-not-exist"},
		{fiber.MethodGet, "/admins/does-not-exist"},
		{fiber.MethodGet, "/customers/does-not-exist"},
		{fiber.MethodGet, "/recipes/does-not-exist"},
		{fiber.MethodGet, "/orders/does-not-exist"},
	} {
		var body any
		if tc.method == fiber.MethodPut {
			body = map[string]any{"nama": "x"}
		}
		resp, raw := s.do(tc.method, tc.path, body)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, tc.method+" "+tc.path)
		env := envelope(t, raw)
		assert.Equal(t, 404, env.StatusCode)
		assert.Equal(t, "Not Found", env.Error)
		assert.Contains(t, env.Message, "does-not-exist")
	}
}

func TestDeleteTwice(t *testing.T) {
	s := newTestServer(t)
	id := s.create("/products", apel)

	resp, raw := s.do(fiber.MethodDelete, "/products/"+id, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Empty(t, raw)

	resp, _ = s.do(fiber.MethodGet, "/products/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, raw = s.do(fiber.MethodDelete, "/products/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 404, envelope(t, raw).StatusCode)
}

func TestProductListFilters(t *testing.T) {
	s := newTestServer(t)
	s.create("/products", apel)
	s.create("/products", map[string]any{
		"category": "sayur", "deskripsi": "Bayam hijau", "harga": 5000, "nama": "Bayam", "photo_name": "bayam.jpg",
	})
	s.create("/products", map[string]any{
		"category": "buah", "deskripsi": "Jeruk", "harga": 30000, "nama": "Jeruk", "photo_name": "jeruk.jpg", "promo": 0.2,
	})

	names := func(query string) []string {
		var list []map[string]any
		s.getJSON("/products"+query, &list)
		out := []string{}
		for _, p := range list {
			out = append(out, p["nama"].(string))
		}
		return out
	}

	assert.Equal(t, []string{"Apel", "Bayam", "Jeruk"}, names(""))
	assert.Equal(t, []string{"Apel", "Jeruk"}, names("?category=buah"))
	assert.Equal(t, []string{"Apel", "Jeruk"}, names("?hargaMulai=10000"))
	assert.Equal(t, []string{"Apel", "Bayam"}, names("?hargaHingga=15000"))
	assert.Equal(t, []string{"Apel"}, names("?category=buah&hargaMulai=10000&hargaHingga=20000"))
	assert.Equal(t, []string{"Jeruk"}, names("?promo=0.2"))
	// nilai 0 dianggap tidak diisi
	assert.Equal(t, []string{"Apel", "Bayam", "Jeruk"}, names("?hargaMulai=0&promo=0"))
	assert.Equal(t, []string{}, names("?category=daging"))
}

func TestListEmptyCollection(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/admins", "/customers", "/products", "/recipes", "/orders"} {
		resp, raw := s.do(fiber.MethodGet, path, nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		assert.JSONEq(t, "[]", string(raw), path)
	}
}

func TestValidationErrors(t *testing.T) {
	s := newTestServer(t)

	resp, raw := s.do(fiber.MethodPost, "/products", map[string]any{"nama": "Apel"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	env := envelope(t, raw)
	assert.Equal(t, "Bad Request", env.Error)
	assert.Equal(t, "body must have required property 'category'", env.Message)

	resp, raw = s.do(fiber.MethodGet, "/products?category=ikan", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "querystring/category must be equal to one of the allowed values", envelope(t, raw).Message)

	resp, raw = s.do(fiber.MethodGet, "/products?hargaMulai=murah", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 400, envelope(t, raw).StatusCode)

	req := httptest.NewRequest(fiber.MethodPost, "/products", bytes.NewBufferString("{rusak"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, raw = s.do(fiber.MethodPost, "/admins", map[string]any{
		"email": "aji@pujasari", "name": "Aji", "no_hp": "081200002343",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, `body/email must match format "email"`, envelope(t, raw).Message)
}

func TestAdminDefaultsAndFilter(t *testing.T) {
	s := newTestServer(t)
	employee := s.create("/admins", map[string]any{
		"alamat": "Jl. Kenangan 2", "email": "aji@pujasari.id", "name": "Aji", "no_hp": "081200002343",
	})
	s.create("/admins", map[string]any{
		"email": "sari@pujasari.id", "name": "Sari", "no_hp": "081200002344", "admin_kind": "owner",
	})

	var got map[string]any
	s.getJSON("/admins/"+employee, &got)
	assert.Equal(t, "employee", got["admin_kind"])

	var owners []map[string]any
	s.getJSON("/admins?admin_kind=owner", &owners)
	require.Len(t, owners, 1)
	assert.Equal(t, "Sari", owners[0]["name"])
}

func TestCustomerCheckoutItemsStartEmpty(t *testing.T) {
	s := newTestServer(t)
	id := s.create("/customers", map[string]any{
		"alamat":                 "Jl. Kenangan 2",
		"email":                  "budi@pujasari.id",
		"name":                   "Budi",
		"no_hp":                  "081200002343",
		"current_checkout_items": []map[string]any{{"itemId": "p1", "amount": 3}},
	})

	resp, raw := s.do(fiber.MethodGet, "/customers/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{
		"id": "`+id+`",
		"alamat": "Jl. Kenangan 2",
		"email": "budi@pujasari.id",
		"name": "Budi",
		"no_hp": "081200002343",
		"current_checkout_items": []
	}`, string(raw))
}

func TestRecipeLifecycle(t *testing.T) {
	s := newTestServer(t)
	id := s.create("/recipes", map[string]any{
		"nama": "Sayur Asem", "bahan": []string{"asam", "kacang panjang"}, "langkah": []string{"rebus air"},
	})

	resp, _ := s.do(fiber.MethodPut, "/recipes/"+id, map[string]any{"langkah": []string{"rebus air", "masukkan sayur"}})
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	var got map[string]any
	s.getJSON("/recipes/"+id, &got)
	assert.Equal(t, []any{"asam", "kacang panjang"}, got["bahan"])
	assert.Equal(t, []any{"rebus air", "masukkan sayur"}, got["langkah"])
}

func newOrder(userID, status string, at int64) map[string]any {
	return map[string]any{
		"bank":           "BNI",
		"no_vc":          "8800123",
		"payment_method": "VirtualAccount",
		"status":         status,
		"time":           at,
		"user_id":        userID,
		"checkout_items": []map[string]any{{"item_id": "p1", "amount": 2}},
	}
}

func TestOrderStatusOnlyUpdate(t *testing.T) {
	s := newTestServer(t)
	id := s.create("/orders", newOrder("u1", "", 1652521028791))

	var got map[string]any
	s.getJSON("/orders/"+id, &got)
	assert.Equal(t, "Menunggu_Pembayaran", got["status"])

	resp, raw := s.do(fiber.MethodPut, "/orders/"+id, map[string]any{"status": "Dikirim", "bank": "BCA"})
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode, string(raw))

	s.getJSON("/orders/"+id, &got)
	assert.Equal(t, "Dikirim", got["status"])
	assert.Equal(t, "BNI", got["bank"])

	resp, raw = s.do(fiber.MethodPut, "/orders/"+id, map[string]any{"status": "Batal"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "body/status must be equal to one of the allowed values", envelope(t, raw).Message)
}

func TestOrderListAndExportFilters(t *testing.T) {
	s := newTestServer(t)
	s.create("/orders", newOrder("u1", "Dikirim", 100))
	s.create("/orders", newOrder("u2", "Sampai", 200))
	s.create("/orders", newOrder("u1", "Sampai", 300))

	var list []map[string]any
	s.getJSON("/orders?status=Sampai", &list)
	assert.Len(t, list, 2)

	s.getJSON("/orders?user_id=u1&fromDate=150", &list)
	require.Len(t, list, 1)
	assert.Equal(t, float64(300), list[0]["time"])

	s.getJSON("/orders?fromDate=100&toDate=200", &list)
	assert.Len(t, list, 2)

	resp, raw := s.do(fiber.MethodGet, "/orders/export?status=Sampai", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "riwayat_checkout.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Riwayat Checkout")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

type brokenStore struct{ repository.Store }

var errStoreDown = errors.New("store mati")

func (brokenStore) Ping(context.Context) error { return errStoreDown }

func (brokenStore) Collection(name string) repository.CollectionRef { return brokenCollection{name} }

type brokenCollection struct{ name string }

func (c brokenCollection) Name() string { return c.name }

func (brokenCollection) Query(context.Context, ...repository.Filter) ([]repository.Snapshot, error) {
	return nil, errStoreDown
}

func (brokenCollection) Add(context.Context, any) (string, error) { return "", errStoreDown }

func TestStoreFailureEnvelope(t *testing.T) {
	s := newTestServerWithStore(t, brokenStore{Store: repository.NewMemoryStore()})

	resp, raw := s.do(fiber.MethodGet, "/products", nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	env := envelope(t, raw)
	assert.Equal(t, 500, env.StatusCode)
	assert.Equal(t, "Internal Server Error", env.Error)
	assert.NotEmpty(t, env.Message)

	resp, raw = s.do(fiber.MethodPost, "/products", apel)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, 500, envelope(t, raw).StatusCode)

	resp, _ = s.do(fiber.MethodGet, "/healthz", nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	resp, _ := s.do(fiber.MethodGet, "/healthz", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)
	resp, raw := s.do(fiber.MethodGet, "/kategori", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not Found", envelope(t, raw).Error)
}

func TestDocumentListsEveryRoute(t *testing.T) {
	s := newTestServer(t)
	ops := s.doc.Operations()
	// 5 resource x 5 operasi + export
	assert.Len(t, ops, 26)

	for _, op := range ops {
		assert.Contains(t, op.Responses, fiber.StatusInternalServerError, op.Method+" "+op.Path)
		assert.NotEmpty(t, op.Tags)
	}

	raw, err := s.doc.JSON()
	require.NoError(t, err)
	var out struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Contains(t, out.Paths, "/products")
	assert.Contains(t, out.Paths, "/products/{id}")
	assert.Contains(t, out.Paths, "/orders/export")
	assert.Len(t, out.Paths["/orders/{id}"], 3)
}
