package routes

import (
	"fmt"
	"strings"

	"pujasari/repository"
	"pujasari/schema"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(app *fiber.App, doc *schema.Document, store repository.Store, log *logrus.Logger) {
	AdminRoutes(newGroup(app, doc, "/admins", "Admin"), store, log)
	CustomerRoutes(newGroup(app, doc, "/customers", "Customer"), store, log)
	ProductRoutes(newGroup(app, doc, "/products", "Produk"), store, log)
	RecipeRoutes(newGroup(app, doc, "/recipes", "Resep"), store, log)
	OrderRoutes(newGroup(app, doc, "/orders", "Pesanan"), store, log)
}

// group mendaftarkan handler ke router sekaligus operasinya ke dokumen API
type group struct {
	router fiber.Router
	prefix string
	tag    string
	doc    *schema.Document
}

func newGroup(app *fiber.App, doc *schema.Document, prefix, tag string) group {
	return group{router: app.Group(prefix), prefix: prefix, tag: tag, doc: doc}
}

func (g group) handle(method, path string, h fiber.Handler, op schema.Operation) {
	g.router.Add(method, path, h)

	op.Method = method
	op.Path = strings.TrimSuffix(g.prefix+path, "/")
	op.Tags = []string{g.tag}
	op.Responses = schema.ComposeResponses(op.Responses)
	if err := g.doc.Add(op); err != nil {
		panic(fmt.Sprintf("routes: document %s %s: %v", method, op.Path, err))
	}
}

type crudHandler interface {
	List(c *fiber.Ctx) error
	Get(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

// crudDocs menjelaskan bentuk data satu resource untuk dokumen API
type crudDocs struct {
	noun   string
	item   any
	create any
	patch  any
	query  any
}

// idParam adalah parameter path :id
type idParam struct {
	ID string `path:"id" description:"Id dokumen"`
}

func registerCRUD(g group, h crudHandler, d crudDocs) {
	g.handle(fiber.MethodGet, "/", h.List, schema.Operation{
		Summary: "Mengambil daftar " + d.noun,
		Query:   d.query,
		Responses: schema.Responses{
			fiber.StatusOK:         schema.ArrayOf(d.item, "Daftar "+d.noun),
			fiber.StatusBadRequest: schema.BadRequest(),
		},
	})
	g.handle(fiber.MethodGet, "/:id", h.Get, schema.Operation{
		Summary:    "Mengambil " + d.noun + " berdasarkan id",
		PathParams: idParam{},
		Responses: schema.Responses{
			fiber.StatusOK:       schema.Of(d.item),
			fiber.StatusNotFound: schema.NotFound(),
		},
	})
	g.handle(fiber.MethodPost, "/", h.Create, schema.Operation{
		Summary: "Menambahkan " + d.noun,
		Body:    d.create,
		Responses: schema.Responses{
			fiber.StatusOK:         schema.Of(schema.IDResponse{}),
			fiber.StatusBadRequest: schema.BadRequest(),
		},
	})
	g.handle(fiber.MethodPut, "/:id", h.Update, schema.Operation{
		Summary:    "Mengubah sebagian data " + d.noun,
		PathParams: idParam{},
		Body:       d.patch,
		Responses: schema.Responses{
			fiber.StatusNoContent:  schema.NoContent(),
			fiber.StatusBadRequest: schema.BadRequest(),
			fiber.StatusNotFound:   schema.NotFound(),
		},
	})
	g.handle(fiber.MethodDelete, "/:id", h.Delete, schema.Operation{
		Summary:    "Menghapus " + d.noun,
		PathParams: idParam{},
		Responses: schema.Responses{
			fiber.StatusNoContent: schema.NoContent(),
			fiber.StatusNotFound:  schema.NotFound(),
		},
	})
}
