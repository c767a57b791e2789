package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pujasari/repository"
	"pujasari/schema"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// Query is a list filter decoded from the query string.
type Query interface {
	Filters() []repository.Filter
}

// Document is a pointer to a stored resource whose id lives outside its body.
type Document[D any] interface {
	*D
	SetID(id string)
}

// Defaulter fills in optional create fields before validation.
type Defaulter interface {
	ApplyDefaults()
}

// Normalizer fixes up a document after it is read, e.g. nil lists to [].
type Normalizer interface {
	Normalize()
}

// Resource implements list, get, create, update and delete for one
// collection. D is the stored document, C the create body, U the patch body
// (pointer fields, nil means untouched) and Q the list query.
type Resource[D any, PD Document[D], C any, U any, Q Query] struct {
	label string
	refs  repository.Refs
	log   *logrus.Entry
}

func NewResource[D any, PD Document[D], C any, U any, Q Query](label string, refs repository.Refs, log *logrus.Logger) *Resource[D, PD, C, U, Q] {
	return &Resource[D, PD, C, U, Q]{
		label: label,
		refs:  refs,
		log:   log.WithField("resource", refs.Col.Name()),
	}
}

func (r *Resource[D, PD, C, U, Q]) title() string {
	if r.label == "" {
		return r.label
	}
	return strings.ToUpper(r.label[:1]) + r.label[1:]
}

// GET /
func (r *Resource[D, PD, C, U, Q]) List(c *fiber.Ctx) error {
	q, err := r.parseQuery(c)
	if err != nil {
		return err
	}
	list, err := r.Find(c.UserContext(), q)
	if err != nil {
		r.log.WithError(err).Errorf("Gagal mengambil data %s", r.label)
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("Gagal saat mengambil data %s", r.label))
	}
	r.log.Infof("Berhasil mengambil %d %s", len(list), r.label)
	return c.Status(fiber.StatusOK).JSON(list)
}

// Find runs one query with all filters of q ANDed. It never returns a nil
// slice.
func (r *Resource[D, PD, C, U, Q]) Find(ctx context.Context, q Q) ([]D, error) {
	snaps, err := r.refs.Col.Query(ctx, q.Filters()...)
	if err != nil {
		return nil, err
	}
	list := make([]D, 0, len(snaps))
	for _, s := range snaps {
		d, err := r.decode(s)
		if err != nil {
			return nil, fmt.Errorf("decode %s %s: %w", r.label, s.ID(), err)
		}
		list = append(list, d)
	}
	return list, nil
}

func (r *Resource[D, PD, C, U, Q]) parseQuery(c *fiber.Ctx) (Q, error) {
	var q Q
	if err := c.QueryParser(&q); err != nil {
		return q, fiber.NewError(fiber.StatusBadRequest, "querystring tidak valid: "+err.Error())
	}
	if err := validateStruct("querystring", &q); err != nil {
		return q, err
	}
	return q, nil
}

// GET /:id
func (r *Resource[D, PD, C, U, Q]) Get(c *fiber.Ctx) error {
	id := utils.CopyString(c.Params("id"))
	snap, err := r.refs.Doc(id).Get(c.UserContext())
	if err != nil {
		r.log.WithError(err).Errorf("Gagal mengambil %s %s", r.label, id)
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("Gagal saat mengambil %s", r.label))
	}
	if !snap.Exists() {
		r.log.Infof("%s %s tidak ditemukan", r.title(), id)
		return r.notFound(id)
	}
	d, err := r.decode(snap)
	if err != nil {
		r.log.WithError(err).Errorf("Data %s %s rusak", r.label, id)
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("Gagal saat membaca %s", r.label))
	}
	r.log.Debugf("%s %s ditemukan", r.title(), id)
	return c.Status(fiber.StatusOK).JSON(d)
}

// POST /
func (r *Resource[D, PD, C, U, Q]) Create(c *fiber.Ctx) error {
	var in C
	if err := parseBody(c, &in); err != nil {
		return err
	}
	if d, ok := any(&in).(Defaulter); ok {
		d.ApplyDefaults()
	}
	if err := validateStruct("body", &in); err != nil {
		return err
	}

	id, err := r.refs.Col.Add(c.UserContext(), &in)
	if err != nil {
		r.log.WithError(err).Errorf("Gagal membuat %s", r.label)
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("Gagal saat membuat %s", r.label))
	}
	r.log.Infof("%s %s sukses dibuat", r.title(), id)
	return c.Status(fiber.StatusOK).JSON(schema.IDResponse{ID: id})
}

// PUT /:id
func (r *Resource[D, PD, C, U, Q]) Update(c *fiber.Ctx) error {
	id := utils.CopyString(c.Params("id"))
	var patch U
	if err := parseBody(c, &patch); err != nil {
		return err
	}
	if err := validateStruct("body", &patch); err != nil {
		return err
	}
	fields, err := patchFields(&patch)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "body tidak valid: "+err.Error())
	}

	err = r.refs.Doc(id).Update(c.UserContext(), fields)
	if errors.Is(err, repository.ErrNotFound) {
		r.log.Infof("%s %s tidak ditemukan", r.title(), id)
		return r.notFound(id)
	}
	if err != nil {
		r.log.WithError(err).Errorf("%s %s gagal di update", r.title(), id)
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("Gagal saat mengupdate %s %s", r.label, id))
	}
	r.log.Infof("%s %s berhasil di update", r.title(), id)
	return c.SendStatus(fiber.StatusNoContent)
}

// DELETE /:id
func (r *Resource[D, PD, C, U, Q]) Delete(c *fiber.Ctx) error {
	id := utils.CopyString(c.Params("id"))
	err := r.refs.Doc(id).Delete(c.UserContext())
	if errors.Is(err, repository.ErrNotFound) {
		r.log.Infof("%s %s tidak ditemukan", r.title(), id)
		return r.notFound(id)
	}
	if err != nil {
		r.log.WithError(err).Errorf("%s %s gagal dihapus", r.title(), id)
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("Gagal saat menghapus %s %s", r.label, id))
	}
	r.log.Infof("%s %s berhasil dihapus", r.title(), id)
	return c.SendStatus(fiber.StatusNoContent)
}

func (r *Resource[D, PD, C, U, Q]) notFound(id string) error {
	return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("%s %s tidak ditemukan", r.title(), id))
}

func (r *Resource[D, PD, C, U, Q]) decode(s repository.Snapshot) (D, error) {
	var d D
	if err := s.DataTo(&d); err != nil {
		return d, err
	}
	p := PD(&d)
	p.SetID(s.ID())
	if n, ok := any(p).(Normalizer); ok {
		n.Normalize()
	}
	return d, nil
}

// patchFields keeps only the fields set in patch, keyed by bson name.
func patchFields(patch any) (map[string]any, error) {
	raw, err := bson.Marshal(patch)
	if err != nil {
		return nil, err
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
