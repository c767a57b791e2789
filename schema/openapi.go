package schema

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// Operation documents a single route. PathParams and Query are structs with
// path and query tags, Body is the JSON request body.
type Operation struct {
	Method      string
	Path        string
	Summary     string
	Tags        []string
	PathParams  any
	Query       any
	Body        any
	Responses   Responses
	ContentType string // of the 200 reply; JSON when empty
}

// Document collects operations as routes are registered and renders them as
// an OpenAPI 3 document. It satisfies swag.Swagger so fiber-swagger can
// serve it.
type Document struct {
	mu        sync.RWMutex
	reflector *openapi3.Reflector
	ops       []Operation
}

func NewDocument(title, version, description string) *Document {
	r := &openapi3.Reflector{}
	r.DefaultOptions = append(r.DefaultOptions, reflectOptions()...)
	r.Spec = &openapi3.Spec{Openapi: "3.0.3"}
	r.Spec.Info.
		WithTitle(title).
		WithVersion(version).
		WithDescription(description)
	return &Document{reflector: r}
}

// Add reflects op into the document. Fiber style path parameters (/:id)
// become /{id}.
func (d *Document) Add(op Operation) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	oc, err := d.reflector.NewOperationContext(op.Method, openAPIPath(op.Path))
	if err != nil {
		return err
	}
	oc.SetSummary(op.Summary)
	oc.SetTags(op.Tags...)
	for _, req := range []any{op.PathParams, op.Query, op.Body} {
		if req != nil {
			oc.AddReqStructure(req)
		}
	}

	codes := make([]int, 0, len(op.Responses))
	for code := range op.Responses {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		reply := op.Responses[code]
		opts := []openapi.ContentOption{openapi.WithHTTPStatus(code), withDescription(reply.Description)}
		if code == http.StatusOK && op.ContentType != "" {
			opts = append(opts, openapi.WithContentType(op.ContentType))
		}
		oc.AddRespStructure(reply.Body, opts...)
	}

	if err := d.reflector.AddOperation(oc); err != nil {
		return err
	}
	d.ops = append(d.ops, op)
	return nil
}

func withDescription(desc string) openapi.ContentOption {
	return func(cu *openapi.ContentUnit) {
		cu.Description = desc
	}
}

// Operations returns a copy of the recorded operations.
func (d *Document) Operations() []Operation {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]Operation(nil), d.ops...)
}

// ReadDoc implements swag.Swagger.
func (d *Document) ReadDoc() string {
	b, err := d.JSON()
	if err != nil {
		return "{}"
	}
	return string(b)
}

func (d *Document) JSON() ([]byte, error) {
	d.mu.RLock()
	raw, err := json.Marshal(d.reflector.Spec)
	d.mu.RUnlock()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func openAPIPath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		if strings.HasPrefix(part, ":") {
			parts[i] = "{" + strings.TrimPrefix(part, ":") + "}"
		}
	}
	out := strings.Join(parts, "/")
	if out == "" {
		return "/"
	}
	return out
}
