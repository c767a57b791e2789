package controllers

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"pujasari/schema"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var (
	phoneRe = regexp.MustCompile(schema.PhonePattern)
	emailRe = regexp.MustCompile(schema.EmailPattern)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Pakai nama field JSON/query agar pesan error sama dengan nama di request
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, key := range []string{"json", "query"} {
			name := strings.Split(f.Tag.Get(key), ",")[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})

	mustRegister(v, "enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(schema.Enum)
		return ok && e.Valid()
	})
	mustRegister(v, "no_hp", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "email_address", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// validateStruct checks v and reports the first violation as a 400 error.
// scope is "body" or "querystring".
func validateStruct(scope string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, describe(scope, verrs[0]))
	}
	return fiber.NewError(fiber.StatusBadRequest, scope+" "+err.Error())
}

func describe(scope string, fe validator.FieldError) string {
	path := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		parent, prop := scope, path
		if i := strings.LastIndex(path, "/"); i >= 0 {
			parent, prop = scope+"/"+path[:i], path[i+1:]
		}
		return fmt.Sprintf("%s must have required property '%s'", parent, prop)
	case "enum":
		return fmt.Sprintf("%s/%s must be equal to one of the allowed values", scope, path)
	case "no_hp":
		return fmt.Sprintf("%s/%s must match pattern \"%s\"", scope, path, schema.PhonePattern)
	case "email_address":
		return fmt.Sprintf("%s/%s must match format \"email\"", scope, path)
	case "url":
		return fmt.Sprintf("%s/%s must match format \"uri\"", scope, path)
	}
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}
	return fmt.Sprintf("%s/%s must satisfy %s", scope, path, rule)
}

// fieldPath turns "OrderInput.checkout_items[0].item_id" into
// "checkout_items/0/item_id".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return pathReplacer.Replace(ns)
}

var pathReplacer = strings.NewReplacer(".", "/", "[", "/", "]", "")

// parseBody decodes a JSON body into out. An empty body leaves out untouched
// so that validation reports the missing fields.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "body tidak valid: "+err.Error())
	}
	return nil
}
