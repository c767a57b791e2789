package schema

import (
	"slices"
	"strconv"
	"strings"

	"github.com/swaggest/jsonschema-go"
)

// Patterns mirrored from the custom validation rules of the same name.
const (
	PhonePattern = `^\d{12,}$`
	EmailPattern = `^(([^<>()[\]\\.,;:\s@"]+(\.[^<>()[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`
)

// reflectOptions are applied to every type reflected into the document.
func reflectOptions() []func(*jsonschema.ReflectContext) {
	return []func(*jsonschema.ReflectContext){
		jsonschema.InterceptProp(validateRules),
	}
}

// validateRules carries the validate tag into the property schema so the
// document states the same constraints the handlers enforce.
func validateRules(params jsonschema.InterceptPropParams) error {
	if params.PropertySchema == nil {
		return nil
	}
	rules := params.Field.Tag.Get("validate")
	if rules == "" {
		return nil
	}
	for _, rule := range strings.Split(rules, ",") {
		name, arg, _ := strings.Cut(rule, "=")
		switch name {
		case "required":
			if params.ParentSchema != nil && !slices.Contains(params.ParentSchema.Required, params.Name) {
				params.ParentSchema.Required = append(params.ParentSchema.Required, params.Name)
			}
		case "no_hp":
			params.PropertySchema.WithPattern(PhonePattern)
		case "email_address":
			params.PropertySchema.WithFormat("email").WithPattern(EmailPattern)
		case "gte":
			if v, err := strconv.ParseFloat(arg, 64); err == nil {
				params.PropertySchema.WithMinimum(v)
			}
		}
	}
	return nil
}
