package schema

import (
	"fmt"
	"net/http"
	"reflect"
)

// Reply is the declared body of one status code. Body is a sample value whose
// type is reflected into the document; nil means the reply has no content.
type Reply struct {
	Body        any
	Description string
}

// Responses maps a declared HTTP status code to its reply.
type Responses map[int]Reply

var declaredCodes = map[int]bool{
	http.StatusOK:                  true,
	http.StatusNoContent:           true,
	http.StatusBadRequest:          true,
	http.StatusNotFound:            true,
	http.StatusInternalServerError: true,
}

// ComposeResponses returns the endpoint's declared replies extended with the
// standard 500 envelope. An explicit 500 entry in r takes precedence.
// It panics on an undeclared status code, on a 204 that carries a body and
// on any other code without one.
func ComposeResponses(r Responses) Responses {
	out := Responses{http.StatusInternalServerError: InternalServerError()}
	for code, reply := range r {
		if !declaredCodes[code] {
			panic(fmt.Sprintf("schema: status %d is not a declared reply code", code))
		}
		if (reply.Body == nil) != (code == http.StatusNoContent) {
			panic(fmt.Sprintf("schema: malformed reply shape for status %d", code))
		}
		out[code] = reply
	}
	return out
}

// Of declares a reply with body v.
func Of(v any) Reply {
	return Reply{Body: v}
}

// ArrayOf declares a reply whose body is a list of v.
func ArrayOf(v any, description string) Reply {
	list := reflect.MakeSlice(reflect.SliceOf(reflect.TypeOf(v)), 0, 0)
	return Reply{Body: list.Interface(), Description: description}
}

// NoContent declares an empty 204 reply.
func NoContent() Reply {
	return Reply{Description: "Sukses tanpa konten"}
}

// NotFound declares the 404 envelope.
func NotFound() Reply {
	return Reply{Body: notFoundEnvelope{}, Description: http.StatusText(http.StatusNotFound)}
}

// BadRequest declares the 400 envelope.
func BadRequest() Reply {
	return Reply{Body: badRequestEnvelope{}, Description: http.StatusText(http.StatusBadRequest)}
}

// InternalServerError declares the 500 envelope.
func InternalServerError() Reply {
	return Reply{Body: internalServerErrorEnvelope{}, Description: http.StatusText(http.StatusInternalServerError)}
}
