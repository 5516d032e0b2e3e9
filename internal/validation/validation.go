// Package validation checks request payloads before any handler logic runs
// and renders every failure, whether a bad JSON type or a missing field, in
// one structured shape:
//
//	{"detail": [{"loc": ["body", "email"], "msg": "field required", "type": "value_error.missing"}]}
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New returns a validator that reports JSON field names instead of Go names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FieldError reports one offending input location.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Response is the body returned with 422 Unprocessable Entity.
type Response struct {
	Detail []FieldError `json:"detail"`
}

// Bind decodes the request body into dst and validates it. The returned
// error is either nil or an *echo.HTTPError carrying a Response.
func Bind(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		// wrapped so Echo's error handler does not swap in the bind HTTPError
		return echo.NewHTTPError(http.StatusUnprocessableEntity, FromBindError(err)).SetInternal(fmt.Errorf("bind: %w", err))
	}
	if err := c.Validate(dst); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, FromValidationError(err)).SetInternal(err)
	}
	return nil
}

// InvalidPathParam builds the failure for a path segment that does not parse.
func InvalidPathParam(name, expected string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnprocessableEntity, Response{
		Detail: []FieldError{typeError([]string{"path", name}, expected)},
	})
}

// FromBindError converts JSON decoding failures.
func FromBindError(err error) Response {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return Response{Detail: []FieldError{typeError(loc, kindName(typeErr.Type))}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return Response{Detail: []FieldError{{
			Loc:  []string{"body"},
			Msg:  "invalid JSON body",
			Type: "value_error.jsondecode",
		}}}
	}

	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if s, ok := he.Message.(string); ok {
			msg = s
		}
	}
	return Response{Detail: []FieldError{{
		Loc:  []string{"body"},
		Msg:  msg,
		Type: "value_error",
	}}}
}

// FromValidationError converts go-playground/validator failures.
func FromValidationError(err error) Response {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Response{Detail: []FieldError{{
			Loc:  []string{"body"},
			Msg:  err.Error(),
			Type: "value_error",
		}}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		loc := []string{"body", fe.Field()}
		if fe.Tag() == "required" {
			out = append(out, FieldError{Loc: loc, Msg: "field required", Type: "value_error.missing"})
			continue
		}
		out = append(out, FieldError{Loc: loc, Msg: "failed on " + fe.Tag(), Type: "value_error." + fe.Tag()})
	}
	return Response{Detail: out}
}

func typeError(loc []string, expected string) FieldError {
	switch expected {
	case "integer":
		return FieldError{Loc: loc, Msg: "value is not a valid integer", Type: "type_error.integer"}
	case "str":
		return FieldError{Loc: loc, Msg: "str type expected", Type: "type_error.str"}
	default:
		return FieldError{Loc: loc, Msg: "value is not a valid " + expected, Type: "type_error." + expected}
	}
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "str"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Bool:
		return "bool"
	case reflect.Float32, reflect.Float64:
		return "float"
	default:
		return t.Kind().String()
	}
}
