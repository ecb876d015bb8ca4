// Package api embeds the OpenAPI document of the HTTP interface. The same
// document drives request validation and the Swagger UI.
package api

import (
	_ "embed"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var spec []byte

var registerOnce sync.Once

// Spec returns the raw OpenAPI document.
func Spec() []byte {
	return spec
}

// GetSwagger parses the embedded document.
func GetSwagger() (*openapi3.T, error) {
	return openapi3.NewLoader().LoadFromData(spec)
}

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	return string(spec)
}

// RegisterSwagger makes the document available to swag under its default
// name, where the Swagger UI handler reads it. Safe to call more than once.
func RegisterSwagger() {
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{})
	})
}
