package http

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// invalidBodyMessageExtension names the operation extension holding the error
// message returned when a request body does not match its schema.
const invalidBodyMessageExtension = "x-invalid-body-message"

// GetSwagger parses the embedded OpenAPI document describing the HTTP API.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}
	return doc, nil
}
