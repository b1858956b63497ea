package http

import (
	"context"
	_ "embed"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yml
var openapiSpec []byte

// LoadOpenAPIDocument parses and validates the embedded API contract.
// Called once at startup so a malformed contract fails fast.
func LoadOpenAPIDocument(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, err
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, err
	}

	return doc, nil
}

// GetOpenAPIDocument handles GET /openapi.json - serves the API contract.
func (s *Server) GetOpenAPIDocument(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.openapiDoc)
}
