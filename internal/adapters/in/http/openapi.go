package http

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"deliverydesk/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPIDocument []byte

var registerDocOnce sync.Once

func init() {
	openapi3.SchemaErrorDetailsDisabled = true
}

// GetOpenAPI parses and validates the embedded API description.
func GetOpenAPI() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// swaggerDoc serves the document to echo-swagger through the swag registry.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

// registerSwaggerDoc publishes doc under swag.Name once per process.
func registerSwaggerDoc(doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode openapi document: %w", err)
	}
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(data)})
	})
	return nil
}

// openAPIValidator rejects requests that do not match doc. Requests for
// routes the document does not describe pass through to echo.
func openAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	options := &openapi3filter.Options{MultiError: false}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				var routeErr *routers.RouteError
				if errors.As(err, &routeErr) {
					return next(c)
				}
				return err
			}

			if err = limitBody(req); err != nil {
				return err
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return errs.NewValueIsInvalidErrorWithCause("request", err)
			}
			return next(c)
		}
	}, nil
}

// limitBody buffers the request body, rejecting anything above
// maxImportBytes before the validator reads it.
func limitBody(req *http.Request) error {
	if req.Body == nil || req.Body == http.NoBody {
		return nil
	}
	body := req.Body
	defer func() { _ = body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(body, maxImportBytes+1))
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	if len(raw) > maxImportBytes {
		return errs.NewValueIsOutOfRangeError("request body size", len(raw), 1, maxImportBytes)
	}
	req.Body = io.NopCloser(bytes.NewReader(raw))
	req.ContentLength = int64(len(raw))
	return nil
}
