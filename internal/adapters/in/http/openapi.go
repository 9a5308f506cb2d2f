package http

import (
	"context"
	_ "embed"
	"errors"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// LoadOpenAPI parses and validates the embedded API description.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, err
	}
	return doc, nil
}

// RequestValidator rejects requests that do not match the API description.
// Requests the description has no operation for pass through untouched.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				var routeErr *routers.RouteError
				if errors.As(findErr, &routeErr) {
					return next(c)
				}
				return c.JSON(http.StatusBadRequest, errorResponse{Error: findErr.Error()})
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return c.JSON(http.StatusBadRequest, errorResponse{Error: validateErr.Error()})
			}

			return next(c)
		}
	}, nil
}

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var registerSwagger sync.Once

// registerSwaggerDoc publishes doc to swag so the swagger UI can serve it.
// swag keeps a process-wide registry, so only the first document is kept.
func registerSwaggerDoc(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	registerSwagger.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	})
	return nil
}
