package http

import (
	"log/slog"
	"net/http"
	"sync"

	"fooddelivery/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var registerSwaggerOnce sync.Once

// swaggerDoc serves the embedded OpenAPI document to the Swagger UI.
type swaggerDoc struct {
	swagger *openapi3.T
}

func (d swaggerDoc) ReadDoc() string {
	data, err := d.swagger.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(data)
}

// NewRouter builds the echo instance serving server: API routes validated against
// the OpenAPI document, /health and the Swagger UI under /swagger/.
func NewRouter(server servers.ServerInterface, logger *slog.Logger) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := OpenAPIValidator(swagger)
	if err != nil {
		return nil, err
	}

	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{swagger: swagger})
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}
