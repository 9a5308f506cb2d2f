package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/rs/cors"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig holds the transport settings of the router.
type RouterConfig struct {
	AllowedOrigins []string
}

// NewRouter builds the echo instance serving every route of s.
func NewRouter(ctx context.Context, s *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}
	rawDoc, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.ERROR)

	e.Use(middleware.Recover())
	e.Use(s.observe)
	e.Use(echo.WrapMiddleware(cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}).Handler))

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, rawDoc)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API routes are described by the OpenAPI document and validated against it.
	e.GET("/info/company", s.GetCompanyInfo, validator)
	e.GET("/package/popular", s.GetPopularPackages, validator)
	e.GET("/package/country", s.GetPackagesByCountry, validator)
	e.GET("/package/destination", s.GetPackagesByDestination, validator)
	e.GET("/guide/available", s.GetAvailableGuide, validator)
	e.GET("/hotel/available", s.GetAvailableHotel, validator)
	e.GET("/flight/available", s.GetAvailableFlight, validator)
	e.GET("/restaurant/available", s.GetAlternateRestaurant, validator)
	e.POST("/user/register", s.RegisterUser, validator)
	e.POST("/user/login", s.LoginUser, validator)

	e.GET("/user/orders", s.GetUserPackages, validator, s.BearerAuth)
	e.GET("/order", s.GetOrderByDestination, validator, s.BearerAuth)
	e.POST("/order", s.CreateOrder, validator, s.BearerAuth)
	e.DELETE("/order/cancel", s.CancelOrder, validator, s.BearerAuth)
	e.PUT("/order/guide", s.ReassignGuide, validator, s.BearerAuth)
	e.PUT("/order/hotel", s.ReassignHotel, validator, s.BearerAuth)
	e.PUT("/order/flight", s.ReassignFlight, validator, s.BearerAuth)

	return e, nil
}
