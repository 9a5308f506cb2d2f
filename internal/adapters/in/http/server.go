// Package http exposes the booking use cases over HTTP using echo.
//
// Requests are checked against the embedded OpenAPI description before they
// reach a handler. Routes that act on a user's orders require a bearer token
// whose subject is that user.
package http

import (
	"fmt"
	"net/http"

	"trippy/internal/core/application/usecases/commands"
	"trippy/internal/core/application/usecases/queries"
	"trippy/internal/core/domain/model/catalog"
	"trippy/internal/core/domain/model/kernel"
	"trippy/internal/core/domain/services"
	"trippy/internal/pkg/errs"
	"trippy/internal/pkg/logger"
	"trippy/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	tokens   TokenParser
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// NewServer creates a server over the given use cases.
func NewServer(handlers Handlers, tokens TokenParser, m *metrics.Metrics, log logger.Logger) *Server {
	return &Server{
		handlers: handlers,
		tokens:   tokens,
		metrics:  m,
		logger:   log.With("component", "http"),
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createOrderRequest struct {
	Username  string `json:"username"`
	PackageID int64  `json:"package_id"`
}

type reassignRequest struct {
	Username    string `json:"username"`
	Destination string `json:"destination"`
	HotelID     int64  `json:"hotel_id"`
	FlightID    int64  `json:"flight_id"`
}

type loginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type orderCreatedResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

type orderedPackageResponse struct {
	OrderID   string           `json:"order_id"`
	PackageID int64            `json:"package_id"`
	Package   *catalog.Package `json:"package"`
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// GetCompanyInfo handles GET /info/company.
func (s *Server) GetCompanyInfo(c echo.Context) error {
	query, err := queries.NewGetCompanyInfoQuery(c.QueryParam("name"))
	if err != nil {
		return s.respondError(c, err)
	}

	info, err := s.handlers.CompanyInfo.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"info": info})
}

// GetPopularPackages handles GET /package/popular.
func (s *Server) GetPopularPackages(c echo.Context) error {
	var limit *int
	if err := runtime.BindQueryParameter("form", true, false, "limit", c.QueryParams(), &limit); err != nil {
		return s.respondError(c, errs.NewValueIsInvalidErrorWithCause("limit", err))
	}
	exclude, err := bindExclude(c)
	if err != nil {
		return s.respondError(c, err)
	}

	pageSize := 0
	if limit != nil {
		pageSize = *limit
	}

	query, err := queries.NewGetPopularPackagesQuery(pageSize, exclude)
	if err != nil {
		return s.respondError(c, err)
	}

	pkgs, err := s.handlers.PopularPackages.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"packages": pkgs})
}

// GetPackagesByCountry handles GET /package/country.
func (s *Server) GetPackagesByCountry(c echo.Context) error {
	query, err := queries.NewGetPackagesByCountryQuery(c.QueryParam("country"))
	if err != nil {
		return s.respondError(c, err)
	}

	pkgs, err := s.handlers.PackagesByCountry.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"packages": pkgs})
}

// GetPackagesByDestination handles GET /package/destination.
func (s *Server) GetPackagesByDestination(c echo.Context) error {
	query, err := queries.NewGetPackagesByDestinationQuery(c.QueryParam("destination"))
	if err != nil {
		return s.respondError(c, err)
	}

	pkgs, err := s.handlers.PackagesByDestination.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"packages": pkgs})
}

// GetAvailableGuide handles GET /guide/available.
func (s *Server) GetAvailableGuide(c echo.Context) error {
	exclude, err := bindExclude(c)
	if err != nil {
		return s.respondError(c, err)
	}

	guide, err := s.handlers.AvailableGuide.Handle(c.Request().Context(), queries.NewGetAvailableGuideQuery(exclude))
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"guide": guide})
}

// GetAvailableHotel handles GET /hotel/available.
func (s *Server) GetAvailableHotel(c echo.Context) error {
	exclude, err := bindExclude(c)
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewGetAvailableHotelQuery(c.QueryParam("destination"), exclude)
	if err != nil {
		return s.respondError(c, err)
	}

	hotel, err := s.handlers.AvailableHotel.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"hotel": hotel})
}

// GetAvailableFlight handles GET /flight/available.
func (s *Server) GetAvailableFlight(c echo.Context) error {
	exclude, err := bindExclude(c)
	if err != nil {
		return s.respondError(c, err)
	}

	flight, err := s.handlers.AvailableFlight.Handle(c.Request().Context(), queries.NewGetAvailableFlightQuery(exclude))
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"flight": flight})
}

// GetAlternateRestaurant handles GET /restaurant/available.
func (s *Server) GetAlternateRestaurant(c echo.Context) error {
	query, err := queries.NewGetAlternateRestaurantQuery(c.QueryParam("destination"), c.QueryParam("old_restaurant_name"))
	if err != nil {
		return s.respondError(c, err)
	}

	restaurant, err := s.handlers.AlternateRestaurant.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"restaurant": restaurant})
}

// RegisterUser handles POST /user/register.
func (s *Server) RegisterUser(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return s.respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewRegisterUserCommand(req.Username, req.Password)
	if err != nil {
		return s.respondError(c, err)
	}

	if err = s.handlers.RegisterUser.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "user registered"})
}

// LoginUser handles POST /user/login.
func (s *Server) LoginUser(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return s.respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	query, err := queries.NewAuthenticateUserQuery(req.Username, req.Password)
	if err != nil {
		return s.respondError(c, err)
	}

	resp, err := s.handlers.AuthenticateUser.Handle(c.Request().Context(), query)
	if err != nil {
		if statusFor(err) == http.StatusUnauthorized {
			s.metrics.LoginFailures.Inc()
		}
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Message:  "login successful",
		Username: resp.Username,
		Token:    resp.Token,
	})
}

// GetUserPackages handles GET /user/orders.
func (s *Server) GetUserPackages(c echo.Context) error {
	username := c.QueryParam("username")
	if err := authorize(c, username); err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewGetUserPackagesQuery(username)
	if err != nil {
		return s.respondError(c, err)
	}

	rows, err := s.handlers.UserPackages.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	out := make([]orderedPackageResponse, 0, len(rows))
	for _, row := range rows {
		pkg, _ := row.Package.Get()
		out = append(out, orderedPackageResponse{
			OrderID:   row.OrderID.String(),
			PackageID: row.PackageID,
			Package:   pkg,
		})
	}

	return c.JSON(http.StatusOK, out)
}

// GetOrderByDestination handles GET /order.
func (s *Server) GetOrderByDestination(c echo.Context) error {
	username := c.QueryParam("username")
	if err := authorize(c, username); err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewGetOrderByDestinationQuery(username, c.QueryParam("destination"))
	if err != nil {
		return s.respondError(c, err)
	}

	resp, err := s.handlers.OrderByDestination.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// CreateOrder handles POST /order.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return s.respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if err := authorize(c, req.Username); err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), req.Username, req.PackageID)
	if err != nil {
		return s.respondError(c, err)
	}

	o, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	s.metrics.OrdersCreated.Inc()
	return c.JSON(http.StatusCreated, orderCreatedResponse{Message: "order created", OrderID: o.ID().String()})
}

// CancelOrder handles DELETE /order/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	username := c.QueryParam("username")
	if err := authorize(c, username); err != nil {
		return s.respondError(c, err)
	}

	var packageID int64
	if err := runtime.BindQueryParameter("form", true, true, "package_id", c.QueryParams(), &packageID); err != nil {
		return s.respondError(c, errs.NewValueIsInvalidErrorWithCause("package_id", err))
	}

	cmd, err := commands.NewCancelOrderCommand(username, packageID)
	if err != nil {
		return s.respondError(c, err)
	}

	removed, err := s.handlers.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}
	if removed == 0 {
		return s.respondError(c, errs.NewObjectNotFoundError("order", fmt.Sprintf("%s/%d", username, packageID)))
	}

	s.metrics.OrdersCancelled.Add(float64(removed))
	return c.JSON(http.StatusOK, messageResponse{Message: "order cancelled"})
}

// ReassignGuide handles PUT /order/guide.
func (s *Server) ReassignGuide(c echo.Context) error {
	req, err := s.bindReassign(c)
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewReassignGuideCommand(req.Username, req.Destination)
	if err != nil {
		return s.respondError(c, err)
	}

	guide, err := s.handlers.ReassignGuide.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	s.metrics.Reassignments.WithLabelValues(services.ResourceGuide).Inc()
	return c.JSON(http.StatusOK, map[string]any{"guide": guide})
}

// ReassignHotel handles PUT /order/hotel.
func (s *Server) ReassignHotel(c echo.Context) error {
	req, err := s.bindReassign(c)
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewReassignHotelCommand(req.Username, req.Destination, req.HotelID)
	if err != nil {
		return s.respondError(c, err)
	}

	hotel, err := s.handlers.ReassignHotel.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	s.metrics.Reassignments.WithLabelValues(services.ResourceHotel).Inc()
	return c.JSON(http.StatusOK, map[string]any{"hotel": hotel})
}

// ReassignFlight handles PUT /order/flight.
func (s *Server) ReassignFlight(c echo.Context) error {
	req, err := s.bindReassign(c)
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewReassignFlightCommand(req.Username, req.Destination, req.FlightID)
	if err != nil {
		return s.respondError(c, err)
	}

	flight, err := s.handlers.ReassignFlight.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	s.metrics.Reassignments.WithLabelValues(services.ResourceFlight).Inc()
	return c.JSON(http.StatusOK, map[string]any{"flight": flight})
}

func (s *Server) bindReassign(c echo.Context) (reassignRequest, error) {
	var req reassignRequest
	if err := c.Bind(&req); err != nil {
		return reassignRequest{}, errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	if err := authorize(c, req.Username); err != nil {
		return reassignRequest{}, err
	}
	return req, nil
}

// bindExclude reads the optional exploded exclude list (exclude=1&exclude=2).
func bindExclude(c echo.Context) ([]int64, error) {
	var exclude *[]int64
	if err := runtime.BindQueryParameter("form", true, false, "exclude", c.QueryParams(), &exclude); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("exclude", err)
	}
	if exclude == nil {
		return nil, nil
	}
	return *exclude, nil
}
