// Package http is the storefront's HTTP adapter: it turns form posts and page
// requests into use case calls and renders the results as HTML.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"storefront/internal/core/application/auth"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Pages renders the HTML views.
type Pages interface {
	ConfirmationPage(data ports.ConfirmationData) string
	TrackingPage(o queries.GetOrderQueryResponse) string
	AdminPage(orders []queries.ListOrdersQueryResponse) string
}

// CheckoutForm is the body of POST /checkout.
type CheckoutForm struct {
	Name  string `form:"name"  validate:"required"`
	Beans string `form:"beans" validate:"required"`
	Email string `form:"email" validate:"required,email"`
	SSN   string `form:"ssn"   validate:"required"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	checkoutHandler     commands.CheckoutCommandHandler
	changeStatusHandler commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler  commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler

	pages  Pages
	gate   *auth.AdminGate
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	pages Pages,
	gate *auth.AdminGate,
	logger *slog.Logger,
) *Server {
	return &Server{
		checkoutHandler:     checkoutHandler,
		changeStatusHandler: changeStatusHandler,
		deleteOrderHandler:  deleteOrderHandler,
		getOrderHandler:     getOrderHandler,
		listOrdersHandler:   listOrdersHandler,
		pages:               pages,
		gate:                gate,
		logger:              logger.With("component", "http"),
	}
}

// Checkout handles POST /checkout - places an order and shows the confirmation.
func (s *Server) Checkout(c echo.Context) error {
	var form CheckoutForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form").SetInternal(err)
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form: "+err.Error()).SetInternal(err)
	}

	cmd, err := commands.NewCheckoutCommand(form.Name, form.Beans, form.Email, form.SSN)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid order: "+err.Error()).SetInternal(err)
	}

	result, err := s.checkoutHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.internalError(c, "checkout failed", err)
	}

	return c.HTML(http.StatusOK, s.pages.ConfirmationPage(result.Confirmation))
}

// GetTracking handles GET /tracking/:code - shows the order's shipment status.
func (s *Server) GetTracking(c echo.Context) error {
	var code string
	if err := runtime.BindStyledParameterWithOptions("simple", "code", c.Param("code"), &code,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true},
	); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter code").SetInternal(err)
	}

	resp, err := s.getOrderHandler.Handle(c.Request().Context(), queries.NewGetOrderQuery(code))
	if errors.Is(err, errs.ErrObjectNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return s.internalError(c, "tracking lookup failed", err)
	}

	return c.HTML(http.StatusOK, s.pages.TrackingPage(resp))
}

// GetAdmin handles GET /admin - applies the requested fore, back and del
// actions in that order, then shows every order.
func (s *Server) GetAdmin(c echo.Context) error {
	ctx := c.Request().Context()

	for _, action := range []struct {
		param      string
		transition order.Transition
	}{
		{"fore", order.Advance},
		{"back", order.Revert},
	} {
		code := c.QueryParam(action.param)
		if code == "" {
			continue
		}

		cmd, err := commands.NewChangeOrderStatusCommand(code, action.transition)
		if err == nil {
			err = s.changeStatusHandler.Handle(ctx, cmd)
		}
		if err != nil {
			return s.actionError(c, code, err)
		}
	}

	if code := c.QueryParam("del"); code != "" {
		cmd, err := commands.NewDeleteOrderCommand(code)
		if err == nil {
			err = s.deleteOrderHandler.Handle(ctx, cmd)
		}
		if err != nil {
			return s.actionError(c, code, err)
		}
	}

	orders, err := s.listOrdersHandler.Handle(ctx, queries.NewListOrdersQuery())
	if err != nil {
		return s.internalError(c, "listing orders failed", err)
	}

	return c.HTML(http.StatusOK, s.pages.AdminPage(orders))
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// RequireAdmin lets the request through only with the admin password.
func (s *Server) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := s.gate.Authorize(c.Request().Header.Get(echo.HeaderAuthorization))
		switch {
		case err == nil:
			return next(c)
		case errors.Is(err, auth.ErrUnauthenticated):
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="User Visible Realm"`)
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		default:
			s.logger.WarnContext(c.Request().Context(), "admin access denied", "remote_ip", c.RealIP())
			return echo.NewHTTPError(http.StatusForbidden, "Invalid Admin Password")
		}
	}
}

// actionError maps admin action failures. A malformed or unknown code is a 404.
func (s *Server) actionError(c echo.Context, code string, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) || errs.IsValidation(err) {
		return echo.NewHTTPError(http.StatusNotFound, "Order not found: "+code)
	}
	return s.internalError(c, "admin action failed", err)
}

func (s *Server) internalError(c echo.Context, msg string, err error) error {
	s.logger.ErrorContext(c.Request().Context(), msg, "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error").SetInternal(err)
}
