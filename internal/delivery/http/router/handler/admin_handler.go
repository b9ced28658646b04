package handler

import (
	"log/slog"
	"net/http"

	"nexprev/internal/delivery/http/middleware"
	"nexprev/internal/delivery/http/response"
	domainerrors "nexprev/internal/domain/errors"
	"nexprev/internal/session"
	"nexprev/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the platform administration handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// LoginPage returns the admin login page data.
func (h *AdminHandler) LoginPage(c echo.Context) error {
	return page(c, map[string]any{
		"authenticated": middleware.AdminStore(c).IsAuthenticated(),
	})
}

// Login establishes an admin session from a credential. Admin accounts have
// no self-service registration.
func (h *AdminHandler) Login(c echo.Context) error {
	var input LoginRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Dados de login inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	store := middleware.AdminStore(c)
	if !store.Login(c.Request().Context(), session.Credential{Email: input.Email, Password: input.Password}) {
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	identity, _ := store.Current()

	return response.Success(c, http.StatusOK, identity, loginMessage(store.Degraded()))
}

// Register refuses: admin accounts are provisioned out of band, never
// self-registered.
func (h *AdminHandler) Register(c echo.Context) error {
	return errors.WithStack(domainerrors.ErrRegistrationUnsupported)
}

// Logout ends the admin session. Always succeeds.
func (h *AdminHandler) Logout(c echo.Context) error {
	middleware.AdminStore(c).Logout(c.Request().Context())

	return response.Success(c, http.StatusOK, map[string]string{"redirect": "/admin/login"}, "Sessão encerrada")
}

// Dashboard returns the platform-wide counters.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	identity, _ := middleware.AdminStore(c).Current()

	stats, err := h.uc.GetDashboardStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return page(c, map[string]any{
		"admin": identity,
		"stats": stats,
	})
}
