// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"nexprev/internal/delivery/http/middleware"
	"nexprev/internal/delivery/http/response"
	"nexprev/internal/delivery/http/shell"
	domainerrors "nexprev/internal/domain/errors"
	"nexprev/internal/session"
	"nexprev/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for the customer-facing handlers.
type CustomerHandler struct {
	catalog  usecase.CatalogUsecase
	referral usecase.ReferralUsecase
	logger   *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(catalog usecase.CatalogUsecase, referral usecase.ReferralUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		catalog:  catalog,
		referral: referral,
		logger:   logger,
	}
}

// LoginRequest is the credential form for every role login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterCustomerRequest is the customer registration form.
type RegisterCustomerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginPage returns the customer login page data.
func (h *CustomerHandler) LoginPage(c echo.Context) error {
	return page(c, map[string]any{
		"authenticated": middleware.CustomerStore(c).IsAuthenticated(),
	})
}

// Login establishes a customer session from a credential.
func (h *CustomerHandler) Login(c echo.Context) error {
	var input LoginRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Dados de login inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	store := middleware.CustomerStore(c)
	if !store.Login(c.Request().Context(), session.Credential{Email: input.Email, Password: input.Password}) {
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	identity, _ := store.Current()

	return response.Success(c, http.StatusOK, identity, loginMessage(store.Degraded()))
}

// RegisterPage returns the customer registration page data.
func (h *CustomerHandler) RegisterPage(c echo.Context) error {
	return page(c, map[string]any{
		"referralCode": c.QueryParam("ref"),
	})
}

// Register creates a customer account and starts its session.
func (h *CustomerHandler) Register(c echo.Context) error {
	var input RegisterCustomerRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Dados de cadastro inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	store := middleware.CustomerStore(c)
	ok := store.Register(c.Request().Context(), session.Fields{
		"name":  input.Name,
		"email": input.Email,
		"phone": input.Phone,
	})
	if !ok {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	identity, _ := store.Current()

	return response.Success(c, http.StatusCreated, identity, "Cadastro realizado com sucesso")
}

// Logout ends the customer session. Always succeeds.
func (h *CustomerHandler) Logout(c echo.Context) error {
	middleware.CustomerStore(c).Logout(c.Request().Context())

	return response.Success(c, http.StatusOK, map[string]string{"redirect": "/login"}, "Sessão encerrada")
}

// Dashboard returns the customer home page: identity plus current offers.
func (h *CustomerHandler) Dashboard(c echo.Context) error {
	identity, _ := middleware.CustomerStore(c).Current()

	offers, err := h.catalog.ListOffers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return page(c, map[string]any{
		"customer": identity,
		"offers":   offers,
	})
}

// Payment returns the payment page data: the spendable balance.
func (h *CustomerHandler) Payment(c echo.Context) error {
	identity, _ := middleware.CustomerStore(c).Current()

	return page(c, map[string]any{
		"cashbackBalance": identity.CashbackBalance,
	})
}

// Transactions returns the customer's cashback statement.
func (h *CustomerHandler) Transactions(c echo.Context) error {
	identity, _ := middleware.CustomerStore(c).Current()

	txs, err := h.catalog.ListTransactions(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return page(c, map[string]any{
		"transactions": txs,
	})
}

// Partners returns the partner directory.
func (h *CustomerHandler) Partners(c echo.Context) error {
	partners, err := h.catalog.ListPartners(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return page(c, map[string]any{
		"partners": partners,
	})
}

// PartnerDetail returns one partner.
func (h *CustomerHandler) PartnerDetail(c echo.Context) error {
	partner, err := h.catalog.GetPartner(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return page(c, map[string]any{
		"partner": partner,
	})
}

// OfferDetail returns one promotional offer with its partner.
func (h *CustomerHandler) OfferDetail(c echo.Context) error {
	ctx := c.Request().Context()

	offer, err := h.catalog.GetOffer(ctx, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	partner, err := h.catalog.GetPartner(ctx, offer.PartnerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return page(c, map[string]any{
		"offer":   offer,
		"partner": partner,
	})
}

// Profile returns the customer profile page data.
func (h *CustomerHandler) Profile(c echo.Context) error {
	identity, _ := middleware.CustomerStore(c).Current()

	return page(c, map[string]any{
		"customer": identity,
	})
}

// Referral returns the customer's referral code and share link.
func (h *CustomerHandler) Referral(c echo.Context) error {
	identity, _ := middleware.CustomerStore(c).Current()

	return page(c, map[string]any{
		"referralCode": identity.ReferralCode,
	})
}

// ReferralQR renders the referral code as a QR code PNG.
func (h *CustomerHandler) ReferralQR(c echo.Context) error {
	identity, _ := middleware.CustomerStore(c).Current()

	png, err := h.referral.ShareQR(c.Request().Context(), identity.ReferralCode)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// loginMessage reports login success, flagging when the session could not
// be persisted and only lives in the in-memory fallback.
func loginMessage(degraded bool) string {
	if degraded {
		return domainerrors.ErrStorageUnavailable.Message()
	}

	return "Login realizado com sucesso"
}

// page wraps page data in the unified envelope with chrome metadata for the
// requested path.
func page(c echo.Context, data map[string]any) error {
	data["chrome"] = shell.ChromeFor(c.Request().URL.Path, middleware.CustomerStore(c).IsAuthenticated())

	return response.Success(c, http.StatusOK, data, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
