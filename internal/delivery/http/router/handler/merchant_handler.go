package handler

import (
	"log/slog"
	"net/http"

	"nexprev/internal/delivery/http/middleware"
	"nexprev/internal/delivery/http/response"
	"nexprev/internal/domain/entity"
	domainerrors "nexprev/internal/domain/errors"
	"nexprev/internal/session"
	"nexprev/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MerchantHandler holds dependencies for the merchant back-office handlers.
type MerchantHandler struct {
	uc     usecase.MerchantUsecase
	logger *slog.Logger
}

// NewMerchantHandler is the constructor for MerchantHandler, injected by Fx.
func NewMerchantHandler(uc usecase.MerchantUsecase, logger *slog.Logger) *MerchantHandler {
	return &MerchantHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterMerchantRequest is the merchant registration form.
type RegisterMerchantRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	Password     string `json:"password" validate:"required"`
	BusinessName string `json:"businessName" validate:"required"`
	CNPJ         string `json:"cnpj" validate:"required"`
	Address      string `json:"address" validate:"required"`
	Category     string `json:"category" validate:"required"`
	Description  string `json:"description"`
}

// UpdateMerchantProfileRequest is the merchant profile edit form. Nil fields
// are left untouched.
type UpdateMerchantProfileRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	BusinessName *string `json:"businessName"`
	Address      *string `json:"address"`
	Category     *string `json:"category"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logoUrl"`
}

// LoginPage returns the merchant login page data.
func (h *MerchantHandler) LoginPage(c echo.Context) error {
	return page(c, map[string]any{
		"authenticated": middleware.MerchantStore(c).IsAuthenticated(),
	})
}

// Login establishes a merchant session from a credential.
func (h *MerchantHandler) Login(c echo.Context) error {
	var input LoginRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Dados de login inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	store := middleware.MerchantStore(c)
	if !store.Login(c.Request().Context(), session.Credential{Email: input.Email, Password: input.Password}) {
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	identity, _ := store.Current()

	return response.Success(c, http.StatusOK, identity, loginMessage(store.Degraded()))
}

// RegisterPage returns the merchant registration page data.
func (h *MerchantHandler) RegisterPage(c echo.Context) error {
	return page(c, map[string]any{})
}

// Register creates a merchant account and starts its session.
func (h *MerchantHandler) Register(c echo.Context) error {
	var input RegisterMerchantRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Dados de cadastro inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	store := middleware.MerchantStore(c)
	ok := store.Register(c.Request().Context(), session.Fields{
		"name":         input.Name,
		"email":        input.Email,
		"phone":        input.Phone,
		"businessName": input.BusinessName,
		"cnpj":         input.CNPJ,
		"address":      input.Address,
		"category":     input.Category,
		"description":  input.Description,
	})
	if !ok {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	identity, _ := store.Current()

	return response.Success(c, http.StatusCreated, identity, "Cadastro realizado com sucesso")
}

// Logout ends the merchant session. Always succeeds.
func (h *MerchantHandler) Logout(c echo.Context) error {
	middleware.MerchantStore(c).Logout(c.Request().Context())

	return response.Success(c, http.StatusOK, map[string]string{"redirect": "/merchant/login"}, "Sessão encerrada")
}

// Dashboard returns the merchant home page: identity plus store counters.
func (h *MerchantHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	identity, _ := middleware.MerchantStore(c).Current()

	products, err := h.uc.ListProducts(ctx, identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	offers, err := h.uc.ListOffers(ctx, identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	customers, err := h.uc.ListCustomers(ctx, identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return page(c, map[string]any{
		"merchant":       identity,
		"totalProducts":  len(products),
		"totalOffers":    len(offers),
		"totalCustomers": len(customers),
	})
}

// Products returns the merchant's product catalog.
func (h *MerchantHandler) Products(c echo.Context) error {
	identity, _ := middleware.MerchantStore(c).Current()

	products, err := h.uc.ListProducts(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return page(c, map[string]any{
		"products": products,
	})
}

// NewProductPage returns the product creation form data.
func (h *MerchantHandler) NewProductPage(c echo.Context) error {
	return page(c, map[string]any{})
}

// CreateProduct adds a product to the merchant's catalog.
func (h *MerchantHandler) CreateProduct(c echo.Context) error {
	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Dados do produto inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	identity, _ := middleware.MerchantStore(c).Current()

	product, err := h.uc.CreateProduct(c.Request().Context(), identity.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Produto criado com sucesso")
}

// Offers returns the merchant's store promotions.
func (h *MerchantHandler) Offers(c echo.Context) error {
	identity, _ := middleware.MerchantStore(c).Current()

	offers, err := h.uc.ListOffers(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return page(c, map[string]any{
		"offers": offers,
	})
}

// NewOfferPage returns the promotion creation form data, including the
// products the promotion can attach to.
func (h *MerchantHandler) NewOfferPage(c echo.Context) error {
	identity, _ := middleware.MerchantStore(c).Current()

	products, err := h.uc.ListProducts(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return page(c, map[string]any{
		"products": products,
	})
}

// CreateOffer creates a store promotion.
func (h *MerchantHandler) CreateOffer(c echo.Context) error {
	var input usecase.CreateMerchantOfferInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Dados da oferta inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	identity, _ := middleware.MerchantStore(c).Current()

	offer, err := h.uc.CreateOffer(c.Request().Context(), identity.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, offer, "Oferta criada com sucesso")
}

// Customers returns the merchant-facing customer directory.
func (h *MerchantHandler) Customers(c echo.Context) error {
	identity, _ := middleware.MerchantStore(c).Current()

	customers, err := h.uc.ListCustomers(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return page(c, map[string]any{
		"customers": customers,
	})
}

// SearchUsers filters the customer directory by name or email.
func (h *MerchantHandler) SearchUsers(c echo.Context) error {
	customers, err := h.uc.SearchCustomers(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return page(c, map[string]any{
		"customers": customers,
	})
}

// Profile returns the merchant profile page data.
func (h *MerchantHandler) Profile(c echo.Context) error {
	identity, _ := middleware.MerchantStore(c).Current()

	return page(c, map[string]any{
		"merchant": identity,
	})
}

// UpdateProfile edits the merchant profile through the session store, so the
// persisted session entry stays in sync with what the merchant sees.
func (h *MerchantHandler) UpdateProfile(c echo.Context) error {
	var input UpdateMerchantProfileRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Dados do perfil inválidos")
	}

	store := middleware.MerchantStore(c)
	ok := store.Mutate(c.Request().Context(), func(m *entity.MerchantIdentity) {
		if input.Name != nil {
			m.Name = *input.Name
		}
		if input.Phone != nil {
			m.Phone = *input.Phone
		}
		if input.BusinessName != nil {
			m.BusinessName = *input.BusinessName
		}
		if input.Address != nil {
			m.Address = *input.Address
		}
		if input.Category != nil {
			m.Category = *input.Category
		}
		if input.Description != nil {
			m.Description = *input.Description
		}
		if input.LogoURL != nil {
			m.LogoURL = *input.LogoURL
		}
	})
	if !ok {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	identity, _ := store.Current()

	return response.Success(c, http.StatusOK, identity, "Perfil atualizado com sucesso")
}
