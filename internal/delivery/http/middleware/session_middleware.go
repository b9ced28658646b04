// Package middleware contains the HTTP middlewares for the delivery layer.
package middleware

import (
	"log/slog"
	"net/http"

	"nexprev/config"
	"nexprev/internal/domain/entity"
	"nexprev/internal/session"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	ctxKeyCustomerStore = "session.customer"
	ctxKeyMerchantStore = "session.merchant"
	ctxKeyAdminStore    = "session.admin"
)

// SessionMiddleware binds the three role session stores to every request.
// Each role rides its own cookie; a missing cookie gets a fresh session id.
// Stores are restored before any handler or guard runs, so downstream code
// never observes a loading session.
type SessionMiddleware struct {
	cfg             *config.Config
	customerManager *session.Manager[entity.CustomerIdentity]
	merchantManager *session.Manager[entity.MerchantIdentity]
	adminManager    *session.Manager[entity.AdminIdentity]
	logger          *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(
	cfg *config.Config,
	customerManager *session.Manager[entity.CustomerIdentity],
	merchantManager *session.Manager[entity.MerchantIdentity],
	adminManager *session.Manager[entity.AdminIdentity],
	logger *slog.Logger,
) *SessionMiddleware {
	return &SessionMiddleware{
		cfg:             cfg,
		customerManager: customerManager,
		merchantManager: merchantManager,
		adminManager:    adminManager,
		logger:          logger,
	}
}

// Attach restores the three role sessions and stashes them on the context.
func (m *SessionMiddleware) Attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		customerStore := m.customerManager.Store(m.sessionID(c, m.cfg.Session.CustomerCookie))
		customerStore.Restore(ctx)
		c.Set(ctxKeyCustomerStore, customerStore)

		merchantStore := m.merchantManager.Store(m.sessionID(c, m.cfg.Session.MerchantCookie))
		merchantStore.Restore(ctx)
		c.Set(ctxKeyMerchantStore, merchantStore)

		adminStore := m.adminManager.Store(m.sessionID(c, m.cfg.Session.AdminCookie))
		adminStore.Restore(ctx)
		c.Set(ctxKeyAdminStore, adminStore)

		return next(c)
	}
}

// sessionID reads the role cookie, minting and setting a new session id when
// the cookie is absent or empty.
func (m *SessionMiddleware) sessionID(c echo.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sid := uuid.New().String()
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(m.cfg.Session.CookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sid
}

// CustomerStore returns the request's customer session store.
func CustomerStore(c echo.Context) *session.Store[entity.CustomerIdentity] {
	store, _ := c.Get(ctxKeyCustomerStore).(*session.Store[entity.CustomerIdentity])

	return store
}

// MerchantStore returns the request's merchant session store.
func MerchantStore(c echo.Context) *session.Store[entity.MerchantIdentity] {
	store, _ := c.Get(ctxKeyMerchantStore).(*session.Store[entity.MerchantIdentity])

	return store
}

// AdminStore returns the request's admin session store.
func AdminStore(c echo.Context) *session.Store[entity.AdminIdentity] {
	store, _ := c.Get(ctxKeyAdminStore).(*session.Store[entity.AdminIdentity])

	return store
}
