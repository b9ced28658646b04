package middleware

import (
	"net/http"

	"nexprev/internal/domain/entity"
	"nexprev/internal/session"

	"github.com/labstack/echo/v4"
)

// GuardMiddleware protects role areas. Each guard consults only its own
// role's session store; an active customer session never opens a merchant or
// admin route.
type GuardMiddleware struct{}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware() *GuardMiddleware {
	return &GuardMiddleware{}
}

// RequireCustomer redirects unauthenticated requests to the customer login.
func (m *GuardMiddleware) RequireCustomer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return decide(c, next, CustomerStore(c).State(), entity.RoleCustomer.LoginPath())
	}
}

// RequireMerchant redirects unauthenticated requests to the merchant login.
func (m *GuardMiddleware) RequireMerchant(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return decide(c, next, MerchantStore(c).State(), entity.RoleMerchant.LoginPath())
	}
}

// RequireAdmin redirects unauthenticated requests to the admin login.
func (m *GuardMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return decide(c, next, AdminStore(c).State(), entity.RoleAdmin.LoginPath())
	}
}

func decide(c echo.Context, next echo.HandlerFunc, st session.State, loginPath string) error {
	switch d := session.Authorize(st, loginPath); d.Kind {
	case session.DecisionAllow:
		return next(c)
	case session.DecisionRedirect:
		return c.Redirect(http.StatusFound, d.RedirectPath)
	default:
		// Sessions are restored by the session middleware before guards run;
		// a pending decision renders a neutral retry instead of content or a
		// redirect.
		c.Response().Header().Set("Retry-After", "1")

		return echo.NewHTTPError(http.StatusServiceUnavailable, "session restoration pending")
	}
}
