package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/bagaskara/polisku/app/controllers"
	"github.com/bagaskara/polisku/internal/pkg/env"
	"github.com/bagaskara/polisku/internal/pkg/middleware"
	"github.com/bagaskara/polisku/internal/pkg/session"
)

type HttpRouter struct {
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))

	// Session-gated routing: anonymous users land on the auth view,
	// authenticated users on the policy management view.
	group.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/policies", fiber.StatusSeeOther)
	})

	// Auth
	group.Get("/login", controllers.HandleAuthLogin)
	group.Post("/login", controllers.HandleAuthLogin)
	group.Get("/register", controllers.HandleAuthRegister)
	group.Post("/register", controllers.HandleAuthRegister)
	group.Post("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)

	// Policy management
	group.Get("/policies", middleware.RequireAuth, controllers.HandlePolicyIndex)
	group.Post("/policies", middleware.RequireAuth, controllers.HandlePolicyStore)
	group.Get("/policies/edit/:policy_number", middleware.RequireAuth, controllers.HandlePolicyEdit)
	group.Post("/policies/update/:policy_number", middleware.RequireAuth, controllers.HandlePolicyUpdate)
	group.Post("/policies/delete/:policy_number", middleware.RequireAuth, controllers.HandlePolicyDelete)
}
