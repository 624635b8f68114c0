package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/sgi-guatemart/internal/domain/rbac"
	"github.com/jhoicas/sgi-guatemart/internal/infrastructure/postgres"
	"github.com/jhoicas/sgi-guatemart/pkg/logger"
	"github.com/jhoicas/sgi-guatemart/pkg/observability"
)

// RouterDeps dependencias para el router. DB, Pinger, Metrics y Logger son opcionales.
type RouterDeps struct {
	AppName     string
	AuthUC      authService
	DashboardUC dashboardService
	ProductUC   productService
	BarcodeUC   barcodeService
	MovementUC  movementService
	AlertUC     alertService
	UserUC      userService
	Cookies     CookieConfig
	DB          *postgres.Database
	Pinger      Pinger
	Metrics     *observability.Metrics
	Logger      *logger.Logger
}

// Router registra middlewares y rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	metrics := deps.Metrics
	if metrics == nil {
		metrics = observability.NewMetrics(prometheus.NewRegistry())
	}
	r := &renderer{appName: deps.AppName, cookies: deps.Cookies, log: log}

	app.Use(RequestLogger(log.Component("http")))
	app.Use(Metrics(metrics))
	if deps.DB != nil {
		app.Use(DBScope(deps.DB))
	}
	app.Use(LoadIdentity(deps.AuthUC, deps.Cookies))

	// Públicas
	app.Get("/health", health(deps.Pinger, deps.AppName))
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	app.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/auth/login") })

	authHandler := newAuthHandler(r, deps.AuthUC, metrics)
	authGroup := app.Group("/auth")
	authGroup.Get("/login", authHandler.LoginForm)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/logout", authHandler.Logout)

	// Dashboard
	dashboardHandler := newDashboardHandler(r, deps.DashboardUC)
	app.Get("/dashboard/", r.Require(), dashboardHandler.Index)

	// Productos
	productHandler := newProductHandler(r, deps.ProductUC, deps.BarcodeUC)
	products := app.Group("/productos")
	products.Get("/", r.Require(), productHandler.List)
	products.Get("/crear", r.Require(rbac.CapCreateProduct), productHandler.CreateForm)
	products.Post("/crear", r.Require(rbac.CapCreateProduct), productHandler.Create)
	products.Post("/buscar-barcode", RequireJSON(), productHandler.SearchBarcode)
	products.Get("/:id<int>/ver", r.Require(), productHandler.View)
	products.Get("/:id<int>/editar", r.Require(rbac.CapEditProduct), productHandler.EditForm)
	products.Post("/:id<int>/editar", r.Require(rbac.CapEditProduct), productHandler.Update)
	products.Post("/:id<int>/eliminar", r.Require(rbac.CapDeleteProduct), productHandler.Delete)

	// Movimientos y alertas
	movementHandler := newMovementHandler(r, deps.MovementUC, deps.AlertUC, metrics)
	movements := app.Group("/movimientos")
	movements.Get("/", r.Require(), movementHandler.List)
	movements.Get("/registrar", r.Require(rbac.CapRegisterMovement), movementHandler.RegisterForm)
	movements.Post("/registrar", r.Require(rbac.CapRegisterMovement), movementHandler.Register)
	movements.Get("/alertas", r.Require(), movementHandler.Alerts)
	movements.Get("/alertas/reporte.pdf", r.Require(), movementHandler.Report)
	movements.Post("/alertas/:id<int>/resolver", r.Require(rbac.CapResolveAlert), movementHandler.Resolve)

	// Usuarios (solo administración)
	userHandler := newUserHandler(r, deps.UserUC)
	users := app.Group("/usuarios")
	manage := r.Require(rbac.CapManageUsers)
	users.Get("/", manage, userHandler.List)
	users.Get("/crear", manage, userHandler.CreateForm)
	users.Post("/crear", manage, userHandler.Create)
	users.Get("/:id<int>/ver", manage, userHandler.View)
	users.Get("/:id<int>/editar", manage, userHandler.EditForm)
	users.Post("/:id<int>/editar", manage, userHandler.Update)
	users.Get("/:id<int>/cambiar-password", manage, userHandler.PasswordForm)
	users.Post("/:id<int>/cambiar-password", manage, userHandler.ChangePassword)
	users.Post("/:id<int>/toggle-estado", manage, userHandler.ToggleActive)
}

// health GET /health. Sin Pinger solo reporta que el proceso responde.
func health(p Pinger, appName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if p == nil {
			return c.JSON(fiber.Map{"status": "ok", "service": appName})
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":   "error",
				"service":  appName,
				"database": "unreachable",
			})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": appName, "database": "ok"})
	}
}
