package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/jhoicas/sgi-guatemart/internal/application/auth"
	"github.com/jhoicas/sgi-guatemart/internal/application/usecase"
	"github.com/jhoicas/sgi-guatemart/internal/infrastructure/barcode"
	"github.com/jhoicas/sgi-guatemart/internal/infrastructure/pdf"
	"github.com/jhoicas/sgi-guatemart/internal/infrastructure/postgres"
	apphttp "github.com/jhoicas/sgi-guatemart/internal/interfaces/http"
	"github.com/jhoicas/sgi-guatemart/pkg/observability"
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Inicia el servidor web",
		RunE:  runServe,
	}
	serveMigrate bool
)

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "aplicar migraciones pendientes antes de iniciar")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	log.Info().Str("env", cfg.App.Env).Msg("iniciando aplicación")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	pool, err := postgres.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if serveMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	db := postgres.NewDatabase(pool, postgres.WithObserver(metrics.ObserveDB))
	userRepo := postgres.NewUserRepository(db)
	productRepo := postgres.NewProductRepository(db)
	movementRepo := postgres.NewMovementRepository(db)
	catalogRepo := postgres.NewCatalogRepository(db)
	alertRepo := postgres.NewAlertRepository(db)
	dashboardRepo := postgres.NewDashboardRepository(db)

	lookup := barcode.NewOpenFoodFacts(cfg.Barcode.BaseURL, cfg.Barcode.Timeout, log.Component("barcode"),
		barcode.WithObserver(metrics.RecordBarcodeLookup))
	report := pdf.NewMarotoAlertReport(cfg.App.Name)

	authUC := auth.NewAuthUseCase(userRepo, auth.SessionConfig{
		Secret:   cfg.Session.SecretKey,
		Issuer:   cfg.Session.Issuer,
		Lifetime: cfg.Session.Lifetime,
	})

	app := apphttp.NewApp(cfg.App.Name, log)
	apphttp.Router(app, apphttp.RouterDeps{
		AppName:     cfg.App.Name,
		AuthUC:      authUC,
		DashboardUC: usecase.NewDashboardUseCase(dashboardRepo, alertRepo),
		ProductUC:   usecase.NewProductUseCase(productRepo, movementRepo, catalogRepo),
		BarcodeUC:   usecase.NewBarcodeUseCase(lookup),
		MovementUC:  usecase.NewMovementUseCase(movementRepo, productRepo, catalogRepo),
		AlertUC:     usecase.NewAlertUseCase(alertRepo, report),
		UserUC:      usecase.NewUserUseCase(userRepo, catalogRepo),
		Cookies: apphttp.CookieConfig{
			SessionName: cfg.Session.CookieName,
			Secure:      cfg.App.IsProduction(),
			Lifetime:    cfg.Session.Lifetime,
		},
		DB:      db,
		Pinger:  db,
		Metrics: metrics,
		Logger:  log,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}
