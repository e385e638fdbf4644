package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dkravets/unit-roster/internal"
	"github.com/dkravets/unit-roster/internal/analytics"
	analyticsStore "github.com/dkravets/unit-roster/internal/analytics/postgres"
	"github.com/dkravets/unit-roster/internal/auth"
	authStore "github.com/dkravets/unit-roster/internal/auth/postgres"
	"github.com/dkravets/unit-roster/internal/dutytype"
	dutytypeStore "github.com/dkravets/unit-roster/internal/dutytype/postgres"
	"github.com/dkravets/unit-roster/internal/equipment"
	equipmentStore "github.com/dkravets/unit-roster/internal/equipment/postgres"
	"github.com/dkravets/unit-roster/internal/personnel"
	personnelStore "github.com/dkravets/unit-roster/internal/personnel/postgres"
	"github.com/dkravets/unit-roster/internal/plan"
	planStore "github.com/dkravets/unit-roster/internal/plan/postgres"
	"github.com/dkravets/unit-roster/internal/schedule"
	scheduleStore "github.com/dkravets/unit-roster/internal/schedule/postgres"
	"github.com/dkravets/unit-roster/internal/transport"
	"github.com/dkravets/unit-roster/internal/transport/rest"
	"github.com/dkravets/unit-roster/internal/vacation"
	vacationStore "github.com/dkravets/unit-roster/internal/vacation/postgres"
	"github.com/dkravets/unit-roster/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Gorm   *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	registerRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func registerRoutes(deps *Dependencies) {
	lg := deps.Logger
	baseHandler := transport.NewBaseHandler(lg)

	hasher := auth.NewPasswordHasher(deps.Config.Security.PBKDF2Iterations)
	authService := auth.NewService(
		authStore.NewUserRepository(deps.Gorm),
		authStore.NewSessionRepository(deps.Gorm),
		hasher,
		deps.Config.Security.SessionTTL,
		lg,
	)

	personnelRepo := personnelStore.NewPersonnelRepository(deps.Gorm)
	planRepo := planStore.NewPlanRepository(deps.Gorm)

	handlers := rest.Handlers{
		Auth:      auth.NewHandler(authService),
		Personnel: personnel.NewHandler(baseHandler, personnel.NewService(personnelRepo, lg)),
		DutyType:  dutytype.NewHandler(baseHandler, dutytype.NewService(dutytypeStore.NewDutyTypeRepository(deps.Gorm), lg)),
		Equipment: equipment.NewHandler(baseHandler, equipment.NewService(equipmentStore.NewEquipmentRepository(deps.Gorm), lg)),
		Schedule:  schedule.NewHandler(baseHandler, schedule.NewService(scheduleStore.NewScheduleRepository(deps.Gorm), lg)),
		Plan:      plan.NewHandler(baseHandler, plan.NewService(planRepo, lg)),
		Vacation:  vacation.NewHandler(baseHandler, vacation.NewService(vacationStore.NewVacationRepository(deps.Gorm), lg)),
		Analytics: analytics.NewHandler(baseHandler, analytics.NewService(
			analyticsStore.NewAnalyticsRepository(deps.Gorm), personnelRepo, planRepo, lg)),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, handlers, deps.Config.Server.AllowedOrigins, lg)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.LoggerWrapper(),
		DB:     db,
		Gorm:   gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB opens and verifies the pooled connection.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm wraps the existing pool. TranslateError lets repositories match
// unique and foreign-key violations portably.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{
		TranslateError: true,
	})
}
