package bootstrap

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/avolkov/hrdesk/internal/application/auth"
	"github.com/avolkov/hrdesk/internal/application/hr"
	"github.com/avolkov/hrdesk/internal/config"
	"github.com/avolkov/hrdesk/internal/infrastructure/db/postgres"
	"github.com/avolkov/hrdesk/internal/infrastructure/memory"
	"github.com/avolkov/hrdesk/internal/infrastructure/security"
	"github.com/avolkov/hrdesk/internal/logger"
	http_handlers "github.com/avolkov/hrdesk/internal/transport/http/handlers"
	"github.com/avolkov/hrdesk/internal/transport/http/middleware"
	"github.com/avolkov/hrdesk/internal/transport/http/response"
	"github.com/avolkov/hrdesk/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing.
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	// OpenStores connects storage and returns the repository set plus a
	// close function. The default connects postgres and runs migrations;
	// tests swap in the in-memory set.
	OpenStores func(cfg *config.Config) (Stores, func(), error)

	NewRouter func(router.Deps) (http.Handler, error)
}

// UserStore is the users table seen from both sides: credential store for
// the auth core, employee directory for HR.
type UserStore interface {
	auth.UserRepo
	hr.EmployeeRepo
}

type Stores struct {
	Users         UserStore
	Departments   hr.DepartmentRepo
	Leaves        hr.LeaveRepo
	Announcements hr.AnnouncementRepo

	// DB is nil when storage is in-memory; readiness then always passes.
	DB *sql.DB
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) storage
	stores, closeStores, err := deps.OpenStores(cfg)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){closeStores}

	// 2) security
	logger.Logger.Info().Str("issuer", cfg.JWTIssuer).Msg("initializing jwt signer")
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)

	// 3) services
	authSvc := auth.NewService(stores.Users, hasher, signer, auth.Config{
		TokenTTL: cfg.TokenTTL,
	})
	hrSvc := hr.NewService(stores.Users, authSvc, stores.Departments, stores.Leaves, stores.Announcements)

	// 4) handlers + middleware
	authH := http_handlers.NewAuthHandler(authSvc)
	employeesH := http_handlers.NewEmployeeHandler(hrSvc)
	departmentsH := http_handlers.NewDepartmentHandler(hrSvc)
	leavesH := http_handlers.NewLeaveHandler(hrSvc)
	announcementsH := http_handlers.NewAnnouncementHandler(hrSvc)

	healthH := http_handlers.NewHealthHandler(stores.DB)

	authMW := middleware.Auth(signer, response.WriteError)
	adminMW := middleware.RequireAdmin(response.WriteError)

	// 5) router
	mux, err := deps.NewRouter(router.Deps{
		Health:        healthH,
		Auth:          authH,
		Employees:     employeesH,
		Departments:   departmentsH,
		Leaves:        leavesH,
		Announcements: announcementsH,
		AuthMW:        authMW,
		AdminMW:       adminMW,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 6) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

func runCleanup(fns []func()) {
	// LIFO, mirroring defer semantics
	for i := len(fns) - 1; i >= 0; i-- {
		if fns[i] != nil {
			fns[i]()
		}
	}
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		OpenStores: func(cfg *config.Config) (Stores, func(), error) {
			// DB_ADDR=memory runs without postgres, for local development.
			if cfg.DBAddr == "memory" {
				return OpenMemoryStores(cfg)
			}
			return openPostgresStores(cfg)
		},
		NewRouter: router.New,
	}
}

func openPostgresStores(cfg *config.Config) (Stores, func(), error) {
	db, err := config.NewDB(cfg.DBAddr, cfg.DBDebug)
	if err != nil {
		return Stores{}, nil, err
	}

	if err := postgres.RunMigrations(cfg.DBAddr); err != nil {
		_ = db.Close()
		return Stores{}, nil, err
	}

	return Stores{
		Users:         postgres.NewUserRepo(db),
		Departments:   postgres.NewDepartmentRepo(db),
		Leaves:        postgres.NewLeaveRepo(db),
		Announcements: postgres.NewAnnouncementRepo(db),
		DB:            db,
	}, func() { _ = db.Close() }, nil
}

// OpenMemoryStores is the storage set for local development without a
// database. Dev accounts are seeded so the API is usable immediately.
func OpenMemoryStores(cfg *config.Config) (Stores, func(), error) {
	users := memory.NewUserRepo()
	memory.SeedUsers(context.Background(), users, security.NewBcryptHasher(cfg.BcryptCost))

	return Stores{
		Users:         users,
		Departments:   memory.NewDepartmentRepo(users),
		Leaves:        memory.NewLeaveRepo(),
		Announcements: memory.NewAnnouncementRepo(),
	}, func() {}, nil
}
