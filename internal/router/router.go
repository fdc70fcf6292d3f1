package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/anonto42/inkwell/backend/internal/graphql"
	"github.com/anonto42/inkwell/backend/internal/handlers"
	"github.com/anonto42/inkwell/backend/internal/middleware"
	"github.com/anonto42/inkwell/backend/pkg/database"
	"github.com/anonto42/inkwell/backend/validators"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, log *zap.Logger) {
	e.Use(middleware.RequestLogger(log))
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(middleware.JSONCharsetMiddleware())
	log.Info("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies.
// Every route that touches the database checks a connection out of pool for
// the lifetime of the request.
func SetupRoutes(e *echo.Echo, pool database.Acquirer, log *zap.Logger) error {
	e.GET("/health", handlers.HealthCheck)

	withConn := middleware.DBConnMiddleware(pool, log)

	schema, err := graphql.NewSchema(log)
	if err != nil {
		return err
	}
	graphql.NewHandler(schema).RegisterGraphQLRoutes(e, withConn)
	log.Info("GraphQL routes configured.")

	handlers.NewUserHandler(log).RegisterUserRoutes(e, withConn)
	log.Info("User routes configured.")

	return nil
}

// New builds a fully wired Echo instance
func New(pool database.Acquirer, log *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	SetupMiddleware(e, log)
	if err := SetupRoutes(e, pool, log); err != nil {
		return nil, err
	}
	log.Info("All routes configured.")
	return e, nil
}
