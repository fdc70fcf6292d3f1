package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/anonto42/inkwell/backend/internal/models"
	"github.com/anonto42/inkwell/backend/internal/repositories"
)

// UserHandler handles the REST endpoints for users
type UserHandler struct {
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(log *zap.Logger) *UserHandler {
	return &UserHandler{log: log}
}

// RegisterUserRoutes registers user routes behind the given middleware
func (h *UserHandler) RegisterUserRoutes(e *echo.Echo, m ...echo.MiddlewareFunc) {
	e.POST("/users", h.CreateUser, m...)
	e.GET("/users", h.GetUsers, m...)
	e.GET("/users/:id", h.GetUser, m...)
	e.GET("/users/:id/posts", h.GetPostsForUser, m...)
	e.GET("/users/:id/followers", h.GetFollowersForUser, m...)
}

// CreateUser inserts a user from {"email": ...}
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req models.NewUser
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	s, err := h.store(c)
	if err != nil {
		return err
	}
	user, err := s.Users.CreateUser(c.Request().Context(), &req)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, user)
}

// GetUsers lists every user
func (h *UserHandler) GetUsers(c echo.Context) error {
	s, err := h.store(c)
	if err != nil {
		return err
	}
	users, err := s.Users.GetUsers(c.Request().Context())
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}
	s, err := h.store(c)
	if err != nil {
		return err
	}
	user, err := s.Users.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return h.fail(err)
	}
	if user == nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetPostsForUser(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}
	s, err := h.store(c)
	if err != nil {
		return err
	}
	posts, err := s.Posts.GetPostsByUserID(c.Request().Context(), id)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, posts)
}

func (h *UserHandler) GetFollowersForUser(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}
	s, err := h.store(c)
	if err != nil {
		return err
	}
	users, err := s.Followers.GetFollowers(c.Request().Context(), id)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, users)
}

func userID(c echo.Context) (int32, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	return int32(id), nil
}

func (h *UserHandler) store(c echo.Context) (*repositories.Store, error) {
	s, err := repositories.StoreFromContext(c.Request().Context())
	if err != nil {
		h.log.Error("handler ran without a request connection", zap.String("path", c.Path()))
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "Database unavailable")
	}
	return s, nil
}

// fail maps a repository error to a 500 without exposing the driver message
func (h *UserHandler) fail(err error) error {
	var dae *repositories.DataAccessError
	if errors.As(err, &dae) {
		h.log.Error("data access failed", zap.String("op", dae.Op), zap.Error(dae.Err))
		return echo.NewHTTPError(http.StatusInternalServerError, dae.Op)
	}
	h.log.Error("unexpected handler error", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
}
