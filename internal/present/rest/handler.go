package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/hangarhq/hangar/internal/domain"
	"github.com/hangarhq/hangar/internal/present/rest/middleware"
	"github.com/hangarhq/hangar/internal/present/rest/presenter"
	"github.com/hangarhq/hangar/internal/usecase"
)

// EventSource streams entity lifecycle events for realtime subscribers.
type EventSource interface {
	Subscribe(ctx context.Context, output chan<- domain.Event)
}

type Handler struct {
	airplane *usecase.AirplaneUsecase
	user     *usecase.UserUsecase
	auth     *usecase.AuthUsecase
	events   EventSource
}

func NewHandler(
	airplane *usecase.AirplaneUsecase,
	user *usecase.UserUsecase,
	auth *usecase.AuthUsecase,
	events EventSource,
) *Handler {
	return &Handler{
		airplane: airplane,
		user:     user,
		auth:     auth,
		events:   events,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo, authmw *middleware.AuthMiddleware) {
	e.POST("/api/v1/auth/token", h.handleToken)

	e.POST("/api/v1/users", h.handleUserCreate)
	e.GET("/api/v1/users", h.handleUserList, authmw.RequireToken)

	e.GET("/api/v1/airplanes", h.handleAirplaneList, authmw.RequireToken)
	e.POST("/api/v1/airplanes", h.handleAirplaneCreate, authmw.RequireToken)
	e.GET("/api/v1/airplanes/:id", h.handleAirplaneGet, authmw.RequireToken)
	e.PUT("/api/v1/airplanes/:id", h.handleAirplaneUpdate, authmw.RequireToken)
	e.DELETE("/api/v1/airplanes/:id", h.handleAirplaneDelete, authmw.RequireToken)

	e.GET("/realtime", h.handleRealtime)
}

// --- request/response shapes ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r createUserRequest) toDomain() domain.User {
	return domain.User{Name: r.Name, Email: r.Email, Password: r.Password}
}

type airplaneRequest struct {
	ID           string `json:"id"`
	Model        string `json:"model"`
	Weight       string `json:"weight"`
	Manufacturer string `json:"manufacturer"`
}

func (r airplaneRequest) toDomain() domain.Airplane {
	return domain.Airplane{ID: r.ID, Model: r.Model, Weight: r.Weight, Manufacturer: r.Manufacturer}
}

// --- auth ---

func (h *Handler) handleToken(c echo.Context) error {
	ctx := c.Request().Context()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	token, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "user does not exist")
		}
		if errors.Is(err, domain.ErrInvalidPassword) {
			return presenter.BadRequestMessage(c, "invalid password")
		}
		return fail(c, err)
	}

	return presenter.OK(c, tokenResponse{Token: token})
}

// --- users ---

func (h *Handler) handleUserCreate(c echo.Context) error {
	ctx := c.Request().Context()

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	created, err := h.user.Create(ctx, req.toDomain())
	if err != nil {
		var verr domain.ValidationError
		if errors.As(err, &verr) {
			return presenter.Violations(c, verr.Violations)
		}
		if errors.Is(err, domain.ErrDuplicateKey) {
			return presenter.Conflict(c, "email already registered, please login")
		}
		return fail(c, err)
	}

	return presenter.Created(c, created)
}

func (h *Handler) handleUserList(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.user.List(ctx)
	if err != nil {
		return fail(c, err)
	}

	return presenter.OK(c, users)
}

// --- airplanes ---

func (h *Handler) handleAirplaneList(c echo.Context) error {
	ctx := c.Request().Context()

	airplanes, err := h.airplane.List(ctx)
	if err != nil {
		return fail(c, err)
	}

	return presenter.OK(c, airplanes)
}

func (h *Handler) handleAirplaneGet(c echo.Context) error {
	ctx := c.Request().Context()

	airplane, err := h.airplane.Get(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}

	return presenter.OK(c, airplane)
}

func (h *Handler) handleAirplaneCreate(c echo.Context) error {
	ctx := c.Request().Context()

	var req airplaneRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	created, err := h.airplane.Create(ctx, req.toDomain())
	if err != nil {
		var verr domain.ValidationError
		if errors.As(err, &verr) {
			return presenter.Violations(c, verr.Violations)
		}
		return fail(c, err)
	}

	return presenter.Created(c, created)
}

func (h *Handler) handleAirplaneUpdate(c echo.Context) error {
	ctx := c.Request().Context()

	var req airplaneRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	if req.ID != c.Param("id") {
		return presenter.BadRequestMessage(c, "id does not correspond with id in object")
	}

	updated, err := h.airplane.Update(ctx, req.toDomain())
	if err != nil {
		var verr domain.ValidationError
		if errors.As(err, &verr) {
			return presenter.Violations(c, verr.Violations)
		}
		return fail(c, err)
	}

	return presenter.OK(c, updated)
}

func (h *Handler) handleAirplaneDelete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	// the delete itself is idempotent; absence is only an error at this surface
	if _, err := h.airplane.Get(ctx, id); err != nil {
		return fail(c, err)
	}

	if err := h.airplane.Delete(ctx, id); err != nil {
		return fail(c, err)
	}

	return presenter.OK(c, echo.Map{"status": "ok"})
}

// fail maps errors every handler can see onto responses.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrStorageUnavailable):
		return presenter.Unavailable(c, err)
	case errors.Is(err, domain.ErrNotFound):
		return presenter.NotFound(c, err.Error())
	default:
		return presenter.InternalError(c, err)
	}
}

// --- realtime ---

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) handleRealtime(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"Failed to upgrade WebSocket",
			slog.String("error", err.Error()),
			slog.String("module", "socket"),
		)
		return err
	}
	defer func() {
		ws.Close()
	}()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	output := make(chan domain.Event)
	go h.events.Subscribe(ctx, output)

	quit := make(chan struct{})

	go func() {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				wsErr, ok := err.(*websocket.CloseError)
				if ok {
					if !(wsErr.Code == websocket.CloseNormalClosure || wsErr.Code == websocket.CloseGoingAway) {
						slog.DebugContext(
							ctx, "WebSocket closed",
							slog.String("error", wsErr.Error()),
							slog.String("module", "socket"),
						)
					}
				} else {
					slog.ErrorContext(
						ctx, "Error reading message",
						slog.String("error", err.Error()),
						slog.String("module", "socket"),
					)
				}

				close(quit)
				return
			}
		}
	}()

	for {
		select {
		case <-quit:
			return nil
		case event := <-output:
			if err := ws.WriteJSON(event); err != nil {
				slog.ErrorContext(
					ctx, "Error writing message",
					slog.String("error", err.Error()),
					slog.String("module", "socket"),
				)
				return nil
			}
		}
	}
}
