package handler

import (
	"errors"
	"strconv"

	"cloud.google.com/go/civil"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"github.com/wichananm65/user-api/internal/interface/presenter"
	"github.com/wichananm65/user-api/internal/usecase"
)

// UserHandler adapts HTTP requests to use case calls.
type UserHandler struct {
	usecase   usecase.UserUsecase
	presenter *presenter.UserPresenter
	log       *zap.Logger
}

func NewUserHandler(usecase usecase.UserUsecase, presenter *presenter.UserPresenter, log *zap.Logger) *UserHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserHandler{usecase: usecase, presenter: presenter, log: log}
}

// RegisterRoutes mounts the user endpoints on r, typically a group at the
// presenter's base path.
func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/:id", h.get)
	r.Put("/:id", h.update)
	r.Patch("/:id", h.partialUpdate)
	r.Delete("/:id", h.delete)
}

func (h *UserHandler) list(c *fiber.Ctx) error {
	startDate, err := parseDateQuery(c, "startDate")
	if err != nil {
		return writeProblem(c, fiber.StatusBadRequest, err.Error(), nil)
	}
	endDate, err := parseDateQuery(c, "endDate")
	if err != nil {
		return writeProblem(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	users, err := h.usecase.List(c.UserContext(), startDate, endDate)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(h.presenter.ToList(users))
}

func (h *UserHandler) get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeProblem(c, fiber.StatusBadRequest, "invalid user id", nil)
	}

	user, err := h.usecase.GetByID(c.UserContext(), id)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(h.presenter.ToResponse(user))
}

func (h *UserHandler) create(c *fiber.Ctx) error {
	var input usecase.UserInput
	if err := c.BodyParser(&input); err != nil {
		return writeProblem(c, fiber.StatusBadRequest, "invalid json body", nil)
	}

	id, err := h.usecase.Create(c.UserContext(), input)
	if err != nil {
		return h.writeError(c, err)
	}

	c.Location(h.presenter.UserPath(id))
	return c.Status(fiber.StatusCreated).Send(nil)
}

func (h *UserHandler) update(c *fiber.Ctx) error {
	id, input, err := parseIDAndBody(c)
	if err != nil {
		return writeProblem(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	user, err := h.usecase.Update(c.UserContext(), id, input)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(h.presenter.ToResponse(user))
}

func (h *UserHandler) partialUpdate(c *fiber.Ctx) error {
	id, input, err := parseIDAndBody(c)
	if err != nil {
		return writeProblem(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	user, err := h.usecase.PartialUpdate(c.UserContext(), id, input)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(h.presenter.ToResponse(user))
}

func (h *UserHandler) delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeProblem(c, fiber.StatusBadRequest, "invalid user id", nil)
	}

	if err := h.usecase.Delete(c.UserContext(), id); err != nil {
		return h.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// problemResponse is an RFC 7807 style error body.
type problemResponse struct {
	Status     int                 `json:"status"`
	Title      string              `json:"title"`
	Detail     string              `json:"detail"`
	Violations []usecase.Violation `json:"violations,omitempty"`
}

// writeError maps use case error kinds to HTTP statuses.
func (h *UserHandler) writeError(c *fiber.Ctx, err error) error {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return writeProblem(c, fiber.StatusBadRequest, usecase.ErrValidationFailed.Error(), verr.Violations)
	case errors.Is(err, usecase.ErrNotFound):
		return writeProblem(c, fiber.StatusNotFound, err.Error(), nil)
	case errors.Is(err, usecase.ErrInvalidParameter):
		return writeProblem(c, fiber.StatusBadRequest, err.Error(), nil)
	default:
		h.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return writeProblem(c, fiber.StatusInternalServerError, "internal error", nil)
	}
}

func writeProblem(c *fiber.Ctx, status int, detail string, violations []usecase.Violation) error {
	return c.Status(status).JSON(problemResponse{
		Status:     status,
		Title:      utils.StatusMessage(status),
		Detail:     detail,
		Violations: violations,
	})
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func parseIDAndBody(c *fiber.Ctx) (int64, usecase.UserInput, error) {
	var input usecase.UserInput
	id, err := parseID(c)
	if err != nil {
		return 0, input, errors.New("invalid user id")
	}
	if err := c.BodyParser(&input); err != nil {
		return 0, input, errors.New("invalid json body")
	}
	return id, input, nil
}

// parseDateQuery returns nil when the parameter is absent.
func parseDateQuery(c *fiber.Ctx, name string) (*civil.Date, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(raw)
	if err != nil {
		return nil, errors.New("invalid " + name + ": expected YYYY-MM-DD")
	}
	return &d, nil
}
