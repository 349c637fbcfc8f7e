// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/Loandr1324/InsertManagerInOrder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the run trigger on top of the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log.Named("http"),
		uc:  usecase,
	}
}

// RegisterHandlers mounts every route on the router.
func RegisterHandlers(router fiber.Router, h *Handler) {
	router.Get("/healthz", h.GetHealthz)
	router.Post("/runs", h.PostRuns)
	router.Get("/runs/last", h.GetRunsLast)
	router.Get("/franchises", h.GetFranchises)
}

// GetHealthz reports liveness.
func (h *Handler) GetHealthz(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}
