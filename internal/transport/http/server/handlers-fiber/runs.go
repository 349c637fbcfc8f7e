package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"
	"github.com/Loandr1324/InsertManagerInOrder/internal/mapper"
	"github.com/Loandr1324/InsertManagerInOrder/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostRuns executes a run synchronously and returns its report.
// A run with failed orders still answers 200 with complete=false.
func (h *Handler) PostRuns(c *fiber.Ctx) error {
	var req dto.RunRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.BADREQUEST, "invalid request body"))
		}
	}

	report, err := h.uc.Run(c.Context(), req.DryRun)
	if err != nil && !errors.Is(err, entities.ErrRunIncomplete) {
		h.log.Errorw("run failed", "error", err.Error(), "dry_run", req.DryRun)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToRunResponse(report))
}

// GetRunsLast returns the report of the previous run.
func (h *Handler) GetRunsLast(c *fiber.Ctx) error {
	report, err := h.uc.LastReport()
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToRunResponse(report))
}
