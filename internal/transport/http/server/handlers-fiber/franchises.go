package handlers_fiber

import (
	"net/http"

	"github.com/Loandr1324/InsertManagerInOrder/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetFranchises returns the effective franchise directory.
func (h *Handler) GetFranchises(c *fiber.Ctx) error {
	view, err := h.uc.Franchises(c.Context())
	if err != nil {
		h.log.Errorw("failed to read franchise directory", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToFranchisesResponse(view.Titles, view.Map))
}
