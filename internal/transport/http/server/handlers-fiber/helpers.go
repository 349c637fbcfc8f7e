package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"
	"github.com/Loandr1324/InsertManagerInOrder/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := dto.INTERNAL
	msg := err.Error()

	switch {
	case errors.Is(err, entities.ErrRunInProgress):
		status = http.StatusConflict
		code = dto.RUNINPROGRESS
		msg = "another run is in progress"
	case errors.Is(err, entities.ErrNoRunYet):
		status = http.StatusNotFound
		code = dto.NORUNYET
		msg = "no run has completed yet"
	case errors.Is(err, entities.ErrAPIFailure):
		status = http.StatusBadGateway
		code = dto.UPSTREAM
		msg = "order platform unavailable"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code dto.ErrorCode, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorBody{Code: code, Message: msg}}
}
