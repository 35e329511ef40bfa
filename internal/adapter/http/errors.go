package http

import (
	"errors"
	"net/http"

	"library-circulation/internal/domain/book"
	"library-circulation/internal/domain/loan"
	"library-circulation/internal/domain/member"

	"github.com/labstack/echo/v4"
)

// writeDomainError maps domain sentinels to HTTP codes. Anything unrecognized
// is a storage-level failure and stays opaque to the client.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, member.ErrNotFound),
		errors.Is(err, book.ErrNotFound),
		errors.Is(err, loan.ErrNotFound),
		errors.Is(err, book.ErrUnavailable):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, member.ErrPenalized),
		errors.Is(err, member.ErrLoanLimitReached),
		errors.Is(err, member.ErrHasOpenLoans):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})

	case errors.Is(err, loan.ErrAlreadyReturned),
		errors.Is(err, book.ErrCodeTaken),
		errors.Is(err, book.ErrTitleTaken),
		errors.Is(err, member.ErrCodeTaken):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
