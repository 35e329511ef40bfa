package http

import (
	"net/http"

	"library-circulation/internal/usecase/lending"

	"github.com/labstack/echo/v4"
)

type LendingHandler struct{ uc *lending.Usecase }

func NewLendingHandler(uc *lending.Usecase) *LendingHandler { return &LendingHandler{uc: uc} }

type borrowReq struct {
	MemberID uint64 `json:"member_id" validate:"required,gt=0"`
	BookID   uint64 `json:"book_id"   validate:"required,gt=0"`
}

func (h *LendingHandler) Borrow(c echo.Context) error {
	var req borrowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Borrow(c.Request().Context(), lending.BorrowInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LendingHandler) Return(c echo.Context) error {
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	dto, err := h.uc.Return(c.Request().Context(), loanID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LendingHandler) ListOpen(c echo.Context) error {
	views, err := h.uc.ListOpenLoans(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *LendingHandler) Get(c echo.Context) error {
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	view, err := h.uc.GetLoan(c.Request().Context(), loanID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}
