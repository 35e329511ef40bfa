package http

import (
	"net/http"
	"strconv"

	bookuc "library-circulation/internal/usecase/book"

	"github.com/labstack/echo/v4"
)

type BookHandler struct{ uc *bookuc.Usecase }

func NewBookHandler(uc *bookuc.Usecase) *BookHandler { return &BookHandler{uc: uc} }

type createBookReq struct {
	Code   string `json:"code"   validate:"required,max=64"`
	Title  string `json:"title"  validate:"required,max=255"`
	Author string `json:"author" validate:"max=255"`
}

type updateBookReq struct {
	Code   string `json:"code"   validate:"required,max=64"`
	Title  string `json:"title"  validate:"required,max=255"`
	Author string `json:"author" validate:"max=255"`
	Stock  int    `json:"stock"  validate:"gte=0"`
}

func pathID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *BookHandler) List(c echo.Context) error {
	books, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *BookHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	b, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BookHandler) Create(c echo.Context) error {
	var req createBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	b, err := h.uc.Create(c.Request().Context(), bookuc.CreateBookInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BookHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	var req updateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	b, err := h.uc.Update(c.Request().Context(), id, bookuc.UpdateBookInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BookHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	if err := h.uc.SoftDelete(c.Request().Context(), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "book has been marked as deleted"})
}
