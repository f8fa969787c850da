package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"catalog/internal/delivery/http/response"
	"catalog/internal/domain/entity"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ItemHandler holds dependencies for catalog item handlers.
type ItemHandler struct {
	uc     usecase.ItemUsecase
	logger *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler, injected by Fx.
func NewItemHandler(uc usecase.ItemUsecase, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		uc:     uc,
		logger: logger,
	}
}

type itemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	Description string  `json:"description"`
	SKU         string  `json:"sku"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	Category    string  `json:"category"`
	IsActive    *bool   `json:"isActive"`
}

type itemView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	SKU         string    `json:"sku,omitempty"`
	Quantity    int       `json:"quantity"`
	Category    string    `json:"category,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toItemView(item *entity.Item) itemView {
	return itemView{
		ID:          item.ID.String(),
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
		SKU:         item.SKU,
		Quantity:    item.Quantity,
		Category:    item.Category,
		IsActive:    item.IsActive,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func (req *itemRequest) toInput() *usecase.ItemInput {
	return &usecase.ItemInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		SKU:         req.SKU,
		Quantity:    req.Quantity,
		Category:    req.Category,
		IsActive:    req.IsActive,
	}
}

// itemID strictly parses the :id path parameter.
func itemID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	return id, nil
}

// List handles the public item listing request with skip/limit paging.
func (h *ItemHandler) List(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	items, err := h.uc.List(c.Request().Context(), &usecase.ListItemsInput{
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]itemView, 0, len(items))
	for _, item := range items {
		views = append(views, toItemView(item))
	}

	return response.Success(c, http.StatusOK, views, "Items retrieved successfully")
}

// Get handles the public single-item lookup.
func (h *ItemHandler) Get(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}

	item, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toItemView(item), "Item retrieved successfully")
}

// Create handles authenticated item creation.
func (h *ItemHandler) Create(c echo.Context) error {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/items/"+item.ID.String())

	return response.Success(c, http.StatusCreated, toItemView(item), "Item created successfully")
}

// Replace handles authenticated full replacement of an item.
func (h *ItemHandler) Replace(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.Replace(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toItemView(item), "Item replaced successfully")
}

// Delete handles authenticated item deletion.
func (h *ItemHandler) Delete(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item deleted successfully")
}
