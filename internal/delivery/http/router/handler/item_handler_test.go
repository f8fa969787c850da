package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog/internal/domain/entity"
	mockUsecase "catalog/internal/mocks/usecase"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testValidator accepts every payload; validation behavior is covered by the
// validator package itself.
type testValidator struct{}

func (testValidator) Validate(any) error { return nil }

func newItemTestHandler(t *testing.T) (*ItemHandler, *mockUsecase.MockItemUsecase) {
	uc := mockUsecase.NewMockItemUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewItemHandler(uc, logger), uc
}

func TestItemHandler_List(t *testing.T) {
	handler, uc := newItemTestHandler(t)

	items := []*entity.Item{
		{ID: uuid.New(), Name: "Widget", Price: 9.99, IsActive: true},
	}
	uc.On("List", mock.Anything, &usecase.ListItemsInput{Skip: 10, Limit: 5}).Return(items, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/items?skip=10&limit=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Widget")
}

func TestItemHandler_Get_InvalidID(t *testing.T) {
	handler, _ := newItemTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/items/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.Get(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestItemHandler_Get_Success(t *testing.T) {
	handler, uc := newItemTestHandler(t)
	id := uuid.New()
	item := &entity.Item{ID: id, Name: "Widget", Price: 9.99, IsActive: true}

	uc.On("Get", mock.Anything, id).Return(item, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/items/"+id.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())
}

func TestItemHandler_Create_SetsLocationHeader(t *testing.T) {
	handler, uc := newItemTestHandler(t)
	id := uuid.New()
	created := &entity.Item{ID: id, Name: "Widget", Price: 9.99, IsActive: true}

	uc.On("Create", mock.Anything, mock.AnythingOfType("*usecase.ItemInput")).Return(created, nil)

	e := echo.New()
	e.Validator = testValidator{}
	body := `{"name":"Widget","price":9.99}`
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/items/"+id.String(), rec.Header().Get(echo.HeaderLocation))
}
