package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/Domenick1991/shareit/internal/domain"
	"github.com/Domenick1991/shareit/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestHandler_create(t *testing.T) {
	mockService := &MockRequestUseCase{}
	handler := NewRequestHandler(mockService)
	created := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	mockService.On("Create", mock.Anything, int64(1), "Need a ladder").
		Return(&domain.ItemRequest{ID: 4, Description: "Need a ladder", RequestorID: 1, Created: created}, nil).Once()

	w := serve(handler, "/requests", http.MethodPost, "/requests", `{"description":"Need a ladder"}`, "1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":4,"description":"Need a ladder","created":"2030-01-01T00:00:00Z","items":[]}`, w.Body.String())
}

func TestRequestHandler_listOwn(t *testing.T) {
	mockService := &MockRequestUseCase{}
	handler := NewRequestHandler(mockService)
	reqID := int64(4)

	mockService.On("ListOwn", mock.Anything, int64(1)).Return([]domain.ItemRequest{{
		ID:    4,
		Items: []domain.Item{{ID: 9, Name: "Ladder", OwnerID: 2, RequestID: &reqID}},
	}}, nil).Once()

	w := serve(handler, "/requests", http.MethodGet, "/requests", "", "1")

	assert.Equal(t, http.StatusOK, w.Code)
	var response []dto.RequestDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	require.Len(t, response[0].Items, 1)
	assert.Equal(t, int64(2), response[0].Items[0].OwnerID)
}

func TestRequestHandler_listOthers(t *testing.T) {
	mockService := &MockRequestUseCase{}
	handler := NewRequestHandler(mockService)

	mockService.On("ListOthers", mock.Anything, int64(1), domain.Page{From: 2, Size: 2}).
		Return([]domain.ItemRequest{}, nil).Once()

	w := serve(handler, "/requests", http.MethodGet, "/requests/all?from=2&size=2", "", "1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestRequestHandler_listOthers_BadPage(t *testing.T) {
	mockService := &MockRequestUseCase{}
	handler := NewRequestHandler(mockService)

	w := serve(handler, "/requests", http.MethodGet, "/requests/all?from=-1", "", "1")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ListOthers", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestHandler_get_NotFound(t *testing.T) {
	mockService := &MockRequestUseCase{}
	handler := NewRequestHandler(mockService)

	mockService.On("Get", mock.Anything, int64(1), int64(99)).Return(nil, domain.NotFound("request not found")).Once()

	w := serve(handler, "/requests", http.MethodGet, "/requests/99", "", "1")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
