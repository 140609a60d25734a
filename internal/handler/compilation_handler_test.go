package handler_test

import (
	"net/http"
	"testing"

	"eventhub/internal/handler"
	"eventhub/internal/model"
	"eventhub/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCompilationHandler_SaveCompilation(t *testing.T) {
	t.Run("Success - save", func(t *testing.T) {
		mockService := mocks.NewMockCompilationService(t)
		router := setupTestRouter(t, handler.NewCompilationHandler(mockService))

		mockService.EXPECT().SaveCompilation(mock.Anything, mock.MatchedBy(func(req model.NewCompilationRequest) bool {
			return req.Title == "Summer" && len(req.Events) == 2
		})).Return(&model.Compilation{ID: 1, Title: "Summer", Events: []*model.Event{}}, nil).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/admin/compilations", map[string]interface{}{
			"title":  "Summer",
			"events": []int64{1, 2},
		}))

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestCompilationHandler_GetCompilations(t *testing.T) {
	t.Run("Success - pinned filter", func(t *testing.T) {
		mockService := mocks.NewMockCompilationService(t)
		router := setupTestRouter(t, handler.NewCompilationHandler(mockService))

		mockService.EXPECT().GetCompilations(mock.Anything, mock.MatchedBy(func(p *bool) bool {
			return p != nil && *p
		}), mock.Anything).Return([]*model.Compilation{}, nil).Once()

		req, _ := http.NewRequest("GET", "/compilations?pinned=true", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})
}

func TestCompilationHandler_DeleteCompilation(t *testing.T) {
	t.Run("Success - delete", func(t *testing.T) {
		mockService := mocks.NewMockCompilationService(t)
		router := setupTestRouter(t, handler.NewCompilationHandler(mockService))

		mockService.EXPECT().DeleteCompilation(mock.Anything, int64(1)).Return(nil).Once()

		req, _ := http.NewRequest("DELETE", "/admin/compilations/1", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
