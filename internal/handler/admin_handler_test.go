package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ratehub/internal/dto"
	"ratehub/internal/models"
	"ratehub/internal/repository"
	"ratehub/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminHandler_Dashboard(t *testing.T) {
	mockUsers := new(MockUserService)
	h := NewAdminHandler(mockUsers, new(MockStoreService))
	router := newTestRouter(1, models.RoleAdmin, h.RegisterRoutes)

	mockUsers.On("DashboardStats", mock.Anything).
		Return(&dto.DashboardStats{TotalUsers: 10, TotalStores: 4, TotalRatings: 27}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_users":10,"total_stores":4,"total_ratings":27}`, w.Body.String())
}

func TestAdminHandler_CreateUser(t *testing.T) {
	t.Run("creates with the requested role", func(t *testing.T) {
		mockUsers := new(MockUserService)
		h := NewAdminHandler(mockUsers, new(MockStoreService))
		router := newTestRouter(1, models.RoleAdmin, h.RegisterRoutes)

		mockUsers.On("CreateUser", mock.Anything, mock.MatchedBy(func(r *dto.AdminCreateUserRequest) bool {
			return r.Role == "owner"
		})).Return(&models.User{ID: 5, Name: "Jonathan Maxwell Abernathy", Email: "owner@example.com", Role: models.RoleOwner}, nil)

		body := `{"name":"Jonathan Maxwell Abernathy","email":"owner@example.com","password":"Secret@123","address":"1 Main St","role":"owner"}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NotContains(t, w.Body.String(), "password")
		mockUsers.AssertExpectations(t)
	})

	t.Run("weak password is rejected before the service", func(t *testing.T) {
		mockUsers := new(MockUserService)
		h := NewAdminHandler(mockUsers, new(MockStoreService))
		router := newTestRouter(1, models.RoleAdmin, h.RegisterRoutes)

		body := `{"name":"Jonathan Maxwell Abernathy","email":"u@example.com","password":"alllowercase1","address":"1 Main St","role":"user"}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUsers.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockUsers := new(MockUserService)
		h := NewAdminHandler(mockUsers, new(MockStoreService))
		router := newTestRouter(1, models.RoleAdmin, h.RegisterRoutes)

		mockUsers.On("CreateUser", mock.Anything, mock.Anything).Return(nil, service.ErrEmailInUse)

		body := `{"name":"Jonathan Maxwell Abernathy","email":"dup@example.com","password":"Secret@123","address":"1 Main St","role":"user"}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAdminHandler_ListUsers(t *testing.T) {
	mockUsers := new(MockUserService)
	h := NewAdminHandler(mockUsers, new(MockStoreService))
	router := newTestRouter(1, models.RoleAdmin, h.RegisterRoutes)

	avg := "4.25"
	mockUsers.On("ListUsers", mock.Anything,
		repository.UserFilter{Name: "own", Role: "owner"},
		repository.Sort{Field: "email", Order: "DESC"},
	).Return([]dto.UserResponse{
		{ID: 5, Name: "Owner One", Email: "o1@example.com", Role: models.RoleOwner, OwnerAvgRating: &avg},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users?qName=own&role=owner&sortField=email&sortOrder=DESC", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body []map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body, 1)
	assert.Equal(t, "4.25", body[0]["owner_avg_rating"])
	mockUsers.AssertExpectations(t)
}

func TestAdminHandler_GetUser(t *testing.T) {
	mockUsers := new(MockUserService)
	h := NewAdminHandler(mockUsers, new(MockStoreService))
	router := newTestRouter(1, models.RoleAdmin, h.RegisterRoutes)

	mockUsers.On("GetUserDetails", mock.Anything, int64(404)).Return(nil, service.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users/404", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminHandler_CreateStore(t *testing.T) {
	t.Run("dangling owner id is a client error", func(t *testing.T) {
		mockStores := new(MockStoreService)
		h := NewAdminHandler(new(MockUserService), mockStores)
		router := newTestRouter(1, models.RoleAdmin, h.RegisterRoutes)

		mockStores.On("CreateStore", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, service.ErrUserNotFound)

		body := `{"name":"The Corner Coffee Roastery","email":"store@example.com","address":"1 Main St","owner_id":12345}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/stores", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "owner_id")
	})

	t.Run("owner id from the body is honored", func(t *testing.T) {
		mockStores := new(MockStoreService)
		h := NewAdminHandler(new(MockUserService), mockStores)
		router := newTestRouter(1, models.RoleAdmin, h.RegisterRoutes)

		ownerID := int64(5)
		mockStores.On("CreateStore", mock.Anything, mock.MatchedBy(func(r *dto.CreateStoreRequest) bool {
			return r.OwnerID != nil && *r.OwnerID == 5
		}), mock.MatchedBy(func(id *int64) bool {
			return id != nil && *id == 5
		})).Return(&dto.StoreResponse{ID: 1, Name: "The Corner Coffee Roastery", OwnerID: &ownerID}, nil)

		body := `{"name":"The Corner Coffee Roastery","email":"store@example.com","address":"1 Main St","owner_id":5}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/stores", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockStores.AssertExpectations(t)
	})
}

func TestAdminHandler_DeleteStore(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockStores := new(MockStoreService)
		h := NewAdminHandler(new(MockUserService), mockStores)
		router := newTestRouter(1, models.RoleAdmin, h.RegisterRoutes)

		mockStores.On("DeleteStore", mock.Anything, int64(1)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/stores/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("missing store", func(t *testing.T) {
		mockStores := new(MockStoreService)
		h := NewAdminHandler(new(MockUserService), mockStores)
		router := newTestRouter(1, models.RoleAdmin, h.RegisterRoutes)

		mockStores.On("DeleteStore", mock.Anything, int64(404)).Return(service.ErrStoreNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/stores/404", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
