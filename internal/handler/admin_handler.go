package handler

import (
	"errors"
	"net/http"
	"strconv"

	"ratehub/internal/dto"
	"ratehub/internal/repository"
	"ratehub/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves user and store administration plus dashboard counters.
type AdminHandler struct {
	userService  service.UserService
	storeService service.StoreService
}

func NewAdminHandler(userService service.UserService, storeService service.StoreService) *AdminHandler {
	return &AdminHandler{
		userService:  userService,
		storeService: storeService,
	}
}

// RegisterRoutes registers admin routes; the group is expected to already be
// behind auth plus the admin role gate.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	{
		admin.GET("/dashboard/stats", h.Dashboard)

		admin.POST("/users", h.CreateUser)
		admin.GET("/users", h.ListUsers)
		admin.GET("/users/:id", h.GetUser)
		admin.DELETE("/users/:id", h.DeleteUser)

		admin.GET("/stores", h.ListStores)
		admin.POST("/stores", h.CreateStore)
		admin.DELETE("/stores/:id", h.DeleteStore)
	}
}

// Dashboard returns the total users/stores/ratings counters.
// GET /api/admin/dashboard/stats
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.userService.DashboardStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching dashboard data"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CreateUser creates an account with any role from the closed set.
// POST /api/admin/users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req dto.AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := dto.ValidatePassword(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": "user with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating user"})
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserSummary(user))
}

// ListUsers returns filtered, sorted users with owner averages attached where
// the role warrants.
// GET /api/admin/users?qName=&qEmail=&qAddress=&role=&sortField=&sortOrder=
func (h *AdminHandler) ListUsers(c *gin.Context) {
	filter := repository.UserFilter{
		Name:    c.Query("qName"),
		Email:   c.Query("qEmail"),
		Address: c.Query("qAddress"),
		Role:    c.Query("role"),
	}
	sort := repository.Sort{
		Field: c.Query("sortField"),
		Order: c.Query("sortOrder"),
	}

	users, err := h.userService.ListUsers(c.Request.Context(), filter, sort)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser returns one user's details, with the owner average when applicable.
// GET /api/admin/users/:id
func (h *AdminHandler) GetUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	user, err := h.userService.GetUserDetails(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching user details"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user row. The user's submitted ratings stay.
// DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting user"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListStores returns the admin store listing with current averages computed
// in the same query that sorts them.
// GET /api/admin/stores?qName=&qEmail=&qAddress=&sortField=&sortOrder=
func (h *AdminHandler) ListStores(c *gin.Context) {
	filter := repository.StoreFilter{
		Name:    c.Query("qName"),
		Email:   c.Query("qEmail"),
		Address: c.Query("qAddress"),
	}
	sort := repository.Sort{
		Field: c.Query("sortField"),
		Order: c.Query("sortOrder"),
	}

	stores, err := h.storeService.ListWithAverages(c.Request.Context(), filter, sort)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing stores"})
		return
	}

	c.JSON(http.StatusOK, stores)
}

// CreateStore creates a store for any owner (or none).
// POST /api/admin/stores
func (h *AdminHandler) CreateStore(c *gin.Context) {
	var req dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store, err := h.storeService.CreateStore(c.Request.Context(), &req, req.OwnerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailInUse):
			c.JSON(http.StatusConflict, gin.H{"error": "store with this email already exists"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "owner_id does not reference an existing user"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating store"})
		}
		return
	}

	c.JSON(http.StatusCreated, store)
}

// DeleteStore removes a store and its ratings transactionally.
// DELETE /api/admin/stores/:id
func (h *AdminHandler) DeleteStore(c *gin.Context) {
	storeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store ID"})
		return
	}

	if err := h.storeService.DeleteStore(c.Request.Context(), storeID); err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "store not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting store"})
		return
	}

	c.Status(http.StatusNoContent)
}
