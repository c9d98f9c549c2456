package handler

import (
	"errors"
	"net/http"
	"strconv"

	"ratehub/internal/dto"
	"ratehub/internal/middleware"
	"ratehub/internal/service"

	"github.com/gin-gonic/gin"
)

// OwnerHandler serves the owner dashboard routes, all scoped to stores the
// caller owns.
type OwnerHandler struct {
	storeService service.StoreService
}

func NewOwnerHandler(storeService service.StoreService) *OwnerHandler {
	return &OwnerHandler{storeService: storeService}
}

// RegisterRoutes registers owner routes; the group is expected to already be
// behind auth plus the owner role gate.
func (h *OwnerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	owner := rg.Group("/owner")
	{
		owner.POST("/stores", h.CreateStore)
		owner.GET("/stores", h.ListOwned)
		owner.GET("/stores/:id/ratings", h.StoreRatings)
		owner.GET("/stores/:id/summary", h.StoreSummary)
		owner.DELETE("/stores/:id", h.DeleteStore)
	}
}

// CreateStore creates a store owned by the caller.
// POST /api/owner/stores
func (h *OwnerHandler) CreateStore(c *gin.Context) {
	ownerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store, err := h.storeService.CreateStore(c.Request.Context(), &req, &ownerID)
	if err != nil {
		if errors.Is(err, service.ErrEmailInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": "store with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating store"})
		return
	}

	c.JSON(http.StatusCreated, store)
}

// ListOwned lists the caller's stores.
// GET /api/owner/stores
func (h *OwnerHandler) ListOwned(c *gin.Context) {
	ownerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	stores, err := h.storeService.ListOwned(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing owned stores"})
		return
	}

	c.JSON(http.StatusOK, stores)
}

// StoreRatings returns the full rater detail list for an owned store.
// GET /api/owner/stores/:id/ratings
func (h *OwnerHandler) StoreRatings(c *gin.Context) {
	storeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store ID"})
		return
	}

	ownerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ratings, err := h.storeService.StoreRatings(c.Request.Context(), storeID, ownerID)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "store not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching store ratings"})
		return
	}

	c.JSON(http.StatusOK, ratings)
}

// StoreSummary returns the average and vote count for an owned store.
// GET /api/owner/stores/:id/summary
func (h *OwnerHandler) StoreSummary(c *gin.Context) {
	storeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store ID"})
		return
	}

	ownerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	summary, err := h.storeService.OwnedStoreSummary(c.Request.Context(), storeID, ownerID)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "store not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching store summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// DeleteStore removes an owned store and its ratings transactionally.
// DELETE /api/owner/stores/:id
func (h *OwnerHandler) DeleteStore(c *gin.Context) {
	storeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store ID"})
		return
	}

	ownerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.storeService.DeleteOwnedStore(c.Request.Context(), storeID, ownerID); err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "store not found or you are not authorized to delete it"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting store"})
		return
	}

	c.Status(http.StatusNoContent)
}
