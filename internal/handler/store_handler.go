package handler

import (
	"errors"
	"net/http"
	"strconv"

	"ratehub/internal/dto"
	"ratehub/internal/middleware"
	"ratehub/internal/repository"
	"ratehub/internal/service"

	"github.com/gin-gonic/gin"
)

// StoreHandler serves the end-user store routes: browsing with aggregates and
// rating submission.
type StoreHandler struct {
	storeService  service.StoreService
	ratingService service.RatingService
}

func NewStoreHandler(storeService service.StoreService, ratingService service.RatingService) *StoreHandler {
	return &StoreHandler{
		storeService:  storeService,
		ratingService: ratingService,
	}
}

// RegisterRoutes registers store routes; the group is expected to already be
// behind the auth middleware.
func (h *StoreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stores := rg.Group("/stores")
	{
		stores.GET("", h.List)
		stores.GET("/:id", h.Get)

		// POST and PUT are aliases of the same idempotent operation.
		stores.POST("/:id/rating", h.SubmitRating)
		stores.PUT("/:id/rating", h.SubmitRating)
	}
}

// List returns the store listing with overall rating, vote count and the
// caller's own rating per store.
// GET /api/stores?qName=&qAddress=
func (h *StoreHandler) List(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	filter := repository.StoreFilter{
		Name:    c.Query("qName"),
		Address: c.Query("qAddress"),
	}

	stores, err := h.storeService.ListForUser(c.Request.Context(), userID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing stores"})
		return
	}

	c.JSON(http.StatusOK, stores)
}

// Get returns one store record.
// GET /api/stores/:id
func (h *StoreHandler) Get(c *gin.Context) {
	storeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store ID"})
		return
	}

	store, err := h.storeService.GetStore(c.Request.Context(), storeID)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "store not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching store"})
		return
	}

	c.JSON(http.StatusOK, store)
}

// SubmitRating creates or updates the caller's rating for a store.
// POST|PUT /api/stores/:id/rating
func (h *StoreHandler) SubmitRating(c *gin.Context) {
	storeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store ID"})
		return
	}

	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.Submit(c.Request.Context(), storeID, userID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrStoreNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "store not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error submitting rating"})
		}
		return
	}

	c.JSON(http.StatusOK, rating)
}
