package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"foodatlas-server/internal/domain/food"
	"foodatlas-server/internal/interfaces/httpserver/middlewares"
	"foodatlas-server/internal/interfaces/httpserver/requests"
	"foodatlas-server/internal/interfaces/httpserver/responses"
)

// FoodHandler exposes the catalog CRUD endpoints.
type FoodHandler struct {
	foods *food.Service
	log   zerolog.Logger
}

func NewFoodHandler(foods *food.Service, log zerolog.Logger) *FoodHandler {
	return &FoodHandler{
		foods: foods,
		log:   log.With().Str("component", "food-handler").Logger(),
	}
}

type foodResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Origin      string `json:"origin"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
}

func toFoodResponse(entry *food.Food) foodResponse {
	return foodResponse{
		ID:          entry.ID,
		Name:        entry.Name,
		Origin:      entry.Origin,
		Description: entry.Description,
		CreatedBy:   entry.CreatedBy,
		CreatedAt:   entry.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// Create godoc
// @Summary      Create a food entry
// @Description  The entry is owned by the authenticated principal.
// @Tags         foods
// @Accept       json
// @Produce      json
// @Success      201  {object}  responses.Envelope
// @Failure      400  {object}  responses.Envelope
// @Failure      401  {object}  responses.Envelope
// @Router       /foods [post]
func (h *FoodHandler) Create(c *gin.Context) {
	principal, ok := middlewares.PrincipalFromContext(c)
	if !ok {
		responses.Message(c, http.StatusUnauthorized, "Authentication required. Please log in.")
		return
	}

	var req requests.CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, requests.TranslateBindingError(err))
		return
	}

	entry, err := h.foods.Create(c.Request.Context(), req.Name, req.Origin, req.Description, principal.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("creating food item failed")
		responses.HandleError(c, err, "Internal Server Error")
		return
	}

	responses.Created(c, "Foods created successfully", toFoodResponse(entry))
}

// List godoc
// @Summary      List food entries
// @Description  Open endpoint; supports filtering by creator via userId.
// @Tags         foods
// @Produce      json
// @Param        userId  query  string  false  "Filter by creating user id"
// @Success      200  {object}  responses.Envelope
// @Router       /foods [get]
func (h *FoodHandler) List(c *gin.Context) {
	filter := food.Filter{}
	if userID := c.Query("userId"); userID != "" {
		if _, err := uuid.Parse(userID); err != nil {
			responses.Message(c, http.StatusBadRequest, "Invalid ID format")
			return
		}
		filter.CreatedBy = userID
	}

	entries, err := h.foods.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("listing food items failed")
		responses.HandleError(c, err, "Internal Server Error")
		return
	}

	out := make([]foodResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toFoodResponse(entry))
	}
	responses.OK(c, "Foods retrieved successfully", out)
}

// Get godoc
// @Summary      Get a food entry by id
// @Tags         foods
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Failure      404  {object}  responses.Envelope
// @Router       /foods/{id} [get]
func (h *FoodHandler) Get(c *gin.Context) {
	id, ok := h.entryID(c)
	if !ok {
		return
	}

	entry, err := h.foods.Get(c.Request.Context(), id)
	if err != nil {
		h.respondNotFoundOrFault(c, err, id, "fetching food item failed")
		return
	}

	responses.OK(c, "Food retrieved successfully", toFoodResponse(entry))
}

// Update godoc
// @Summary      Update a food entry
// @Description  Requires authentication; ownership is not checked.
// @Tags         foods
// @Accept       json
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Failure      404  {object}  responses.Envelope
// @Router       /foods/{id} [put]
func (h *FoodHandler) Update(c *gin.Context) {
	id, ok := h.entryID(c)
	if !ok {
		return
	}

	var req requests.UpdateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, requests.TranslateBindingError(err))
		return
	}

	entry, err := h.foods.Update(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		h.respondNotFoundOrFault(c, err, id, "updating food item failed")
		return
	}

	responses.OK(c, "Food Item updated successfully", toFoodResponse(entry))
}

// Delete godoc
// @Summary      Delete a food entry
// @Description  Requires authentication; ownership is not checked.
// @Tags         foods
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Failure      404  {object}  responses.Envelope
// @Router       /foods/{id} [delete]
func (h *FoodHandler) Delete(c *gin.Context) {
	id, ok := h.entryID(c)
	if !ok {
		return
	}

	entry, err := h.foods.Delete(c.Request.Context(), id)
	if err != nil {
		h.respondNotFoundOrFault(c, err, id, "deleting food item failed")
		return
	}

	responses.OK(c, "Food Item deleted successfully", toFoodResponse(entry))
}

func (h *FoodHandler) entryID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		responses.Message(c, http.StatusBadRequest, "Invalid ID format")
		return "", false
	}
	return id, true
}

func (h *FoodHandler) respondNotFoundOrFault(c *gin.Context, err error, id, logMessage string) {
	if errors.Is(err, food.ErrNotFound) {
		responses.Message(c, http.StatusNotFound, "Item not found")
		return
	}
	h.log.Error().Err(err).Str("food_id", id).Msg(logMessage)
	responses.HandleError(c, err, "Internal Server Error")
}
