package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "sejour/internal/handler/dto/response"
	"sejour/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	propertyQueries queries.PropertyQueries
}

func NewPropertyHandler(propertyQueries queries.PropertyQueries) *PropertyHandler {
	return &PropertyHandler{propertyQueries: propertyQueries}
}

// @Summary List properties
// @Description List active properties from the catalog
// @Tags properties
// @Produce json
// @Param type query string false "Property type (hotel, house, studio)"
// @Param min_capacity query int false "Minimum capacity"
// @Param limit query int false "Maximum results"
// @Success 200 {array} resdto.PropertyListResponse
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	var filter queries.PropertyFilter
	if t := c.Query("type"); t != "" {
		filter.Type = &t
	}
	if capStr := c.Query("min_capacity"); capStr != "" {
		minCapacity, err := strconv.Atoi(capStr)
		if err != nil || minCapacity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid minimum capacity",
			})
			return
		}
		filter.MinCapacity = &minCapacity
	}

	items, err := h.propertyQueries.List(c.Request.Context(), filter, parseLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.PropertyListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromPropertyListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get property
// @Description Get a property by ID
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return
	}

	view, err := h.propertyQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPropertyView(view))
}
