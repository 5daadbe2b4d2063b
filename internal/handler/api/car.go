package api

import (
	"errors"
	"net/http"

	reqdto "driveshare/internal/handler/dto/request"
	resdto "driveshare/internal/handler/dto/response"
	"driveshare/internal/handler/httperr"
	"driveshare/internal/usecase/commands"
	"driveshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CarHandler struct {
	carCommands commands.CarCommands
	carQueries  queries.CarQueries
}

func NewCarHandler(carCommands commands.CarCommands, carQueries queries.CarQueries) *CarHandler {
	return &CarHandler{
		carCommands: carCommands,
		carQueries:  carQueries,
	}
}

// @Summary List a car
// @Description Publish a new car listing
// @Tags cars
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCarRequest true "Car listing"
// @Success 201 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /cars [post]
func (h *CarHandler) CreateCar(c *gin.Context) {
	var req reqdto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.carCommands.ListCar(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCarDetail):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid car detail", nil)
		case errors.Is(err, commands.ErrOwnerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Owner not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create listing", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCarView(view))
}

// SearchCars filters listings by location fragment (?location=); with
// ?owner_id= it returns the owner's own listings instead.
func (h *CarHandler) SearchCars(c *gin.Context) {
	if ownerParam := c.Query("owner_id"); ownerParam != "" {
		ownerID, err := uuid.Parse(ownerParam)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid owner ID", nil)
			return
		}
		views, err := h.carQueries.ListByOwner(c.Request.Context(), ownerID)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list cars", nil)
			return
		}
		c.JSON(http.StatusOK, toCarResponses(views))
		return
	}

	views, err := h.carQueries.Search(c.Request.Context(), c.Query("location"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to search cars", nil)
		return
	}

	c.JSON(http.StatusOK, toCarResponses(views))
}

func (h *CarHandler) GetCar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid car ID", nil)
		return
	}

	view, err := h.carQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarView(view))
}

func toCarResponses(views []*queries.CarView) []*resdto.CarResponse {
	response := make([]*resdto.CarResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromCarView(view)
	}
	return response
}
