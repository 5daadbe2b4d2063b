package api

import (
	"errors"
	"net/http"

	reqdto "driveshare/internal/handler/dto/request"
	resdto "driveshare/internal/handler/dto/response"
	"driveshare/internal/usecase/commands"
	"driveshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	rentalCommands commands.RentalCommands
	bookingQueries queries.BookingQueries
}

func NewBookingHandler(rentalCommands commands.RentalCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		rentalCommands: rentalCommands,
		bookingQueries: bookingQueries,
	}
}

// @Summary Rent a car
// @Description Book a car for an inclusive date range, debiting the renter's balance
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Optional idempotency key for duplicate prevention"
// @Param request body reqdto.CreateBookingRequest true "Rental request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	idempotencyKey, err := h.getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Dates must use the YYYY-MM-DD format",
		})
		return
	}

	result, err := h.rentalCommands.AttemptRental(c.Request.Context(), cmd, idempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car not found",
			})
		case errors.Is(err, commands.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Start date must not be after end date",
			})
		case errors.Is(err, commands.ErrDateRangeConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Car is already booked for the requested dates",
			})
		case errors.Is(err, commands.ErrInsufficientBalance):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Insufficient balance. Please add funds",
			})
		case errors.Is(err, commands.ErrDuplicateRental):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Duplicate rental request with different parameters",
			})
		case errors.Is(err, commands.ErrRentalInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Rental request is currently being processed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingView(result.Booking))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description Rental history for a renter (?renter_id=) or a car owner (?owner_id=)
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	renterParam := c.Query("renter_id")
	ownerParam := c.Query("owner_id")

	var (
		items []*queries.BookingListItem
		err   error
	)
	switch {
	case renterParam != "":
		renterID, parseErr := uuid.Parse(renterParam)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid renter ID format",
			})
			return
		}
		items, err = h.bookingQueries.ListByRenter(c.Request.Context(), renterID)
	case ownerParam != "":
		ownerID, parseErr := uuid.Parse(ownerParam)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid owner ID format",
			})
			return
		}
		items, err = h.bookingQueries.ListByOwner(c.Request.Context(), ownerID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Either renter_id or owner_id is required",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// getIdempotencyKey parses the optional Idempotency-Key header; uuid.Nil
// means the caller did not send one.
func (h *BookingHandler) getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, nil
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
