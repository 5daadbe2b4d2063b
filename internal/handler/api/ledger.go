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

type LedgerHandler struct {
	ledgerCommands commands.LedgerCommands
	ledgerQueries  queries.LedgerQueries
}

func NewLedgerHandler(ledgerCommands commands.LedgerCommands, ledgerQueries queries.LedgerQueries) *LedgerHandler {
	return &LedgerHandler{
		ledgerCommands: ledgerCommands,
		ledgerQueries:  ledgerQueries,
	}
}

// @Summary Deposit funds
// @Description Add funds to a user's balance
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body reqdto.DepositRequest true "Deposit"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /ledger/deposit [post]
func (h *LedgerHandler) Deposit(c *gin.Context) {
	var req reqdto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.ledgerCommands.Deposit(c.Request.Context(), req.UserID, req.AmountCents)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidDepositAmount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Deposit amount must be positive", nil)
		case errors.Is(err, commands.ErrAccountNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Account not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to deposit", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}

func (h *LedgerHandler) GetBalance(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID", nil)
		return
	}

	view, err := h.ledgerQueries.Balance(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Account not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}
