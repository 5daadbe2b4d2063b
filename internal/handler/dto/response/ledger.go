package response

import (
	"driveshare/internal/domain/booking"
	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BalanceResponse struct {
	UserID       uuid.UUID `json:"userId"`
	BalanceCents int64     `json:"balanceCents"`
	Balance      string    `json:"balance"`
}

func FromBalanceView(rm *queries.BalanceView) *BalanceResponse {
	return &BalanceResponse{
		UserID:       rm.UserID,
		BalanceCents: rm.BalanceCents,
		Balance:      booking.NewMoney(rm.BalanceCents).String(),
	}
}
