package commands

import (
	"context"
	"errors"

	"driveshare/internal/domain/booking"
	"driveshare/internal/infra"
	"driveshare/internal/pkg/errs"
	"driveshare/internal/usecase/queries"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound      = errs.New("account not found")
	ErrInvalidDepositAmount = errs.New("deposit amount must be positive")
)

type LedgerCommands interface {
	// Deposit adds funds to the user's balance and returns the new balance.
	Deposit(ctx context.Context, userID uuid.UUID, amountCents int64) (*queries.BalanceView, error)
}

type ledgerCommandsImpl struct {
	uow           shared.UnitOfWork
	ledgerQueries queries.LedgerQueries
}

func NewLedgerCommands(uow shared.UnitOfWork, ledgerQueries queries.LedgerQueries) LedgerCommands {
	return &ledgerCommandsImpl{
		uow:           uow,
		ledgerQueries: ledgerQueries,
	}
}

func (l *ledgerCommandsImpl) Deposit(ctx context.Context, userID uuid.UUID, amountCents int64) (*queries.BalanceView, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidDepositAmount
	}

	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Ledger().Credit(ctx, tx.DB(), userID, booking.NewMoney(amountCents)); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAccountNotFound
			}
			return errs.Mark(err, ErrPersistenceFailure)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) || errors.Is(err, ErrPersistenceFailure) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrPersistenceFailure)
	}

	view, err := l.ledgerQueries.Balance(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailure)
	}

	return view, nil
}
