// Package ledger implementa el libro de socios: asientos firmados e inmutables
// por socio, append-only. El saldo de un socio es la suma corrida de sus
// asientos; las correcciones son asientos nuevos.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/application/dto"
	"github.com/jhoicas/tiktrack-api/internal/domain"
	"github.com/jhoicas/tiktrack-api/internal/domain/costing"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

// UseCase operaciones del libro de socios.
type UseCase struct {
	txRunner   repository.TxRunner
	ownerRepo  repository.OwnerRepository
	ledgerRepo repository.LedgerRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner repository.TxRunner, ownerRepo repository.OwnerRepository, ledgerRepo repository.LedgerRepository) *UseCase {
	return &UseCase{txRunner: txRunner, ownerRepo: ownerRepo, ledgerRepo: ledgerRepo}
}

// Withdraw asienta un retiro de capital del socio: monto positivo de entrada,
// asiento WITHDRAWAL negativo en el libro.
func (uc *UseCase) Withdraw(ctx context.Context, ownerID string, amount decimal.Decimal) (*entity.OwnerLedgerEntry, error) {
	return uc.appendNegative(ctx, ownerID, amount, entity.TxTypeWithdrawal, time.Now().UTC())
}

// RecordPayout asienta un pago hecho al socio en una fecha: monto positivo de
// entrada, asiento PAYOUT negativo (reduce el saldo adeudado).
func (uc *UseCase) RecordPayout(ctx context.Context, ownerID string, amount decimal.Decimal, date time.Time) (*entity.OwnerLedgerEntry, error) {
	return uc.appendNegative(ctx, ownerID, amount, entity.TxTypePayout, date)
}

func (uc *UseCase) appendNegative(ctx context.Context, ownerID string, amount decimal.Decimal, txType string, date time.Time) (*entity.OwnerLedgerEntry, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	var entry *entity.OwnerLedgerEntry
	err := uc.txRunner.Run(ctx, func(tx *repository.Tx) error {
		owner, err := tx.Owners.GetByID(ownerID)
		if err != nil {
			return err
		}
		if owner == nil {
			return domain.ErrNotFound
		}
		entry = &entity.OwnerLedgerEntry{
			ID:              uuid.New().String(),
			OwnerID:         ownerID,
			Amount:          costing.Round2(amount.Neg()),
			TransactionType: txType,
			Date:            date,
		}
		return tx.Ledger.Append(entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Balance devuelve el saldo del socio: Σ Amount de todos sus asientos.
func (uc *UseCase) Balance(ctx context.Context, ownerID string) (decimal.Decimal, error) {
	owner, err := uc.ownerRepo.GetByID(ownerID)
	if err != nil {
		return decimal.Zero, err
	}
	if owner == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	sum, err := uc.ledgerRepo.SumByOwner(ownerID)
	if err != nil {
		return decimal.Zero, err
	}
	return costing.Round2(sum), nil
}

// Payments devuelve el historial de pagos (asientos PAYOUT), más reciente primero.
func (uc *UseCase) Payments(ctx context.Context, limit, offset int) ([]*dto.LedgerEntryResponse, error) {
	payouts, err := uc.ledgerRepo.ListPayouts(limit, offset)
	if err != nil {
		return nil, err
	}
	owners, err := uc.ownerRepo.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(owners))
	for _, o := range owners {
		names[o.ID] = o.Name
	}
	out := make([]*dto.LedgerEntryResponse, 0, len(payouts))
	for _, e := range payouts {
		out = append(out, &dto.LedgerEntryResponse{
			ID:              e.ID,
			OwnerID:         e.OwnerID,
			OwnerName:       names[e.OwnerID],
			Amount:          e.Amount,
			TransactionType: e.TransactionType,
			Date:            dto.FormatDate(e.Date),
		})
	}
	return out, nil
}
