package repository

import (
	"context"

	"github.com/iliyamo/gym-management/internal/database"
	"github.com/iliyamo/gym-management/internal/model"
)

type PaymentRepo struct{ gw *Gateway }

func NewPaymentRepo(gw *Gateway) *PaymentRepo { return &PaymentRepo{gw: gw} }

func (r *PaymentRepo) Create(ctx context.Context, p *model.Payment) error {
	id, err := r.gw.Insert(ctx, database.TablePayments,
		F("user_id", p.UserID),
		F("amount", p.Amount),
		F("payment_date", p.PaymentDate),
		F("payment_method", p.Method),
	)
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

func (r *PaymentRepo) GetByID(ctx context.Context, id uint64) (*model.Payment, error) {
	const q = `SELECT payment_id, user_id, amount, payment_date, payment_method FROM payments WHERE payment_id = ?`
	var p model.Payment
	err := r.gw.QueryRow(ctx, Statement{SQL: q, Args: []any{id}},
		&p.ID, &p.UserID, &p.Amount, &p.PaymentDate, &p.Method)
	if err != nil {
		return nil, notFoundOr(err, "payment", id)
	}
	return &p, nil
}
