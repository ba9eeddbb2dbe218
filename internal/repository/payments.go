package repository

import (
	"context"
	"database/sql"

	"ecommerce_back_end/internal/models"
)

type PaymentRepository interface {
	Record(ctx context.Context, payment models.Payment) error
}

type paymentRepoImpl struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepoImpl{db: db}
}

// Record ajoute une ligne au journal des paiements. Aucun lien n'est
// gardé vers l'utilisateur ni vers le panier d'origine.
func (r *paymentRepoImpl) Record(ctx context.Context, payment models.Payment) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO payments (name, address, pincode, mobile_number) VALUES (?, ?, ?, ?)",
		payment.Name, payment.Address, payment.Pincode, payment.MobileNumber,
	)
	return err
}
