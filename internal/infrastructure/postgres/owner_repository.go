package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tiktrack-api/internal/domain"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

var _ repository.OwnerRepository = (*OwnerRepo)(nil)

// OwnerRepo implementación de OwnerRepository sobre PostgreSQL (usable con pool o tx).
type OwnerRepo struct {
	q Querier
}

// NewOwnerRepository construye el adaptador de socios. Pasar pool o tx (Querier).
func NewOwnerRepository(q Querier) *OwnerRepo {
	return &OwnerRepo{q: q}
}

// Create persiste un nuevo socio.
func (r *OwnerRepo) Create(owner *entity.Owner) error {
	query := `INSERT INTO owners (id, name, equity_percentage) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, owner.ID, owner.Name, owner.EquityPercentage)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert owner: %w", err)
	}
	return nil
}

// GetByID obtiene un socio por ID.
func (r *OwnerRepo) GetByID(id string) (*entity.Owner, error) {
	query := `SELECT id, name, equity_percentage FROM owners WHERE id = $1`
	var o entity.Owner
	err := r.q.QueryRow(context.Background(), query, id).Scan(&o.ID, &o.Name, &o.EquityPercentage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get owner: %w", err)
	}
	return &o, nil
}

// List devuelve todos los socios.
func (r *OwnerRepo) List() ([]*entity.Owner, error) {
	query := `SELECT id, name, equity_percentage FROM owners ORDER BY name, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	defer rows.Close()
	var list []*entity.Owner
	for rows.Next() {
		var o entity.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.EquityPercentage); err != nil {
			return nil, fmt.Errorf("scan owner: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// SetProductEquity inserta o actualiza la participación de un socio en un producto.
func (r *OwnerRepo) SetProductEquity(eq *entity.ProductEquity) error {
	query := `
		INSERT INTO product_equities (id, owner_id, product_id, equity_percentage)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (owner_id, product_id)
		DO UPDATE SET equity_percentage = EXCLUDED.equity_percentage`
	_, err := r.q.Exec(context.Background(), query, eq.ID, eq.OwnerID, eq.ProductID, eq.EquityPercentage)
	if err != nil {
		return fmt.Errorf("upsert product equity: %w", err)
	}
	return nil
}

// ListEquitiesByProduct devuelve las participaciones explícitas de un producto.
func (r *OwnerRepo) ListEquitiesByProduct(productID string) ([]*entity.ProductEquity, error) {
	query := `
		SELECT id, owner_id, product_id, equity_percentage
		FROM product_equities WHERE product_id = $1 ORDER BY owner_id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product equities: %w", err)
	}
	defer rows.Close()
	return scanEquities(rows)
}

// ListAllEquities devuelve todas las participaciones por producto.
func (r *OwnerRepo) ListAllEquities() ([]*entity.ProductEquity, error) {
	query := `
		SELECT id, owner_id, product_id, equity_percentage
		FROM product_equities ORDER BY product_id, owner_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all equities: %w", err)
	}
	defer rows.Close()
	return scanEquities(rows)
}

func scanEquities(rows pgx.Rows) ([]*entity.ProductEquity, error) {
	var list []*entity.ProductEquity
	for rows.Next() {
		var eq entity.ProductEquity
		if err := rows.Scan(&eq.ID, &eq.OwnerID, &eq.ProductID, &eq.EquityPercentage); err != nil {
			return nil, fmt.Errorf("scan product equity: %w", err)
		}
		list = append(list, &eq)
	}
	return list, rows.Err()
}
