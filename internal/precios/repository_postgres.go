package precios

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrTipoCarneNotFound = errors.New("tipo de carne not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]TipoCarne, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, nombre, categoria, precio_kg
		FROM tipos_carnes
		ORDER BY categoria, nombre
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tipos []TipoCarne
	for rows.Next() {
		var t TipoCarne
		if err := rows.Scan(&t.ID, &t.Nombre, &t.Categoria, &t.PrecioKg); err != nil {
			return nil, err
		}
		tipos = append(tipos, t)
	}
	return tipos, rows.Err()
}

func (r *PostgresRepository) UpdatePrecio(ctx context.Context, id string, precioKg float64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE tipos_carnes
		SET precio_kg = $1
		WHERE id = $2
	`, precioKg, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTipoCarneNotFound
	}
	return nil
}
