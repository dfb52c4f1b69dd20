package carnicerias

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns the directory, optionally filtered by city. No distance
// ranking here, ordering is alphabetical.
func (r *PostgresRepository) List(ctx context.Context, ciudad string) ([]Carniceria, error) {
	query := `
		SELECT id, nombre, direccion, ciudad, lat, lng, telefono
		FROM carnicerias
	`
	args := []any{}
	if ciudad != "" {
		query += ` WHERE LOWER(ciudad) = LOWER($1)`
		args = append(args, ciudad)
	}
	query += ` ORDER BY nombre`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Carniceria
	for rows.Next() {
		var c Carniceria
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Direccion, &c.Ciudad, &c.Lat, &c.Lng, &c.Telefono); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
