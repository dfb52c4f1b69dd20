package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'CLIENTE',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// TIPOS DE CARNES (price table)
	// -------------------------------
	tiposCarnesSQL := `
		CREATE TABLE IF NOT EXISTS tipos_carnes (
			id UUID PRIMARY KEY,
			nombre VARCHAR(100) UNIQUE NOT NULL,
			categoria VARCHAR(20) NOT NULL,
			precio_kg NUMERIC(12,2) NOT NULL DEFAULT 0
		)
	`
	if _, err := db.Exec(ctx, tiposCarnesSQL); err != nil {
		return err
	}

	// -------------------------------
	// CARNICERIAS (donde comprar)
	// -------------------------------
	carniceriasSQL := `
		CREATE TABLE IF NOT EXISTS carnicerias (
			id UUID PRIMARY KEY,
			nombre VARCHAR(255) NOT NULL,
			direccion VARCHAR(255) NOT NULL DEFAULT '',
			ciudad VARCHAR(100) NOT NULL DEFAULT '',
			lat DOUBLE PRECISION NOT NULL DEFAULT 0,
			lng DOUBLE PRECISION NOT NULL DEFAULT 0,
			telefono VARCHAR(50) NOT NULL DEFAULT ''
		)
	`
	if _, err := db.Exec(ctx, carniceriasSQL); err != nil {
		return err
	}

	// -------------------------------
	// PEDIDOS
	// -------------------------------
	pedidosSQL := `
		CREATE TABLE IF NOT EXISTS pedidos (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			estado VARCHAR(50) NOT NULL DEFAULT 'PENDIENTE',
			direccion_entrega VARCHAR(255) NOT NULL,
			ciudad VARCHAR(100) NOT NULL,
			codigo_postal VARCHAR(20) NOT NULL,
			telefono VARCHAR(50) NOT NULL,
			metodo_pago VARCHAR(30) NOT NULL,
			notas TEXT NOT NULL DEFAULT '',
			subtotal NUMERIC(12,2) NOT NULL,
			costo_envio NUMERIC(12,2) NOT NULL,
			total NUMERIC(12,2) NOT NULL,
			fecha_entrega TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, pedidosSQL); err != nil {
		return err
	}

	pedidosItemsSQL := `
		CREATE TABLE IF NOT EXISTS pedidos_items (
			id UUID PRIMARY KEY,
			pedido_id UUID NOT NULL REFERENCES pedidos(id),
			tipo_carne_id UUID NOT NULL REFERENCES tipos_carnes(id),
			cantidad_kg NUMERIC(10,3) NOT NULL,
			precio_unitario NUMERIC(12,2) NOT NULL,
			subtotal NUMERIC(12,2) NOT NULL
		)
	`
	if _, err := db.Exec(ctx, pedidosItemsSQL); err != nil {
		return err
	}

	if err := seedTiposCarnes(db); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}

// seedTiposCarnes inserts the default price rows on first boot. Prices start
// at 0 until an admin sets them; existing rows are never touched.
func seedTiposCarnes(db *pgxpool.Pool) error {
	ctx := context.Background()

	seed := []struct {
		nombre    string
		categoria string
	}{
		{"Asado de Tira", "CARNE"},
		{"Vacío", "CARNE"},
		{"Matambre", "CARNE"},
		{"Entraña", "CARNE"},
		{"Bondiola", "CARNE"},
		{"Colita de Cuadril", "CARNE"},
		{"Chinchulines", "ACHURA"},
		{"Mollejas", "ACHURA"},
		{"Riñones", "ACHURA"},
		{"Chorizo", "EMBUTIDO"},
		{"Morcilla", "EMBUTIDO"},
	}

	for _, s := range seed {
		_, err := db.Exec(ctx, `
			INSERT INTO tipos_carnes (id, nombre, categoria)
			VALUES (gen_random_uuid(), $1, $2)
			ON CONFLICT (nombre) DO NOTHING
		`, s.nombre, s.categoria)
		if err != nil {
			return err
		}
	}
	return nil
}
