package shoe

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	createShoeTableQuery = `
		CREATE TABLE IF NOT EXISTS shoe (
			shoe_id SERIAL PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			image_src TEXT,
			price NUMERIC(10,2) NOT NULL,
			sale_price NUMERIC(10,2),
			release_date TIMESTAMPTZ NOT NULL,
			num_of_colors INT NOT NULL DEFAULT 0,
			created_at TEXT,
			updated_at TEXT
		)
	`
	listShoesQuery = `
		SELECT shoe_id, slug, name, image_src, price, sale_price, release_date, num_of_colors, created_at, updated_at
		FROM shoe
		ORDER BY shoe_id
	`
	getShoeBySlugQuery = `
		SELECT shoe_id, slug, name, image_src, price, sale_price, release_date, num_of_colors, created_at, updated_at
		FROM shoe
		WHERE slug = $1
	`
	listShoesBySlugsQuery = `
		SELECT shoe_id, slug, name, image_src, price, sale_price, release_date, num_of_colors, created_at, updated_at
		FROM shoe
		WHERE slug = ANY($1::text[])
		ORDER BY shoe_id
	`
	insertShoeQuery = `
		INSERT INTO shoe (slug, name, image_src, price, sale_price, release_date, num_of_colors, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING shoe_id
	`
	updateShoeQuery = `
		UPDATE shoe
		SET name = $1,
			image_src = $2,
			price = $3,
			sale_price = $4,
			release_date = $5,
			num_of_colors = $6,
			updated_at = $7
		WHERE slug = $8
	`
	deleteShoeQuery = `DELETE FROM shoe WHERE slug = $1`

	uniqueViolation = "23505"
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the shoe table when it does not exist yet.
func (r *PostgresRepository) EnsureSchema() error {
	if _, err := r.db.Exec(createShoeTableQuery); err != nil {
		return fmt.Errorf("create shoe table: %w", err)
	}
	return nil
}

// List skips rows that fail to scan, same as the other list endpoints; a failing query
// yields an empty list.
func (r *PostgresRepository) List() []Shoe {
	rows, err := r.db.Query(listShoesQuery)
	if err != nil {
		return []Shoe{}
	}
	defer rows.Close()

	out := make([]Shoe, 0)
	for rows.Next() {
		s, err := scanShoe(rows)
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (r *PostgresRepository) GetBySlug(slug string) (Shoe, error) {
	s, err := scanShoe(r.db.QueryRow(getShoeBySlugQuery, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Shoe{}, ErrNotFound
		}
		return Shoe{}, fmt.Errorf("get shoe %q: %w", slug, err)
	}
	return s, nil
}

func (r *PostgresRepository) ListBySlugs(slugs []string) ([]Shoe, error) {
	if len(slugs) == 0 {
		return []Shoe{}, nil
	}
	rows, err := r.db.Query(listShoesBySlugsQuery, pq.Array(slugs))
	if err != nil {
		return nil, fmt.Errorf("list shoes by slug: %w", err)
	}
	defer rows.Close()

	out := make([]Shoe, 0, len(slugs))
	for rows.Next() {
		s, err := scanShoe(rows)
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(s Shoe) (Shoe, error) {
	var id int
	err := r.db.QueryRow(
		insertShoeQuery,
		s.Slug,
		s.Name,
		s.ImageSrc,
		s.Price,
		nullDecimal(s.SalePrice),
		s.ReleaseDate,
		s.NumOfColors,
		s.CreatedAt,
		s.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return Shoe{}, ErrSlugExists
		}
		return Shoe{}, fmt.Errorf("insert shoe %q: %w", s.Slug, err)
	}
	s.ID = id
	return s, nil
}

func (r *PostgresRepository) Update(slug string, s Shoe) (Shoe, error) {
	result, err := r.db.Exec(
		updateShoeQuery,
		s.Name,
		s.ImageSrc,
		s.Price,
		nullDecimal(s.SalePrice),
		s.ReleaseDate,
		s.NumOfColors,
		s.UpdatedAt,
		slug,
	)
	if err != nil {
		return Shoe{}, fmt.Errorf("update shoe %q: %w", slug, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Shoe{}, err
	}
	if affected == 0 {
		return Shoe{}, ErrNotFound
	}
	return r.GetBySlug(slug)
}

func (r *PostgresRepository) Delete(slug string) error {
	result, err := r.db.Exec(deleteShoeQuery, slug)
	if err != nil {
		return fmt.Errorf("delete shoe %q: %w", slug, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reset deletes all shoes and inserts the provided list in a single transaction.
func (r *PostgresRepository) Reset(shoes []Shoe) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM shoe`); err != nil {
		return fmt.Errorf("clear shoes: %w", err)
	}

	for _, s := range shoes {
		var id int
		err := tx.QueryRow(insertShoeQuery,
			s.Slug,
			s.Name,
			s.ImageSrc,
			s.Price,
			nullDecimal(s.SalePrice),
			s.ReleaseDate,
			s.NumOfColors,
			s.CreatedAt,
			s.UpdatedAt,
		).Scan(&id)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrSlugExists
			}
			return fmt.Errorf("insert shoe %q: %w", s.Slug, err)
		}
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShoe(scanner rowScanner) (Shoe, error) {
	s := Shoe{}
	var (
		imageSrc  sql.NullString
		salePrice decimal.NullDecimal
		createdAt sql.NullString
		updatedAt sql.NullString
	)

	if err := scanner.Scan(
		&s.ID,
		&s.Slug,
		&s.Name,
		&imageSrc,
		&s.Price,
		&salePrice,
		&s.ReleaseDate,
		&s.NumOfColors,
		&createdAt,
		&updatedAt,
	); err != nil {
		return Shoe{}, err
	}

	if imageSrc.Valid {
		s.ImageSrc = imageSrc.String
	}
	if salePrice.Valid {
		v := salePrice.Decimal
		s.SalePrice = &v
	}
	if createdAt.Valid {
		s.CreatedAt = &createdAt.String
	}
	if updatedAt.Valid {
		s.UpdatedAt = &updatedAt.String
	}
	return s, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
