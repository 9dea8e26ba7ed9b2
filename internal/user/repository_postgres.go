package user

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	createUsersTableQuery = `
		CREATE TABLE IF NOT EXISTS editor (
			"userId" SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			name TEXT,
			"createAt" TEXT,
			"updateAt" TEXT
		)
	`
	getUserByIDQuery = `
		SELECT "userId", email, password, name, "createAt", "updateAt"
		FROM editor
		WHERE "userId" = $1
	`
	getUserByEmailQuery = `
		SELECT "userId", email, password, name, "createAt", "updateAt"
		FROM editor
		WHERE lower(email) = lower($1)
	`
	insertUserQuery = `
		INSERT INTO editor (email, password, name, "createAt", "updateAt")
		VALUES ($1, $2, $3, $4, $5)
		RETURNING "userId"
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the editor table when it does not exist yet.
func (r *PostgresRepository) EnsureSchema() error {
	if _, err := r.db.Exec(createUsersTableQuery); err != nil {
		return fmt.Errorf("create editor table: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	return r.getOne(getUserByIDQuery, id)
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	return r.getOne(getUserByEmailQuery, email)
}

func (r *PostgresRepository) getOne(query string, arg any) (User, error) {
	user, err := scanUser(r.db.QueryRow(query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

func (r *PostgresRepository) Create(user User) (User, error) {
	var id int
	err := r.db.QueryRow(
		insertUserQuery,
		user.Email,
		user.Password,
		user.Name,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return User{}, ErrEmailExists
		}
		return User{}, fmt.Errorf("insert editor: %w", err)
	}
	user.ID = id
	return user, nil
}

func scanUser(scanner rowScanner) (User, error) {
	user := User{}
	var name sql.NullString
	var createdAt sql.NullString
	var updatedAt sql.NullString

	if err := scanner.Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&name,
		&createdAt,
		&updatedAt,
	); err != nil {
		return User{}, err
	}

	if name.Valid {
		user.Name = name.String
	}
	if createdAt.Valid {
		user.CreatedAt = createdAt.String
	}
	if updatedAt.Valid {
		user.UpdatedAt = updatedAt.String
	}
	return user, nil
}
