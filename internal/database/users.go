package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gospors/gospors/internal/domain"
)

// Users is the member directory used by login, the layout and Discover.
type Users interface {
	Upsert(ctx context.Context, id domain.Identity) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.User, error)
	Health(ctx context.Context) error
}

const userColumns = `id, provider, subject, email, full_name, avatar_url, created_at, updated_at`

// PostgresUsers implements Users on PostgreSQL.
type PostgresUsers struct {
	db *DB
}

var _ Users = (*PostgresUsers)(nil)

// NewPostgresUsers returns a PostgreSQL-backed member directory.
func NewPostgresUsers(db *DB) *PostgresUsers {
	return &PostgresUsers{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Provider, &u.Subject, &u.Email, &u.FullName, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Upsert creates the member on first login and refreshes the profile afterwards.
func (p *PostgresUsers) Upsert(ctx context.Context, id domain.Identity) (*domain.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	row := p.db.Pool.QueryRow(ctx, `
		INSERT INTO users (id, provider, subject, email, full_name, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (provider, subject) DO UPDATE SET
			email      = EXCLUDED.email,
			full_name  = EXCLUDED.full_name,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = now()
		RETURNING `+userColumns,
		uuid.New(), id.Provider, id.Subject, id.Email, id.FullName, id.AvatarURL,
	)

	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return u, nil
}

// GetByID returns domain.ErrUserNotFound for unknown IDs.
func (p *PostgresUsers) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := p.db.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	u, err := scanUser(row)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// ListRecent returns the most recently joined members first.
func (p *PostgresUsers) ListRecent(ctx context.Context, limit int) ([]*domain.User, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := p.db.Pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Health pings the database.
func (p *PostgresUsers) Health(ctx context.Context) error {
	return p.db.Health(ctx)
}
