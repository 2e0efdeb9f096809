package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	authdomain "github.com/lsweb/lsweb-api/internal/auth/domain"
	contactdomain "github.com/lsweb/lsweb-api/internal/contact/domain"
)

// DB is the subset of pgxpool.Pool the store needs; pgxmock satisfies it in
// tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	db DB
}

func NewStore(db DB) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, req *contactdomain.ContactRequest) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO contact_requests
			(id, name, email, phone, company, project_type, budget, timeline, description, created_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, req.ID, req.Name, req.Email, req.Phone, req.Company, req.ProjectType,
		req.Budget, req.Timeline, req.Description, req.CreatedAt, req.Status)
	if err != nil {
		return fmt.Errorf("failed to insert contact request: %w", err)
	}

	return nil
}

func (s *Store) List(ctx context.Context, limit int) ([]contactdomain.ContactRequest, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, email, phone, company, project_type, budget, timeline, description, created_at, status
		FROM contact_requests
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact requests: %w", err)
	}
	defer rows.Close()

	var requests []contactdomain.ContactRequest
	for rows.Next() {
		var req contactdomain.ContactRequest
		err := rows.Scan(&req.ID, &req.Name, &req.Email, &req.Phone, &req.Company,
			&req.ProjectType, &req.Budget, &req.Timeline, &req.Description,
			&req.CreatedAt, &req.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contact requests: %w", err)
	}

	return requests, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*authdomain.User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, created_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`, email)

	var user authdomain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (s *Store) Create(ctx context.Context, user *authdomain.User) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Email, user.PasswordHash, user.Role, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}
