package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hongminglow/shift-assign/internal/models"
	"github.com/hongminglow/shift-assign/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure Store satisfies the storage.MemberRepository interface at compile time.
var _ storage.MemberRepository = (*Store)(nil)

// Store provides Postgres-backed persistence for members.
type Store struct {
	pool *pgxpool.Pool
}

// NewMemberStore creates a new Store and runs migrations.
func NewMemberStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS members (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			assigned_hours DOUBLE PRECISION NOT NULL DEFAULT 40,
			leave_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'Active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`ALTER TABLE members DROP CONSTRAINT IF EXISTS members_status_check;`,
		`ALTER TABLE members ADD CONSTRAINT members_status_check CHECK (status IN ('Active', 'Red Flag'));`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// ListMembers returns every member ordered by id.
func (s *Store) ListMembers(ctx context.Context) ([]models.Member, error) {
	const query = `
	SELECT id, name, phone, assigned_hours, leave_hours, status, created_at
	FROM members
	ORDER BY id;
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := make([]models.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

// CreateMember inserts a new member row.
func (s *Store) CreateMember(ctx context.Context, member models.Member) (models.Member, error) {
	const query = `
	INSERT INTO members (name, phone, assigned_hours, leave_hours, status)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, name, phone, assigned_hours, leave_hours, status, created_at;
	`
	row := s.pool.QueryRow(ctx, query, member.Name, member.Phone, member.AssignedHours, member.LeaveHours, string(member.Status))
	created, err := scanMember(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return models.Member{}, fmt.Errorf("create member: invalid status %q", member.Status)
		}
		return models.Member{}, fmt.Errorf("create member: %w", err)
	}
	return created, nil
}

// DeleteMember removes a member by id.
func (s *Store) DeleteMember(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM members WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanMember(row pgx.Row) (models.Member, error) {
	var m models.Member
	var status string
	if err := row.Scan(&m.ID, &m.Name, &m.Phone, &m.AssignedHours, &m.LeaveHours, &status, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Member{}, storage.ErrNotFound
		}
		return models.Member{}, err
	}
	m.Status = models.Status(status)
	return m, nil
}
