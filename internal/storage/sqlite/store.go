package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hongminglow/shift-assign/internal/models"
	"github.com/hongminglow/shift-assign/internal/storage"
	_ "modernc.org/sqlite"
)

var _ storage.MemberRepository = (*Store)(nil)

// Store provides SQLite-backed persistence for members.
type Store struct {
	db *sql.DB
}

// NewMemberStore opens the database at dsn and runs migrations.
// Use ":memory:" for a throwaway store.
func NewMemberStore(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Each connection to ":memory:" is its own database.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	const stmt = `
	CREATE TABLE IF NOT EXISTS members (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		assigned_hours REAL NOT NULL DEFAULT 40,
		leave_hours REAL NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'Active' CHECK (status IN ('Active', 'Red Flag')),
		created_at TEXT NOT NULL
	)`
	if _, err := s.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// ListMembers returns every member ordered by id.
func (s *Store) ListMembers(ctx context.Context) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, phone, assigned_hours, leave_hours, status, created_at
		FROM members ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := make([]models.Member, 0)
	for rows.Next() {
		var m models.Member
		var status, createdAt string
		if err := rows.Scan(&m.ID, &m.Name, &m.Phone, &m.AssignedHours, &m.LeaveHours, &status, &createdAt); err != nil {
			return nil, fmt.Errorf("list members: %w", err)
		}
		m.Status = models.Status(status)
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

// CreateMember inserts a new member row.
func (s *Store) CreateMember(ctx context.Context, member models.Member) (models.Member, error) {
	now := time.Now().UTC().Truncate(time.Second)
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO members (name, phone, assigned_hours, leave_hours, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		member.Name,
		member.Phone,
		member.AssignedHours,
		member.LeaveHours,
		string(member.Status),
		now.Format(time.RFC3339),
	)
	if err != nil {
		return models.Member{}, fmt.Errorf("create member: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Member{}, fmt.Errorf("create member: %w", err)
	}
	member.ID = id
	member.CreatedAt = now
	return member, nil
}

// DeleteMember removes a member by id.
func (s *Store) DeleteMember(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
