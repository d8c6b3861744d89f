package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/shift-assign/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// MemberRepository captures persistence operations needed by handlers.
type MemberRepository interface {
	ListMembers(ctx context.Context) ([]models.Member, error)
	CreateMember(ctx context.Context, member models.Member) (models.Member, error)
	DeleteMember(ctx context.Context, id int64) error
	Close()
}
