package team

import (
	"context"
	"errors"
)

// ErrTeamNotFound is returned when a team record is not found.
var ErrTeamNotFound = errors.New("team not found")

// Repository provides CRUD operations on the teams table.
type Repository interface {
	Create(ctx context.Context, team *Team) error
	GetByID(ctx context.Context, id int64) (*Team, error)
	List(ctx context.Context, offset, limit int) ([]Team, error)
	Update(ctx context.Context, id int64, fields UpdateFields) (*Team, error)
	Delete(ctx context.Context, id int64) error
}
