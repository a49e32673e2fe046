package hero

import (
	"context"
	"errors"
)

// ErrHeroNotFound is returned when a hero record is not found.
var ErrHeroNotFound = errors.New("hero not found")

// Repository provides CRUD operations on the heroes table.
type Repository interface {
	Create(ctx context.Context, hero *Hero) error
	GetByID(ctx context.Context, id int64) (*Hero, error)
	List(ctx context.Context, offset, limit int) ([]Hero, error)
	ListByTeamID(ctx context.Context, teamID int64) ([]Hero, error)
	Update(ctx context.Context, id int64, fields UpdateFields) (*Hero, error)
	Delete(ctx context.Context, id int64) error
}
