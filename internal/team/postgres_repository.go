package team

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Listing caps mirror the API contract: callers never get more than 100 rows.
const (
	defaultListLimit = 100
	maxListLimit     = 100
)

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new team record and fills in the generated id.
func (r *PostgresRepository) Create(ctx context.Context, t *Team) error {
	query := `
		INSERT INTO teams (name, headquarters)
		VALUES ($1, $2)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query, t.Name, t.Headquarters).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("inserting team: %w", err)
	}

	return nil
}

// GetByID retrieves a single team by its id.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Team, error) {
	query := `
		SELECT id, name, headquarters
		FROM teams
		WHERE id = $1`

	return r.scanOne(ctx, query, id)
}

// List retrieves teams in insertion order (ids are assigned monotonically,
// so id order is insertion order). The limit defaults to 100 and is capped
// at 100; a negative offset is treated as zero.
func (r *PostgresRepository) List(ctx context.Context, offset, limit int) ([]Team, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	query := `
		SELECT id, name, headquarters
		FROM teams
		ORDER BY id ASC
		LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Headquarters); err != nil {
			return nil, fmt.Errorf("scanning team row: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team rows: %w", err)
	}

	if teams == nil {
		teams = []Team{}
	}

	return teams, nil
}

// Update overwrites only the fields present in UpdateFields. An empty field
// set degenerates to a plain read.
func (r *PostgresRepository) Update(ctx context.Context, id int64, fields UpdateFields) (*Team, error) {
	var setClauses []string
	var args []any
	argIdx := 1

	if fields.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *fields.Name)
		argIdx++
	}
	if fields.Headquarters != nil {
		setClauses = append(setClauses, fmt.Sprintf("headquarters = $%d", argIdx))
		args = append(args, *fields.Headquarters)
		argIdx++
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE teams
		SET %s
		WHERE id = $%d
		RETURNING id, name, headquarters`,
		strings.Join(setClauses, ", "), argIdx)

	return r.scanOne(ctx, query, args...)
}

// Delete removes a team by id. Returns ErrTeamNotFound if no row existed.
// Heroes referencing the team are left as they are; their team_id dangles.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting team: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTeamNotFound
	}

	return nil
}

// scanOne scans a single Team row from a query. Returns ErrTeamNotFound if no rows.
func (r *PostgresRepository) scanOne(ctx context.Context, query string, args ...any) (*Team, error) {
	var t Team
	err := r.pool.QueryRow(ctx, query, args...).Scan(&t.ID, &t.Name, &t.Headquarters)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("scanning team row: %w", err)
	}
	return &t, nil
}
