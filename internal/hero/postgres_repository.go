package hero

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

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

// Create inserts a new hero record and fills in the generated id.
func (r *PostgresRepository) Create(ctx context.Context, h *Hero) error {
	query := `
		INSERT INTO heroes (name, secret_name, age, team_id, hashed_password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		h.Name,
		h.SecretName,
		h.Age,
		h.TeamID,
		h.HashedPassword,
	).Scan(&h.ID)
	if err != nil {
		return fmt.Errorf("inserting hero: %w", err)
	}

	return nil
}

// GetByID retrieves a single hero by its id.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Hero, error) {
	query := `
		SELECT id, name, secret_name, age, team_id, hashed_password
		FROM heroes
		WHERE id = $1`

	return r.scanOne(ctx, query, id)
}

// List retrieves heroes in insertion order (id order). The limit defaults
// to 100 and is capped at 100; a negative offset is treated as zero.
func (r *PostgresRepository) List(ctx context.Context, offset, limit int) ([]Hero, error) {
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
		SELECT id, name, secret_name, age, team_id, hashed_password
		FROM heroes
		ORDER BY id ASC
		LIMIT $1 OFFSET $2`

	return r.scanMany(ctx, query, limit, offset)
}

// ListByTeamID retrieves all heroes whose team_id matches, in id order.
// Used for relationship expansion on team reads.
func (r *PostgresRepository) ListByTeamID(ctx context.Context, teamID int64) ([]Hero, error) {
	query := `
		SELECT id, name, secret_name, age, team_id, hashed_password
		FROM heroes
		WHERE team_id = $1
		ORDER BY id ASC`

	return r.scanMany(ctx, query, teamID)
}

// Update overwrites only the fields present in UpdateFields. An explicit
// null on age or team_id writes SQL NULL; an unset field is left alone.
// An empty field set degenerates to a plain read.
func (r *PostgresRepository) Update(ctx context.Context, id int64, fields UpdateFields) (*Hero, error) {
	var setClauses []string
	var args []any
	argIdx := 1

	if fields.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *fields.Name)
		argIdx++
	}
	if fields.SecretName != nil {
		setClauses = append(setClauses, fmt.Sprintf("secret_name = $%d", argIdx))
		args = append(args, *fields.SecretName)
		argIdx++
	}
	if fields.Age.Set {
		setClauses = append(setClauses, fmt.Sprintf("age = $%d", argIdx))
		args = append(args, fields.Age.Ptr())
		argIdx++
	}
	if fields.TeamID.Set {
		setClauses = append(setClauses, fmt.Sprintf("team_id = $%d", argIdx))
		args = append(args, fields.TeamID.Ptr())
		argIdx++
	}
	if fields.HashedPassword != nil {
		setClauses = append(setClauses, fmt.Sprintf("hashed_password = $%d", argIdx))
		args = append(args, *fields.HashedPassword)
		argIdx++
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE heroes
		SET %s
		WHERE id = $%d
		RETURNING id, name, secret_name, age, team_id, hashed_password`,
		strings.Join(setClauses, ", "), argIdx)

	return r.scanOne(ctx, query, args...)
}

// Delete removes a hero by id. Returns ErrHeroNotFound if no row existed.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM heroes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting hero: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrHeroNotFound
	}

	return nil
}

// scanOne scans a single Hero row from a query. Returns ErrHeroNotFound if no rows.
func (r *PostgresRepository) scanOne(ctx context.Context, query string, args ...any) (*Hero, error) {
	var h Hero
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&h.ID, &h.Name, &h.SecretName, &h.Age, &h.TeamID, &h.HashedPassword,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHeroNotFound
		}
		return nil, fmt.Errorf("scanning hero row: %w", err)
	}
	return &h, nil
}

func (r *PostgresRepository) scanMany(ctx context.Context, query string, args ...any) ([]Hero, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying heroes: %w", err)
	}
	defer rows.Close()

	var heroes []Hero
	for rows.Next() {
		var h Hero
		err := rows.Scan(&h.ID, &h.Name, &h.SecretName, &h.Age, &h.TeamID, &h.HashedPassword)
		if err != nil {
			return nil, fmt.Errorf("scanning hero row: %w", err)
		}
		heroes = append(heroes, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hero rows: %w", err)
	}

	if heroes == nil {
		heroes = []Hero{}
	}

	return heroes, nil
}
