// Package storage persists completed calculations in Postgres so users
// can look their recent recommendations up with /history.
package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// ErrDisabled is returned when no database is configured.
var ErrDisabled = errors.New("calculation history is disabled")

// Calculation is one persisted recommendation. Nullable columns cover
// branches that never collect the value (turning has no diameter,
// grooving no spindle speed).
type Calculation struct {
	ID           int       `db:"id"`
	ChatID       int64     `db:"chat_id"`
	Material     string    `db:"material"`
	Operation    string    `db:"operation"`
	ToolType     string    `db:"tool_type"`
	ToolSubtype  string    `db:"tool_subtype"`
	Speed        float64   `db:"speed"`
	Feed         float64   `db:"feed"`
	SpindleSpeed *float64  `db:"spindle_speed"`
	Diameter     *float64  `db:"diameter"`
	Teeth        *int      `db:"teeth"`
	DepthOfCut   *float64  `db:"depth_of_cut"`
	CreatedAt    time.Time `db:"created_at"`
}

const schema = `
CREATE TABLE IF NOT EXISTS calculation (
	id            SERIAL PRIMARY KEY,
	chat_id       BIGINT NOT NULL,
	material      TEXT NOT NULL,
	operation     TEXT NOT NULL,
	tool_type     TEXT NOT NULL,
	tool_subtype  TEXT NOT NULL DEFAULT '',
	speed         DOUBLE PRECISION NOT NULL,
	feed          DOUBLE PRECISION NOT NULL,
	spindle_speed DOUBLE PRECISION,
	diameter      DOUBLE PRECISION,
	teeth         INTEGER,
	depth_of_cut  DOUBLE PRECISION,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS calculation_chat_id_idx ON calculation (chat_id, id DESC);
`

// Repository stores calculations. A nil db disables it; every method
// then returns ErrDisabled.
type Repository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewRepository wraps a database handle, which may be nil.
func NewRepository(db *sqlx.DB, logger *zap.Logger) *Repository {
	return &Repository{db: db, logger: logger.Named("storage")}
}

// Enabled reports whether a database is configured.
func (r *Repository) Enabled() bool {
	return r.db != nil
}

// EnsureSchema creates the calculation table if missing.
func (r *Repository) EnsureSchema() error {
	if r.db == nil {
		return ErrDisabled
	}

	if _, err := r.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

// SaveCalculation inserts one completed recommendation.
func (r *Repository) SaveCalculation(c *Calculation) error {
	if r.db == nil {
		return ErrDisabled
	}

	_, err := r.db.NamedExec(`
		INSERT INTO calculation
			(chat_id, material, operation, tool_type, tool_subtype,
			 speed, feed, spindle_speed, diameter, teeth, depth_of_cut)
		VALUES
			(:chat_id, :material, :operation, :tool_type, :tool_subtype,
			 :speed, :feed, :spindle_speed, :diameter, :teeth, :depth_of_cut)
	`, c)
	if err != nil {
		return fmt.Errorf("failed to insert calculation: %w", err)
	}

	return nil
}

// RecentCalculations returns the user's latest calculations, newest
// first.
func (r *Repository) RecentCalculations(chatID int64, limit int) ([]Calculation, error) {
	if r.db == nil {
		return nil, ErrDisabled
	}

	var calcs []Calculation
	err := r.db.Select(&calcs, `
		SELECT id, chat_id, material, operation, tool_type, tool_subtype,
		       speed, feed, spindle_speed, diameter, teeth, depth_of_cut, created_at
		FROM calculation
		WHERE chat_id = $1
		ORDER BY id DESC
		LIMIT $2
	`, chatID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select calculations: %w", err)
	}

	return calcs, nil
}
