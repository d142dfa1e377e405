package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kvm55/Covey/internal/domain/model"
	"github.com/kvm55/Covey/internal/domain/valueobject"
	pkgpostgres "github.com/kvm55/Covey/pkg/postgres"
)

const scenarioColumns = `
	id, property_id, unit_id, name, strategy_type,
	inputs, results, is_primary, created_at, updated_at`

// ScenarioRepo implements port.ScenarioRepository.
type ScenarioRepo struct {
	pool *pgxpool.Pool
}

// NewScenarioRepo creates a new PostgreSQL-backed scenario repository.
func NewScenarioRepo(pool *pgxpool.Pool) *ScenarioRepo {
	return &ScenarioRepo{pool: pool}
}

// Save upserts a scenario. Saving a primary scenario demotes any other
// primary of the same property in the same transaction.
func (r *ScenarioRepo) Save(ctx context.Context, s model.Scenario) error {
	inputs, err := json.Marshal(s.Inputs())
	if err != nil {
		return fmt.Errorf("encode inputs: %w", err)
	}
	results, err := json.Marshal(s.Results())
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if s.IsPrimary() {
			_, err := tx.Exec(ctx, `
				UPDATE underwriting_scenarios
				SET is_primary = FALSE, updated_at = $3
				WHERE property_id = $1 AND id <> $2 AND is_primary`,
				s.PropertyID(), s.ID(), s.UpdatedAt(),
			)
			if err != nil {
				return fmt.Errorf("demote siblings: %w", err)
			}
		}

		query := `
			INSERT INTO underwriting_scenarios (` + scenarioColumns + `)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
			ON CONFLICT (id) DO UPDATE SET
				name          = EXCLUDED.name,
				strategy_type = EXCLUDED.strategy_type,
				inputs        = EXCLUDED.inputs,
				results       = EXCLUDED.results,
				is_primary    = EXCLUDED.is_primary,
				updated_at    = EXCLUDED.updated_at
		`
		_, err := tx.Exec(ctx, query,
			s.ID(), s.PropertyID(), s.UnitID(), s.Name(), s.StrategyType().String(),
			inputs, results, s.IsPrimary(), s.CreatedAt(), s.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("save scenario: %w", err)
		}
		return nil
	})
}

// FindByID retrieves a scenario by ID.
func (r *ScenarioRepo) FindByID(ctx context.Context, id uuid.UUID) (model.Scenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM underwriting_scenarios WHERE id = $1`
	return scanScenario(r.pool.QueryRow(ctx, query, id))
}

// ListByProperty returns the primary scenario first, then the rest oldest first.
func (r *ScenarioRepo) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]model.Scenario, error) {
	query := `
		SELECT ` + scenarioColumns + `
		FROM underwriting_scenarios
		WHERE property_id = $1
		ORDER BY is_primary DESC, created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("query scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []model.Scenario
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, rows.Err()
}

// FindPrimary retrieves the primary scenario of a property.
func (r *ScenarioRepo) FindPrimary(ctx context.Context, propertyID uuid.UUID) (model.Scenario, error) {
	query := `
		SELECT ` + scenarioColumns + `
		FROM underwriting_scenarios
		WHERE property_id = $1 AND is_primary
	`
	return scanScenario(r.pool.QueryRow(ctx, query, propertyID))
}

// Delete removes a scenario.
func (r *ScenarioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM underwriting_scenarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete scenario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrScenarioNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

type scannable interface {
	Scan(dest ...any) error
}

func scanScenario(s scannable) (model.Scenario, error) {
	var (
		id, propertyID       uuid.UUID
		unitID               *uuid.UUID
		name, strategyStr    string
		inputsRaw, resultRaw []byte
		isPrimary            bool
		createdAt, updatedAt time.Time
	)

	err := s.Scan(
		&id, &propertyID, &unitID, &name, &strategyStr,
		&inputsRaw, &resultRaw, &isPrimary, &createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Scenario{}, model.ErrScenarioNotFound
	}
	if err != nil {
		return model.Scenario{}, fmt.Errorf("scan scenario: %w", err)
	}

	strategy, err := valueobject.NewStrategyType(strategyStr)
	if err != nil {
		return model.Scenario{}, fmt.Errorf("parse strategy type: %w", err)
	}

	var inputs model.PropertyInputs
	if err := json.Unmarshal(inputsRaw, &inputs); err != nil {
		return model.Scenario{}, fmt.Errorf("decode inputs: %w", err)
	}
	var results model.UnderwritingResults
	if err := json.Unmarshal(resultRaw, &results); err != nil {
		return model.Scenario{}, fmt.Errorf("decode results: %w", err)
	}

	return model.ReconstructScenario(
		id, propertyID, unitID, name, strategy,
		inputs, results, isPrimary, createdAt, updatedAt,
	), nil
}
