package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kvm55/Covey/internal/domain/model"
	"github.com/kvm55/Covey/internal/domain/valueobject"
	pkgpostgres "github.com/kvm55/Covey/pkg/postgres"
)

// PropertyRepo implements port.PropertySummaryRepository against the
// properties table.
type PropertyRepo struct {
	db pkgpostgres.Querier
}

// NewPropertyRepo accepts a pool or a transaction.
func NewPropertyRepo(db pkgpostgres.Querier) *PropertyRepo {
	return &PropertyRepo{db: db}
}

// SaveSummary writes the primary-scenario summary onto the property row,
// creating the row if the property is not known yet.
func (r *PropertyRepo) SaveSummary(ctx context.Context, s model.PropertySummary) error {
	query := `
		INSERT INTO properties (
			id, price, cap_rate, irr, equity_multiple, type, fund_strategy,
			bedrooms, bathrooms, square_feet, renovations, reserves, debt_costs,
			equity, ltc, interest_rate, amortization, exit_cap_rate,
			net_sale_proceeds, profit_multiple, in_place_rent, stabilized_rent,
			noi_margin, dscr, financing_source, updated_at
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,
			$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26
		)
		ON CONFLICT (id) DO UPDATE SET
			price             = EXCLUDED.price,
			cap_rate          = EXCLUDED.cap_rate,
			irr               = EXCLUDED.irr,
			equity_multiple   = EXCLUDED.equity_multiple,
			type              = EXCLUDED.type,
			fund_strategy     = EXCLUDED.fund_strategy,
			bedrooms          = EXCLUDED.bedrooms,
			bathrooms         = EXCLUDED.bathrooms,
			square_feet       = EXCLUDED.square_feet,
			renovations       = EXCLUDED.renovations,
			reserves          = EXCLUDED.reserves,
			debt_costs        = EXCLUDED.debt_costs,
			equity            = EXCLUDED.equity,
			ltc               = EXCLUDED.ltc,
			interest_rate     = EXCLUDED.interest_rate,
			amortization      = EXCLUDED.amortization,
			exit_cap_rate     = EXCLUDED.exit_cap_rate,
			net_sale_proceeds = EXCLUDED.net_sale_proceeds,
			profit_multiple   = EXCLUDED.profit_multiple,
			in_place_rent     = EXCLUDED.in_place_rent,
			stabilized_rent   = EXCLUDED.stabilized_rent,
			noi_margin        = EXCLUDED.noi_margin,
			dscr              = EXCLUDED.dscr,
			financing_source  = EXCLUDED.financing_source,
			updated_at        = EXCLUDED.updated_at
	`
	_, err := r.db.Exec(ctx, query,
		s.PropertyID, s.Price, s.CapRate, s.IRR, s.EquityMultiple, s.Type, string(s.FundStrategy),
		s.Bedrooms, s.Bathrooms, s.SquareFeet, s.Renovations, s.Reserves, s.DebtCosts,
		s.Equity, s.LTC, s.InterestRate, s.Amortization, s.ExitCapRate,
		s.NetSaleProceeds, s.ProfitMultiple, s.InPlaceRent, s.StabilizedRent,
		s.NOIMargin, s.DSCR, s.FinancingSource, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save property summary: %w", err)
	}
	return nil
}

// FindSummary reads the summary columns of a property. Columns never written
// read as zero.
func (r *PropertyRepo) FindSummary(ctx context.Context, propertyID uuid.UUID) (model.PropertySummary, error) {
	query := `
		SELECT id,
		       COALESCE(price, 0), COALESCE(cap_rate, 0), COALESCE(irr, 0),
		       COALESCE(equity_multiple, 0), COALESCE(type, ''), COALESCE(fund_strategy, ''),
		       COALESCE(bedrooms, 0), COALESCE(bathrooms, 0), COALESCE(square_feet, 0),
		       COALESCE(renovations, 0), COALESCE(reserves, 0), COALESCE(debt_costs, 0),
		       COALESCE(equity, 0), COALESCE(ltc, 0), COALESCE(interest_rate, 0),
		       COALESCE(amortization, 0), COALESCE(exit_cap_rate, 0),
		       COALESCE(net_sale_proceeds, 0), COALESCE(profit_multiple, 0),
		       COALESCE(in_place_rent, 0), COALESCE(stabilized_rent, 0),
		       COALESCE(noi_margin, 0), COALESCE(dscr, 0), financing_source, updated_at
		FROM properties
		WHERE id = $1
	`
	var (
		s        model.PropertySummary
		strategy string
	)
	err := r.db.QueryRow(ctx, query, propertyID).Scan(
		&s.PropertyID, &s.Price, &s.CapRate, &s.IRR,
		&s.EquityMultiple, &s.Type, &strategy,
		&s.Bedrooms, &s.Bathrooms, &s.SquareFeet,
		&s.Renovations, &s.Reserves, &s.DebtCosts,
		&s.Equity, &s.LTC, &s.InterestRate,
		&s.Amortization, &s.ExitCapRate,
		&s.NetSaleProceeds, &s.ProfitMultiple,
		&s.InPlaceRent, &s.StabilizedRent,
		&s.NOIMargin, &s.DSCR, &s.FinancingSource, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.PropertySummary{}, model.ErrPropertyNotFound
	}
	if err != nil {
		return model.PropertySummary{}, fmt.Errorf("scan property summary: %w", err)
	}

	s.FundStrategy = valueobject.FundStrategy(strategy)
	return s, nil
}
