package calc

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo — реализация Store поверх Postgres.
type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) ProductTypeCoefficient(ctx context.Context, productTypeID int64) (float64, bool, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT coefficient FROM product_types WHERE id = $1
	`, productTypeID)
	var c float64
	if err := row.Scan(&c); err != nil {
		if err == pgx.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, err
	}
	return c, true, nil
}

func (r *Repo) MaterialDefectRate(ctx context.Context, materialID int64) (float64, bool, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT mt.defect_rate
		FROM materials m
		JOIN material_types mt ON mt.type_name = m.material_type
		WHERE m.id = $1
	`, materialID)
	var d float64
	if err := row.Scan(&d); err != nil {
		if err == pgx.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, err
	}
	return d, true, nil
}

func (r *Repo) ProductPricing(ctx context.Context, productID int64) (*ProductPricing, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT min_partner_price, roll_width FROM products WHERE id = $1
	`, productID)
	var p ProductPricing
	if err := row.Scan(&p.MinPartnerPrice, &p.RollWidth); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repo) ProductMaterials(ctx context.Context, productID int64) ([]BOMItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT m.unit_price, pm.required_quantity
		FROM product_materials pm
		JOIN materials m ON m.id = pm.material_id
		WHERE pm.product_id = $1
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BOMItem
	for rows.Next() {
		var it BOMItem
		if err := rows.Scan(&it.UnitPrice, &it.RequiredQty); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
