package materials

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) GetByID(ctx context.Context, id int64) (*Material, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, material_type, unit_price, stock_qty, created_at
		FROM materials
		WHERE id = $1
	`, id)
	var m Material
	if err := row.Scan(&m.ID, &m.Name, &m.TypeName, &m.UnitPrice, &m.StockQty, &m.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *Repo) List(ctx context.Context) ([]Material, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, material_type, unit_price, stock_qty, created_at
		FROM materials
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Material
	for rows.Next() {
		var m Material
		if err := rows.Scan(&m.ID, &m.Name, &m.TypeName, &m.UnitPrice, &m.StockQty, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ListForProduct возвращает спецификацию продукта. Пустой список — у продукта
// просто нет записанных материалов.
func (r *Repo) ListForProduct(ctx context.Context, productID int64) ([]BOMRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT m.id, m.name, m.unit_price, pm.required_quantity
		FROM product_materials pm
		JOIN materials m ON m.id = pm.material_id
		WHERE pm.product_id = $1
		ORDER BY m.name
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BOMRow
	for rows.Next() {
		var b BOMRow
		if err := rows.Scan(&b.MaterialID, &b.Name, &b.UnitPrice, &b.RequiredQty); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpsertLink записывает норму расхода материала на единицу продукта.
func (r *Repo) UpsertLink(ctx context.Context, productID, materialID int64, requiredQty float64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO product_materials (product_id, material_id, required_quantity)
		VALUES ($1,$2,$3)
		ON CONFLICT (product_id, material_id)
		DO UPDATE SET required_quantity = EXCLUDED.required_quantity
	`, productID, materialID, requiredQty)
	return err
}

func (r *Repo) DeleteLink(ctx context.Context, productID, materialID int64) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM product_materials WHERE product_id=$1 AND material_id=$2
	`, productID, materialID)
	return err
}

func (r *Repo) ListTypes(ctx context.Context) ([]MaterialType, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT type_name, defect_rate FROM material_types ORDER BY type_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MaterialType
	for rows.Next() {
		var t MaterialType
		if err := rows.Scan(&t.Name, &t.DefectRate); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
