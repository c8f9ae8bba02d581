package products

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

/* Products CRUD */

func (r *Repo) Create(ctx context.Context, typeID int64, name, article string, minPartnerPrice, rollWidth float64) (*Product, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (product_type_id, name, article, min_partner_price, roll_width)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, product_type_id, name, article, min_partner_price, roll_width, created_at
	`, typeID, name, article, minPartnerPrice, rollWidth)

	var p Product
	if err := row.Scan(
		&p.ID,
		&p.TypeID,
		&p.Name,
		&p.Article,
		&p.MinPartnerPrice,
		&p.RollWidth,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*Product, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.product_type_id, COALESCE(t.type_name,''), p.name, p.article,
		       p.min_partner_price, p.roll_width, p.created_at
		FROM products p
		LEFT JOIN product_types t ON t.id = p.product_type_id
		WHERE p.id = $1
	`, id)
	var p Product
	if err := row.Scan(
		&p.ID,
		&p.TypeID,
		&p.TypeName,
		&p.Name,
		&p.Article,
		&p.MinPartnerPrice,
		&p.RollWidth,
		&p.CreatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repo) Update(ctx context.Context, id, typeID int64, name, article string, minPartnerPrice, rollWidth float64) (*Product, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE products
		SET product_type_id=$2, name=$3, article=$4, min_partner_price=$5, roll_width=$6
		WHERE id=$1
		RETURNING id, product_type_id, name, article, min_partner_price, roll_width, created_at
	`, id, typeID, name, article, minPartnerPrice, rollWidth)
	var p Product
	if err := row.Scan(
		&p.ID,
		&p.TypeID,
		&p.Name,
		&p.Article,
		&p.MinPartnerPrice,
		&p.RollWidth,
		&p.CreatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Delete удаляет продукт; строки спецификации уходят каскадом.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	return err
}

func (r *Repo) List(ctx context.Context) ([]Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.product_type_id, COALESCE(t.type_name,''), p.name, p.article,
		       p.min_partner_price, p.roll_width, p.created_at
		FROM products p
		LEFT JOIN product_types t ON t.id = p.product_type_id
		ORDER BY p.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.TypeID,
			&p.TypeName,
			&p.Name,
			&p.Article,
			&p.MinPartnerPrice,
			&p.RollWidth,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

/* Product types */

func (r *Repo) ListTypes(ctx context.Context) ([]ProductType, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, type_name, coefficient FROM product_types ORDER BY type_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProductType
	for rows.Next() {
		var t ProductType
		if err := rows.Scan(&t.ID, &t.Name, &t.Coefficient); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
