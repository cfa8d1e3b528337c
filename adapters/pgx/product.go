package pgx

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/candlewick/storefront/core"
)

func (a *Adapter) CreateProduct(ctx context.Context, product *core.Product) error {
	query := `INSERT INTO products (id, name, description, price, category, tags)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING created_at, updated_at`

	var createdAt, updatedAt time.Time
	err := a.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Category, product.Tags,
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		return err
	}

	product.CreatedAt = createdAt
	product.UpdatedAt = updatedAt
	return nil
}

func (a *Adapter) GetProductByID(ctx context.Context, id string) (*core.Product, error) {
	q := `SELECT id, name, description, price, category, tags, created_at, updated_at
	      FROM products WHERE id = $1`
	return a.scanProduct(a.pool.QueryRow(ctx, q, id))
}

// ListProducts returns one page of products, newest first, plus the total
// count matching the filters. Category and tag filters are case-insensitive
// substring matches; a product matches a tag filter when any one of its tags
// matches any requested tag.
func (a *Adapter) ListProducts(ctx context.Context, opts core.ListOptions) ([]*core.Product, int, error) {
	var conditions []string
	var args []any

	if opts.Category != "" {
		args = append(args, "%"+opts.Category+"%")
		conditions = append(conditions, fmt.Sprintf("category ILIKE $%d", len(args)))
	}
	if len(opts.Tags) > 0 {
		var tagConds []string
		for _, tag := range opts.Tags {
			args = append(args, "%"+tag+"%")
			tagConds = append(tagConds, fmt.Sprintf(
				"EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE $%d)", len(args)))
		}
		conditions = append(conditions, "("+strings.Join(tagConds, " OR ")+")")
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := a.pool.QueryRow(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageArgs := append(args, opts.Limit, (opts.Page-1)*opts.Limit)
	q := fmt.Sprintf(`SELECT id, name, description, price, category, tags, created_at, updated_at
	      FROM products%s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)

	rows, err := a.pool.Query(ctx, q, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []*core.Product
	for rows.Next() {
		product := &core.Product{}
		err := rows.Scan(
			&product.ID, &product.Name, &product.Description, &product.Price,
			&product.Category, &product.Tags, &product.CreatedAt, &product.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (a *Adapter) UpdateProduct(ctx context.Context, product *core.Product) error {
	q := `UPDATE products SET name = $1, description = $2, price = $3, category = $4, tags = $5, updated_at = now()
	      WHERE id = $6
	      RETURNING updated_at`

	var updatedAt time.Time
	err := a.pool.QueryRow(ctx, q,
		product.Name, product.Description, product.Price, product.Category, product.Tags, product.ID,
	).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return core.ErrProductNotFound
		}
		return err
	}
	product.UpdatedAt = updatedAt
	return nil
}

func (a *Adapter) DeleteProduct(ctx context.Context, id string) error {
	tag, err := a.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrProductNotFound
	}
	return nil
}

func (a *Adapter) scanProduct(row pgx.Row) (*core.Product, error) {
	product := &core.Product{}
	err := row.Scan(
		&product.ID, &product.Name, &product.Description, &product.Price,
		&product.Category, &product.Tags, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}
