package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Lexv0lk/stregsystem/internal/pkg/database"
	"github.com/Lexv0lk/stregsystem/internal/store/domain"
	"github.com/jackc/pgx/v5"
)

const purchasableCondition = `active = true AND (deactivate_after_timestamp IS NULL OR deactivate_after_timestamp > now())`

type ProductsRepository struct {
	querier database.Querier
}

func NewProductsRepository(querier database.Querier) *ProductsRepository {
	return &ProductsRepository{
		querier: querier,
	}
}

// ResolveProductID treats a plain non-negative integer as a literal product
// id without checking it exists. Anything else is looked up as an alias.
func (pr *ProductsRepository) ResolveProductID(ctx context.Context, querier database.Querier, reference string) (domain.ProductID, error) {
	if id, ok := parseProductID(reference); ok {
		return id, nil
	}

	aliasSQL := `SELECT product_id FROM product_aliases WHERE alias_name = $1`

	var id int32
	err := querier.QueryRow(ctx, aliasSQL, strings.ToLower(reference)).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.InvalidProductError{Reference: reference}
		}

		return 0, fmt.Errorf("failed to find product alias: %w", err)
	}

	return domain.ProductID(id), nil
}

func (pr *ProductsRepository) GetPurchasablePrice(ctx context.Context, querier database.Querier, productID domain.ProductID, roomID *int) (domain.StregCents, bool, error) {
	var row pgx.Row
	if roomID == nil {
		priceSQL := `SELECT price FROM products WHERE id = $1 AND ` + purchasableCondition
		row = querier.QueryRow(ctx, priceSQL, int32(productID))
	} else {
		priceSQL := `SELECT price FROM products WHERE id = $1 AND ` + purchasableCondition + `
			AND EXISTS (
				SELECT 1 FROM room_products rp
				JOIN rooms r ON r.id = rp.room_id
				WHERE rp.product_id = products.id AND rp.room_id = $2 AND r.active = true
			)`
		row = querier.QueryRow(ctx, priceSQL, int32(productID), *roomID)
	}

	var price int64
	err := row.Scan(&price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}

		return 0, false, fmt.Errorf("failed to fetch product price: %w", err)
	}

	return domain.StregCents(price), true, nil
}

func (pr *ProductsRepository) FetchActiveProducts(ctx context.Context, roomID *int) ([]domain.ActiveProduct, error) {
	activeSQL := `SELECT id, name, price FROM products
		WHERE ` + purchasableCondition + `
		AND ($1::int IS NULL OR EXISTS (
			SELECT 1 FROM room_products rp
			JOIN rooms r ON r.id = rp.room_id
			WHERE rp.product_id = products.id AND rp.room_id = $1 AND r.active = true
		))
		ORDER BY id`

	rows, err := pr.querier.Query(ctx, activeSQL, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.ActiveProduct, 0)
	for rows.Next() {
		var (
			id    int32
			price int64
			name  string
		)
		if err := rows.Scan(&id, &name, &price); err != nil {
			return nil, fmt.Errorf("failed to scan active product: %w", err)
		}

		products = append(products, domain.ActiveProduct{
			ID:    domain.ProductID(id),
			Name:  name,
			Price: domain.StregCents(price),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read active products: %w", err)
	}

	return products, nil
}

func (pr *ProductsRepository) FetchProductAliases(ctx context.Context) (map[domain.ProductID][]string, error) {
	aliasesSQL := `SELECT product_id, alias_name FROM product_aliases ORDER BY product_id, alias_name`

	rows, err := pr.querier.Query(ctx, aliasesSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product aliases: %w", err)
	}
	defer rows.Close()

	aliases := make(map[domain.ProductID][]string)
	for rows.Next() {
		var (
			productID int32
			alias     string
		)
		if err := rows.Scan(&productID, &alias); err != nil {
			return nil, fmt.Errorf("failed to scan product alias: %w", err)
		}

		aliases[domain.ProductID(productID)] = append(aliases[domain.ProductID(productID)], alias)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product aliases: %w", err)
	}

	return aliases, nil
}

// parseProductID accepts only ASCII digits that fit a product id.
func parseProductID(reference string) (domain.ProductID, bool) {
	id, err := strconv.ParseUint(reference, 10, 31)
	if err != nil {
		return 0, false
	}

	return domain.ProductID(id), true
}
