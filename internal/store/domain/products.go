package domain

import (
	"context"

	"github.com/Lexv0lk/stregsystem/internal/pkg/database"
)

//go:generate mockgen -source=products.go -destination=../../../gen/mocks/store/products.go -package=mocks

type ProductID int32

type ActiveProduct struct {
	ID      ProductID
	Name    string
	Price   StregCents
	Aliases []string
}

// ProductResolver turns product references into purchasable prices within
// the caller's transaction.
type ProductResolver interface {
	ResolveProductID(ctx context.Context, querier database.Querier, reference string) (ProductID, error)
	GetPurchasablePrice(ctx context.Context, querier database.Querier, productID ProductID, roomID *int) (StregCents, bool, error)
}

type ActiveProductsFetcher interface {
	// FetchActiveProducts returns products without aliases, ordered by id.
	FetchActiveProducts(ctx context.Context, roomID *int) ([]ActiveProduct, error)
	FetchProductAliases(ctx context.Context) (map[ProductID][]string, error)
}
