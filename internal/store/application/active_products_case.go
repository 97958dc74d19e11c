package application

import (
	"context"

	"github.com/Lexv0lk/stregsystem/internal/store/domain"
	"golang.org/x/sync/errgroup"
)

type ActiveProductsCase struct {
	productsFetcher domain.ActiveProductsFetcher
}

func NewActiveProductsCase(productsFetcher domain.ActiveProductsFetcher) *ActiveProductsCase {
	return &ActiveProductsCase{
		productsFetcher: productsFetcher,
	}
}

// GetActiveProducts lists purchasable products, restricted to a room when roomID is set.
func (apc *ActiveProductsCase) GetActiveProducts(ctx context.Context, roomID *int) ([]domain.ActiveProduct, error) {
	group, groupCtx := errgroup.WithContext(ctx)

	var products []domain.ActiveProduct
	var aliases map[domain.ProductID][]string

	group.Go(func() error {
		var err error
		products, err = apc.productsFetcher.FetchActiveProducts(groupCtx, roomID)
		return err
	})

	group.Go(func() error {
		var err error
		aliases, err = apc.productsFetcher.FetchProductAliases(groupCtx)
		return err
	})

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	result := make([]domain.ActiveProduct, 0, len(products))
	for _, product := range products {
		product.Aliases = aliases[product.ID]
		if product.Aliases == nil {
			product.Aliases = []string{}
		}

		result = append(result, product)
	}

	return result, nil
}
