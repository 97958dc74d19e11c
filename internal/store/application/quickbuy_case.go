package application

import (
	"context"
	"time"

	"github.com/Lexv0lk/stregsystem/internal/pkg/database"
	"github.com/Lexv0lk/stregsystem/internal/pkg/logging"
	"github.com/Lexv0lk/stregsystem/internal/store/domain"
)

type QuickBuyCase struct {
	txManager       database.TxManager
	querier         database.Querier
	userFinder      domain.UserFinder
	ledger          domain.Ledger
	productResolver domain.ProductResolver
	salePublisher   domain.SalePublisher
	logger          logging.Logger
}

// NewQuickBuyCase wires the purchase pipeline. salePublisher may be nil.
func NewQuickBuyCase(
	txManager database.TxManager,
	querier database.Querier,
	userFinder domain.UserFinder,
	ledger domain.Ledger,
	productResolver domain.ProductResolver,
	salePublisher domain.SalePublisher,
	logger logging.Logger,
) *QuickBuyCase {
	return &QuickBuyCase{
		txManager:       txManager,
		querier:         querier,
		userFinder:      userFinder,
		ledger:          ledger,
		productResolver: productResolver,
		salePublisher:   salePublisher,
		logger:          logger,
	}
}

type pricedProduct struct {
	product   domain.MultiBuyProduct
	productID domain.ProductID
	price     domain.StregCents
}

func (qc *QuickBuyCase) QuickBuy(ctx context.Context, query string, roomID *int) (domain.QuickBuyResult, error) {
	parsed, err := domain.ParseQuickBuy(query)
	if err != nil {
		return nil, err
	}

	switch q := parsed.(type) {
	case domain.UsernameQuickBuy:
		if err := qc.UsernameExists(ctx, q.Username); err != nil {
			return nil, err
		}

		return q, nil
	case domain.MultiBuyQuickBuy:
		receipt, err := qc.ExecuteMultiBuy(ctx, q.Username, q.Products, roomID)
		if err != nil {
			return nil, err
		}

		return receipt, nil
	default:
		panic("unknown quickbuy type")
	}
}

func (qc *QuickBuyCase) UsernameExists(ctx context.Context, username string) error {
	_, found, err := qc.userFinder.FindUserID(ctx, qc.querier, username)
	if err != nil {
		return err
	}

	if !found {
		return &domain.InvalidUsernameError{Username: username}
	}

	return nil
}

// ExecuteMultiBuy records one sale per purchased unit in a single
// transaction. Nothing is written unless the user can afford every item.
func (qc *QuickBuyCase) ExecuteMultiBuy(
	ctx context.Context,
	username string,
	products []domain.MultiBuyProduct,
	roomID *int,
) (domain.MultiBuyReceipt, error) {
	var (
		userID  domain.UserID
		receipt domain.MultiBuyReceipt
	)

	err := qc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		id, found, err := qc.userFinder.LockUserByUsername(ctx, executor, username)
		if err != nil {
			return err
		}
		if !found {
			return &domain.InvalidUsernameError{Username: username}
		}
		userID = id

		balance, err := qc.ledger.GetUserBalance(ctx, executor, userID)
		if err != nil {
			return err
		}

		priced, err := qc.priceProducts(ctx, executor, products, roomID)
		if err != nil {
			return err
		}

		total, err := sumPrices(priced)
		if err != nil {
			return err
		}

		if balance < total {
			return &domain.InsufficientFundsError{Username: username, Total: total}
		}

		newBalance, err := balance.Sub(total)
		if err != nil {
			return err
		}

		for _, p := range priced {
			for range p.product.Amount {
				err := qc.ledger.InsertSale(ctx, executor, domain.Sale{
					UserID:    userID,
					ProductID: p.productID,
					RoomID:    roomID,
					Price:     p.price,
				})
				if err != nil {
					return err
				}
			}
		}

		receipt = domain.MultiBuyReceipt{
			Username:        username,
			BoughtProducts:  boughtProducts(priced),
			ProductPriceSum: total,
			NewUserBalance:  newBalance,
		}

		return nil
	})
	if err != nil {
		return domain.MultiBuyReceipt{}, err
	}

	qc.publishSale(ctx, userID, roomID, receipt)

	return receipt, nil
}

// priceProducts resolves every reference first and only then reads prices,
// so an unknown alias is reported before an inactive product.
func (qc *QuickBuyCase) priceProducts(
	ctx context.Context,
	querier database.Querier,
	products []domain.MultiBuyProduct,
	roomID *int,
) ([]pricedProduct, error) {
	priced := make([]pricedProduct, 0, len(products))
	for _, product := range products {
		productID, err := qc.productResolver.ResolveProductID(ctx, querier, product.ProductReference)
		if err != nil {
			return nil, err
		}

		priced = append(priced, pricedProduct{product: product, productID: productID})
	}

	for i := range priced {
		price, found, err := qc.productResolver.GetPurchasablePrice(ctx, querier, priced[i].productID, roomID)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, &domain.InvalidProductError{Reference: priced[i].product.ProductReference}
		}

		priced[i].price = price
	}

	return priced, nil
}

func sumPrices(priced []pricedProduct) (domain.StregCents, error) {
	lineTotals := make([]domain.StregCents, 0, len(priced))
	for _, p := range priced {
		lineTotal, err := p.price.Mul(p.product.Amount)
		if err != nil {
			return 0, err
		}

		lineTotals = append(lineTotals, lineTotal)
	}

	return domain.SumStregCents(lineTotals...)
}

func boughtProducts(priced []pricedProduct) []domain.BoughtProduct {
	bought := make([]domain.BoughtProduct, 0, len(priced))
	for _, p := range priced {
		bought = append(bought, domain.BoughtProduct{
			ProductID: p.productID,
			Amount:    p.product.Amount,
		})
	}

	return bought
}

func (qc *QuickBuyCase) publishSale(ctx context.Context, userID domain.UserID, roomID *int, receipt domain.MultiBuyReceipt) {
	if qc.salePublisher == nil {
		return
	}

	err := qc.salePublisher.PublishSale(context.WithoutCancel(ctx), domain.SaleEvent{
		UserID:         userID,
		Username:       receipt.Username,
		RoomID:         roomID,
		BoughtProducts: receipt.BoughtProducts,
		Total:          receipt.ProductPriceSum,
		NewBalance:     receipt.NewUserBalance,
		Timestamp:      time.Now().UTC(),
	})
	if err != nil {
		qc.logger.Error("failed to publish sale event", "username", receipt.Username, "error", err.Error())
	}
}
