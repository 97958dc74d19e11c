package postgres

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/stregsystem/internal/pkg/database"
	"github.com/Lexv0lk/stregsystem/internal/store/domain"
)

type LedgerRepository struct{}

func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{}
}

func (lr *LedgerRepository) GetUserBalance(ctx context.Context, querier database.Querier, userID domain.UserID) (domain.StregCents, error) {
	balanceSQL := `SELECT (
			(SELECT COALESCE(SUM(amount), 0) FROM deposits WHERE user_id = $1) -
			(SELECT COALESCE(SUM(price), 0) FROM sales WHERE user_id = $1)
		)::bigint`

	var balance int64
	err := querier.QueryRow(ctx, balanceSQL, int32(userID)).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch user balance: %w", err)
	}

	return domain.StregCents(balance), nil
}

func (lr *LedgerRepository) InsertSale(ctx context.Context, executor database.Executor, sale domain.Sale) error {
	insertSaleSQL := `INSERT INTO sales (user_id, product_id, room_id, price) VALUES ($1, $2, $3, $4)`

	tag, err := executor.Exec(ctx, insertSaleSQL, int32(sale.UserID), int32(sale.ProductID), sale.RoomID, int64(sale.Price))
	if err != nil {
		return fmt.Errorf("failed to insert sale record: %w", err)
	}

	if tag.RowsAffected() != 1 {
		return &domain.CorruptedSaleError{RowsAffected: tag.RowsAffected()}
	}

	return nil
}
