package domain

import (
	"context"
	"time"

	"github.com/Lexv0lk/stregsystem/internal/pkg/database"
)

//go:generate mockgen -source=ledger.go -destination=../../../gen/mocks/store/ledger.go -package=mocks

type Sale struct {
	UserID    UserID
	ProductID ProductID
	RoomID    *int
	Price     StregCents
}

// Ledger reads and appends to the deposit/sale ledger. Rows are never
// updated or deleted.
type Ledger interface {
	GetUserBalance(ctx context.Context, querier database.Querier, userID UserID) (StregCents, error)
	InsertSale(ctx context.Context, executor database.Executor, sale Sale) error
}

type BoughtProduct struct {
	ProductID ProductID `json:"product_id"`
	Amount    uint32    `json:"amount"`
}

type MultiBuyReceipt struct {
	Username        string
	BoughtProducts  []BoughtProduct
	ProductPriceSum StregCents
	NewUserBalance  StregCents
}

// SaleEvent is emitted once per committed multi-buy.
type SaleEvent struct {
	UserID         UserID          `json:"user_id"`
	Username       string          `json:"username"`
	RoomID         *int            `json:"room_id,omitempty"`
	BoughtProducts []BoughtProduct `json:"bought_products"`
	Total          StregCents      `json:"total"`
	NewBalance     StregCents      `json:"new_balance"`
	Timestamp      time.Time       `json:"timestamp"`
}

type SalePublisher interface {
	PublishSale(ctx context.Context, event SaleEvent) error
}
