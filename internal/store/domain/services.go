package domain

import "context"

//go:generate mockgen -source=services.go -destination=../../../gen/mocks/store/services.go -package=mocks

type QuickBuyService interface {
	QuickBuy(ctx context.Context, query string, roomID *int) (QuickBuyResult, error)
}

type ActiveProductsService interface {
	GetActiveProducts(ctx context.Context, roomID *int) ([]ActiveProduct, error)
}

type NewsService interface {
	GetActiveNews(ctx context.Context) ([]string, error)
}

type UserInfoService interface {
	GetUserInfo(ctx context.Context, username string) (TotalUserInfo, error)
}

type RoomInfoService interface {
	GetRoomInfo(ctx context.Context, roomID int) (RoomInfo, error)
}
