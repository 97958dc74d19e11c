package domain

import "context"

//go:generate mockgen -source=rooms.go -destination=../../../gen/mocks/store/rooms.go -package=mocks

type RoomInfo struct {
	ID   int
	Name string
}

type RoomInfoFetcher interface {
	FetchRoomInfo(ctx context.Context, roomID int) (RoomInfo, bool, error)
}
