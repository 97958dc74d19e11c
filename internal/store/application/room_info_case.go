package application

import (
	"context"

	"github.com/Lexv0lk/stregsystem/internal/store/domain"
)

type RoomInfoCase struct {
	roomFetcher domain.RoomInfoFetcher
}

func NewRoomInfoCase(roomFetcher domain.RoomInfoFetcher) *RoomInfoCase {
	return &RoomInfoCase{
		roomFetcher: roomFetcher,
	}
}

func (rc *RoomInfoCase) GetRoomInfo(ctx context.Context, roomID int) (domain.RoomInfo, error) {
	room, found, err := rc.roomFetcher.FetchRoomInfo(ctx, roomID)
	if err != nil {
		return domain.RoomInfo{}, err
	}
	if !found {
		return domain.RoomInfo{}, &domain.InvalidRoomError{RoomID: roomID}
	}

	return room, nil
}
