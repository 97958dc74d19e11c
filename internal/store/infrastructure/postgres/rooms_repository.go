package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/stregsystem/internal/pkg/database"
	"github.com/Lexv0lk/stregsystem/internal/store/domain"
	"github.com/jackc/pgx/v5"
)

type RoomsRepository struct {
	querier database.Querier
}

func NewRoomsRepository(querier database.Querier) *RoomsRepository {
	return &RoomsRepository{
		querier: querier,
	}
}

func (rr *RoomsRepository) FetchRoomInfo(ctx context.Context, roomID int) (domain.RoomInfo, bool, error) {
	roomSQL := `SELECT id, name FROM rooms WHERE id = $1`

	var (
		id   int32
		info domain.RoomInfo
	)
	err := rr.querier.QueryRow(ctx, roomSQL, roomID).Scan(&id, &info.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RoomInfo{}, false, nil
		}

		return domain.RoomInfo{}, false, fmt.Errorf("failed to fetch room: %w", err)
	}

	info.ID = int(id)
	return info, true, nil
}
