package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/stregsystem/internal/pkg/database"
	"github.com/Lexv0lk/stregsystem/internal/store/domain"
	"github.com/jackc/pgx/v5"
)

type UsersRepository struct {
	querier database.Querier
}

func NewUsersRepository(querier database.Querier) *UsersRepository {
	return &UsersRepository{
		querier: querier,
	}
}

func (ur *UsersRepository) FindUserID(ctx context.Context, querier database.Querier, username string) (domain.UserID, bool, error) {
	findUserSQL := `SELECT id FROM users WHERE lower(username) = lower($1)`

	return scanUserID(querier.QueryRow(ctx, findUserSQL, username))
}

func (ur *UsersRepository) LockUserByUsername(ctx context.Context, querier database.Querier, username string) (domain.UserID, bool, error) {
	lockUserSQL := `SELECT id FROM users WHERE lower(username) = lower($1) FOR UPDATE`

	return scanUserID(querier.QueryRow(ctx, lockUserSQL, username))
}

func (ur *UsersRepository) FetchUserInfo(ctx context.Context, username string) (domain.UserInfo, bool, error) {
	userInfoSQL := `SELECT id, username, first_name, last_name, email FROM users WHERE lower(username) = lower($1)`

	var (
		id   int32
		info domain.UserInfo
	)
	err := ur.querier.QueryRow(ctx, userInfoSQL, username).
		Scan(&id, &info.Username, &info.FirstName, &info.LastName, &info.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserInfo{}, false, nil
		}

		return domain.UserInfo{}, false, fmt.Errorf("failed to fetch user info: %w", err)
	}

	info.ID = domain.UserID(id)
	return info, true, nil
}

func scanUserID(row pgx.Row) (domain.UserID, bool, error) {
	var id int32
	err := row.Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}

		return 0, false, fmt.Errorf("failed to find user: %w", err)
	}

	return domain.UserID(id), true, nil
}
