package domain

import (
	"context"

	"github.com/Lexv0lk/stregsystem/internal/pkg/database"
)

//go:generate mockgen -source=users.go -destination=../../../gen/mocks/store/users.go -package=mocks

type UserID int32

type UserInfo struct {
	ID        UserID
	Username  string
	FirstName string
	LastName  string
	Email     string
}

type TotalUserInfo struct {
	UserInfo
	Balance StregCents
}

type UserFinder interface {
	// FindUserID matches username case-insensitively.
	FindUserID(ctx context.Context, querier database.Querier, username string) (UserID, bool, error)
	// LockUserByUsername matches like FindUserID and holds a row lock on the
	// user until the surrounding transaction ends.
	LockUserByUsername(ctx context.Context, querier database.Querier, username string) (UserID, bool, error)
}

type UserInfoFetcher interface {
	FetchUserInfo(ctx context.Context, username string) (UserInfo, bool, error)
}
