package application

import (
	"context"

	"github.com/Lexv0lk/stregsystem/internal/pkg/database"
	"github.com/Lexv0lk/stregsystem/internal/store/domain"
)

type UserInfoCase struct {
	infoFetcher domain.UserInfoFetcher
	ledger      domain.Ledger
	querier     database.Querier
}

func NewUserInfoCase(infoFetcher domain.UserInfoFetcher, ledger domain.Ledger, querier database.Querier) *UserInfoCase {
	return &UserInfoCase{
		infoFetcher: infoFetcher,
		ledger:      ledger,
		querier:     querier,
	}
}

func (uic *UserInfoCase) GetUserInfo(ctx context.Context, username string) (domain.TotalUserInfo, error) {
	info, found, err := uic.infoFetcher.FetchUserInfo(ctx, username)
	if err != nil {
		return domain.TotalUserInfo{}, err
	}
	if !found {
		return domain.TotalUserInfo{}, &domain.InvalidUsernameError{Username: username}
	}

	balance, err := uic.ledger.GetUserBalance(ctx, uic.querier, info.ID)
	if err != nil {
		return domain.TotalUserInfo{}, err
	}

	return domain.TotalUserInfo{
		UserInfo: info,
		Balance:  balance,
	}, nil
}
