package application

import (
	"testing"

	storemocks "github.com/Lexv0lk/stregsystem/gen/mocks/store"
	"github.com/Lexv0lk/stregsystem/internal/store/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestUserInfoCase_GetUserInfo(t *testing.T) {
	t.Parallel()

	alice := domain.UserInfo{
		ID:        3,
		Username:  "Alice",
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     "alice@example.org",
	}

	type testCase struct {
		name     string
		username string

		prepareFn func(t *testing.T, infoFetcher *storemocks.MockUserInfoFetcher, ledger *storemocks.MockLedger)

		expectedUserInfo domain.TotalUserInfo
		expectedErr      error
	}

	tests := []testCase{
		{
			name:     "successful fetch with balance",
			username: "alice",
			prepareFn: func(t *testing.T, infoFetcher *storemocks.MockUserInfoFetcher, ledger *storemocks.MockLedger) {
				infoFetcher.EXPECT().FetchUserInfo(gomock.Any(), "alice").Return(alice, true, nil)
				ledger.EXPECT().GetUserBalance(gomock.Any(), nil, domain.UserID(3)).Return(domain.StregCents(1250), nil)
			},
			expectedUserInfo: domain.TotalUserInfo{UserInfo: alice, Balance: 1250},
		},
		{
			name:     "unknown user",
			username: "ghost",
			prepareFn: func(t *testing.T, infoFetcher *storemocks.MockUserInfoFetcher, ledger *storemocks.MockLedger) {
				infoFetcher.EXPECT().FetchUserInfo(gomock.Any(), "ghost").Return(domain.UserInfo{}, false, nil)
			},
			expectedErr: &domain.InvalidUsernameError{},
		},
		{
			name:     "info fetch error",
			username: "alice",
			prepareFn: func(t *testing.T, infoFetcher *storemocks.MockUserInfoFetcher, ledger *storemocks.MockLedger) {
				infoFetcher.EXPECT().FetchUserInfo(gomock.Any(), "alice").Return(domain.UserInfo{}, false, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:     "balance fetch error",
			username: "alice",
			prepareFn: func(t *testing.T, infoFetcher *storemocks.MockUserInfoFetcher, ledger *storemocks.MockLedger) {
				infoFetcher.EXPECT().FetchUserInfo(gomock.Any(), "alice").Return(alice, true, nil)
				ledger.EXPECT().GetUserBalance(gomock.Any(), nil, domain.UserID(3)).Return(domain.StregCents(0), assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			infoFetcher := storemocks.NewMockUserInfoFetcher(ctrl)
			ledger := storemocks.NewMockLedger(ctrl)
			tt.prepareFn(t, infoFetcher, ledger)

			userInfoCase := NewUserInfoCase(infoFetcher, ledger, nil)
			info, err := userInfoCase.GetUserInfo(t.Context(), tt.username)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUserInfo, info)
			}
		})
	}
}
