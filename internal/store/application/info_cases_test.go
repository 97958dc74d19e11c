package application

import (
	"testing"

	storemocks "github.com/Lexv0lk/stregsystem/gen/mocks/store"
	"github.com/Lexv0lk/stregsystem/internal/store/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestNewsCase_GetActiveNews(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string

		prepareFn func(t *testing.T, fetcher *storemocks.MockActiveNewsFetcher)

		expectedNews []string
		expectedErr  error
	}

	tests := []testCase{
		{
			name: "active news",
			prepareFn: func(t *testing.T, fetcher *storemocks.MockActiveNewsFetcher) {
				fetcher.EXPECT().FetchActiveNews(gomock.Any()).Return([]string{"Fredagsbar i dag", "Ny kaffe"}, nil)
			},
			expectedNews: []string{"Fredagsbar i dag", "Ny kaffe"},
		},
		{
			name: "no news is an empty list",
			prepareFn: func(t *testing.T, fetcher *storemocks.MockActiveNewsFetcher) {
				fetcher.EXPECT().FetchActiveNews(gomock.Any()).Return(nil, nil)
			},
			expectedNews: []string{},
		},
		{
			name: "fetch error",
			prepareFn: func(t *testing.T, fetcher *storemocks.MockActiveNewsFetcher) {
				fetcher.EXPECT().FetchActiveNews(gomock.Any()).Return(nil, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			fetcher := storemocks.NewMockActiveNewsFetcher(ctrl)
			tt.prepareFn(t, fetcher)

			news, err := NewNewsCase(fetcher).GetActiveNews(t.Context())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedNews, news)
			}
		})
	}
}

func TestRoomInfoCase_GetRoomInfo(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		roomID int

		prepareFn func(t *testing.T, fetcher *storemocks.MockRoomInfoFetcher)

		expectedRoom domain.RoomInfo
		expectedErr  error
	}

	tests := []testCase{
		{
			name:   "existing room",
			roomID: 10,
			prepareFn: func(t *testing.T, fetcher *storemocks.MockRoomInfoFetcher) {
				fetcher.EXPECT().FetchRoomInfo(gomock.Any(), 10).Return(domain.RoomInfo{ID: 10, Name: "Kantinen"}, true, nil)
			},
			expectedRoom: domain.RoomInfo{ID: 10, Name: "Kantinen"},
		},
		{
			name:   "unknown room",
			roomID: 42,
			prepareFn: func(t *testing.T, fetcher *storemocks.MockRoomInfoFetcher) {
				fetcher.EXPECT().FetchRoomInfo(gomock.Any(), 42).Return(domain.RoomInfo{}, false, nil)
			},
			expectedErr: &domain.InvalidRoomError{},
		},
		{
			name:   "fetch error",
			roomID: 10,
			prepareFn: func(t *testing.T, fetcher *storemocks.MockRoomInfoFetcher) {
				fetcher.EXPECT().FetchRoomInfo(gomock.Any(), 10).Return(domain.RoomInfo{}, false, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			fetcher := storemocks.NewMockRoomInfoFetcher(ctrl)
			tt.prepareFn(t, fetcher)

			room, err := NewRoomInfoCase(fetcher).GetRoomInfo(t.Context(), tt.roomID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRoom, room)
			}
		})
	}
}
