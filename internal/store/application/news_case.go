package application

import (
	"context"

	"github.com/Lexv0lk/stregsystem/internal/store/domain"
)

type NewsCase struct {
	newsFetcher domain.ActiveNewsFetcher
}

func NewNewsCase(newsFetcher domain.ActiveNewsFetcher) *NewsCase {
	return &NewsCase{
		newsFetcher: newsFetcher,
	}
}

func (nc *NewsCase) GetActiveNews(ctx context.Context) ([]string, error) {
	news, err := nc.newsFetcher.FetchActiveNews(ctx)
	if err != nil {
		return nil, err
	}

	if news == nil {
		news = []string{}
	}

	return news, nil
}
