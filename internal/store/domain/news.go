package domain

import "context"

//go:generate mockgen -source=news.go -destination=../../../gen/mocks/store/news.go -package=mocks

type ActiveNewsFetcher interface {
	FetchActiveNews(ctx context.Context) ([]string, error)
}
