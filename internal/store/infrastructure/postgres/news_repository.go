package postgres

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/stregsystem/internal/pkg/database"
)

type NewsRepository struct {
	querier database.Querier
}

func NewNewsRepository(querier database.Querier) *NewsRepository {
	return &NewsRepository{
		querier: querier,
	}
}

func (nr *NewsRepository) FetchActiveNews(ctx context.Context) ([]string, error) {
	newsSQL := `SELECT text FROM news
		WHERE active = true AND (deactivate_after_timestamp IS NULL OR deactivate_after_timestamp > now())
		ORDER BY id`

	rows, err := nr.querier.Query(ctx, newsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active news: %w", err)
	}
	defer rows.Close()

	news := make([]string, 0)
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("failed to scan news: %w", err)
		}

		news = append(news, text)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read news: %w", err)
	}

	return news, nil
}
