package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuickBuy(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name  string
		query string

		expectedRes QuickBuy
		expectedErr error
	}

	tests := []testCase{
		{
			name:        "empty query",
			query:       "",
			expectedErr: &EmptyQueryError{},
		},
		{
			name:        "whitespace query",
			query:       "   ",
			expectedErr: &EmptyQueryError{},
		},
		{
			name:        "username query",
			query:       "alice",
			expectedRes: UsernameQuickBuy{Username: "alice"},
		},
		{
			name:        "username keeps case and trims",
			query:       "\t Test_User \n",
			expectedRes: UsernameQuickBuy{Username: "Test_User"},
		},
		{
			name:  "multibuy query",
			query: "alice coffee beer:2 21:3",
			expectedRes: MultiBuyQuickBuy{
				Username: "alice",
				Products: []MultiBuyProduct{
					{ProductReference: "coffee", Amount: 1},
					{ProductReference: "beer", Amount: 2},
					{ProductReference: "21", Amount: 3},
				},
			},
		},
		{
			name:  "multibuy with repeated whitespace and unicode",
			query: "  test_user   kaffe\tøl:2  ",
			expectedRes: MultiBuyQuickBuy{
				Username: "test_user",
				Products: []MultiBuyProduct{
					{ProductReference: "kaffe", Amount: 1},
					{ProductReference: "øl", Amount: 2},
				},
			},
		},
		{
			name:  "max amount",
			query: "alice beer:4294967295",
			expectedRes: MultiBuyQuickBuy{
				Username: "alice",
				Products: []MultiBuyProduct{
					{ProductReference: "beer", Amount: 4294967295},
				},
			},
		},
		{
			name:        "empty product",
			query:       "alice :2",
			expectedErr: &EmptyProductError{},
		},
		{
			name:        "missing amount",
			query:       "alice p:",
			expectedErr: &InvalidAmountError{},
		},
		{
			name:        "zero amount",
			query:       "alice p:0",
			expectedErr: &InvalidAmountError{},
		},
		{
			name:        "negative amount",
			query:       "alice p:-1",
			expectedErr: &InvalidAmountError{},
		},
		{
			name:        "non numeric amount",
			query:       "alice p:x",
			expectedErr: &InvalidAmountError{},
		},
		{
			name:        "amount above uint32",
			query:       "alice p:4294967296",
			expectedErr: &InvalidAmountError{},
		},
		{
			name:        "too many separators",
			query:       "alice p:1:2",
			expectedErr: &MultiBuySyntaxError{},
		},
		{
			name:        "first error wins",
			query:       "alice ok p:0 :1",
			expectedErr: &InvalidAmountError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := ParseQuickBuy(tt.query)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, res)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}

func TestParseQuickBuy_MultiBuyErrorsShareKind(t *testing.T) {
	t.Parallel()

	for _, query := range []string{"alice :2", "alice p:0", "alice p:1:2"} {
		_, err := ParseQuickBuy(query)
		assert.ErrorIs(t, err, &MultiBuyParseError{}, query)
	}

	_, err := ParseQuickBuy("")
	assert.NotErrorIs(t, err, &MultiBuyParseError{})
}
