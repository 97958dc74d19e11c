package domain

import (
	"errors"
	"strconv"
	"strings"
)

// QuickBuy is the parsed form of a quickbuy query. It is either a
// UsernameQuickBuy or a MultiBuyQuickBuy.
type QuickBuy interface {
	quickBuy()
}

type UsernameQuickBuy struct {
	Username string
}

type MultiBuyQuickBuy struct {
	Username string
	Products []MultiBuyProduct
}

func (UsernameQuickBuy) quickBuy() {}
func (MultiBuyQuickBuy) quickBuy() {}

// MultiBuyProduct references a product either by numeric id or by alias.
type MultiBuyProduct struct {
	ProductReference string
	Amount           uint32
}

const amountSeparator = ":"

// ParseQuickBuy parses "username" or "username product[:amount] ...".
func ParseQuickBuy(query string) (QuickBuy, error) {
	fields := strings.Fields(query)

	switch len(fields) {
	case 0:
		return nil, &EmptyQueryError{}
	case 1:
		return UsernameQuickBuy{Username: fields[0]}, nil
	}

	products := make([]MultiBuyProduct, 0, len(fields)-1)
	for _, field := range fields[1:] {
		product, err := parseMultiBuyProduct(field)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	return MultiBuyQuickBuy{
		Username: fields[0],
		Products: products,
	}, nil
}

func parseMultiBuyProduct(productQuery string) (MultiBuyProduct, error) {
	parts := strings.Split(productQuery, amountSeparator)

	switch len(parts) {
	case 1:
		name, err := parseProductName(parts[0])
		if err != nil {
			return MultiBuyProduct{}, err
		}

		return MultiBuyProduct{ProductReference: name, Amount: 1}, nil
	case 2:
		name, err := parseProductName(parts[0])
		if err != nil {
			return MultiBuyProduct{}, err
		}

		amount, err := parseAmount(parts[1])
		if err != nil {
			return MultiBuyProduct{}, err
		}

		return MultiBuyProduct{ProductReference: name, Amount: amount}, nil
	default:
		return MultiBuyProduct{}, &MultiBuySyntaxError{Product: productQuery}
	}
}

func parseProductName(name string) (string, error) {
	if name == "" {
		return "", &EmptyProductError{}
	}

	return name, nil
}

var errZeroAmount = errors.New("amount must be greater than zero")

func parseAmount(raw string) (uint32, error) {
	amount, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &InvalidAmountError{Amount: raw, Err: err}
	}

	if amount == 0 {
		return 0, &InvalidAmountError{Amount: raw, Err: errZeroAmount}
	}

	return uint32(amount), nil
}

// QuickBuyResult is either a UsernameQuickBuy, when only a username was
// given, or the MultiBuyReceipt of a committed purchase.
type QuickBuyResult interface {
	quickBuyResult()
}

func (UsernameQuickBuy) quickBuyResult() {}
func (MultiBuyReceipt) quickBuyResult()  {}
