package domain

import "fmt"

//region EmptyQueryError

type EmptyQueryError struct{}

func (e *EmptyQueryError) Error() string {
	return "query is empty"
}

func (e *EmptyQueryError) Is(target error) bool {
	_, ok := target.(*EmptyQueryError)
	return ok
}

//endregion

//region MultiBuyParseError

// MultiBuyParseError matches every error produced while parsing the product
// part of a multi-buy query.
type MultiBuyParseError struct {
	Msg string
}

func (e *MultiBuyParseError) Error() string {
	return e.Msg
}

func (e *MultiBuyParseError) Is(target error) bool {
	_, ok := target.(*MultiBuyParseError)
	return ok
}

//endregion

//region MultiBuySyntaxError

type MultiBuySyntaxError struct {
	Product string
}

func (e *MultiBuySyntaxError) Error() string {
	return fmt.Sprintf("syntax error in %q", e.Product)
}

func (e *MultiBuySyntaxError) Is(target error) bool {
	switch target.(type) {
	case *MultiBuySyntaxError, *MultiBuyParseError:
		return true
	}
	return false
}

//endregion

//region EmptyProductError

type EmptyProductError struct{}

func (e *EmptyProductError) Error() string {
	return "empty product name"
}

func (e *EmptyProductError) Is(target error) bool {
	switch target.(type) {
	case *EmptyProductError, *MultiBuyParseError:
		return true
	}
	return false
}

//endregion

//region InvalidAmountError

type InvalidAmountError struct {
	Amount string
	Err    error
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q: %v", e.Amount, e.Err)
}

func (e *InvalidAmountError) Unwrap() error {
	return e.Err
}

func (e *InvalidAmountError) Is(target error) bool {
	switch target.(type) {
	case *InvalidAmountError, *MultiBuyParseError:
		return true
	}
	return false
}

//endregion

//region InvalidUsernameError

type InvalidUsernameError struct {
	Username string
}

func (e *InvalidUsernameError) Error() string {
	return fmt.Sprintf("invalid username: %s", e.Username)
}

func (e *InvalidUsernameError) Is(target error) bool {
	_, ok := target.(*InvalidUsernameError)
	return ok
}

//endregion

//region InvalidProductError

type InvalidProductError struct {
	Reference string
}

func (e *InvalidProductError) Error() string {
	return fmt.Sprintf("invalid product: %s", e.Reference)
}

func (e *InvalidProductError) Is(target error) bool {
	_, ok := target.(*InvalidProductError)
	return ok
}

//endregion

//region InsufficientFundsError

type InsufficientFundsError struct {
	Username string
	Total    StregCents
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: %s needs %s", e.Username, e.Total)
}

func (e *InsufficientFundsError) Is(target error) bool {
	_, ok := target.(*InsufficientFundsError)
	return ok
}

//endregion

//region StregCentsOverflowError

type StregCentsOverflowError struct {
	Msg string
}

func (e *StregCentsOverflowError) Error() string {
	return "stregcents overflow / underflow: " + e.Msg
}

func (e *StregCentsOverflowError) Is(target error) bool {
	_, ok := target.(*StregCentsOverflowError)
	return ok
}

//endregion

//region CorruptedSaleError

// CorruptedSaleError reports a sale insert that did not affect exactly one row.
type CorruptedSaleError struct {
	RowsAffected int64
}

func (e *CorruptedSaleError) Error() string {
	return fmt.Sprintf("sale insert affected %d rows, expected 1", e.RowsAffected)
}

func (e *CorruptedSaleError) Is(target error) bool {
	_, ok := target.(*CorruptedSaleError)
	return ok
}

//endregion

//region InvalidRoomError

type InvalidRoomError struct {
	RoomID int
}

func (e *InvalidRoomError) Error() string {
	return fmt.Sprintf("invalid room id: %d", e.RoomID)
}

func (e *InvalidRoomError) Is(target error) bool {
	_, ok := target.(*InvalidRoomError)
	return ok
}

//endregion
