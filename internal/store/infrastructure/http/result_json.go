package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/Lexv0lk/stregsystem/internal/store/domain"
	"github.com/gin-gonic/gin"
)

const (
	statusOk    = "Ok"
	statusError = "Error"

	requestTimedOut   = "RequestTimedOut"
	internalDbMessage = "internal database error"
)

type resultJSON struct {
	Status  string `json:"status"`
	Content any    `json:"content"`
}

type insufficientFundsJSON struct {
	Username string            `json:"username"`
	Total    domain.StregCents `json:"total"`
}

func respondOk(c *gin.Context, content any) {
	c.JSON(http.StatusOK, resultJSON{Status: statusOk, Content: content})
}

func respondError(c *gin.Context, status int, content any) {
	c.JSON(status, resultJSON{Status: statusError, Content: content})
}

func invalidRequest(message string) any {
	return gin.H{"InvalidRequest": message}
}

func isTimeout(ctx context.Context, err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)
}

// quickBuyError maps parser and executor failures to a status and an
// externally tagged error body.
func quickBuyError(ctx context.Context, err error) (int, any) {
	var (
		amountErr   *domain.InvalidAmountError
		usernameErr *domain.InvalidUsernameError
		productErr  *domain.InvalidProductError
		fundsErr    *domain.InsufficientFundsError
	)

	switch {
	case errors.Is(err, &domain.EmptyQueryError{}):
		return http.StatusBadRequest, gin.H{"Parser": "EmptyQuery"}
	case errors.Is(err, &domain.MultiBuySyntaxError{}):
		return http.StatusBadRequest, gin.H{"Parser": gin.H{"MultiBuy": "Syntax"}}
	case errors.Is(err, &domain.EmptyProductError{}):
		return http.StatusBadRequest, gin.H{"Parser": gin.H{"MultiBuy": "EmptyProduct"}}
	case errors.As(err, &amountErr):
		return http.StatusBadRequest, gin.H{"Parser": gin.H{"MultiBuy": gin.H{"InvalidAmount": amountErr.Error()}}}
	case errors.As(err, &usernameErr):
		return http.StatusBadRequest, gin.H{"Executor": gin.H{"InvalidUsername": usernameErr.Username}}
	case errors.As(err, &productErr):
		return http.StatusBadRequest, gin.H{"Executor": gin.H{"InvalidProduct": productErr.Reference}}
	case errors.As(err, &fundsErr):
		return http.StatusBadRequest, gin.H{"Executor": gin.H{"InsufficientFunds": insufficientFundsJSON{
			Username: fundsErr.Username,
			Total:    fundsErr.Total,
		}}}
	case errors.Is(err, &domain.StregCentsOverflowError{}):
		return http.StatusBadRequest, gin.H{"Executor": "StregCentsOverflow"}
	case isTimeout(ctx, err):
		return http.StatusRequestTimeout, requestTimedOut
	default:
		return http.StatusInternalServerError, gin.H{"Executor": gin.H{"DbError": internalDbMessage}}
	}
}

// lookupError maps failures of the read-only endpoints.
func lookupError(ctx context.Context, err error) (int, any) {
	var (
		usernameErr *domain.InvalidUsernameError
		roomErr     *domain.InvalidRoomError
	)

	switch {
	case errors.As(err, &usernameErr):
		return http.StatusBadRequest, gin.H{"InvalidUsername": usernameErr.Username}
	case errors.As(err, &roomErr):
		return http.StatusBadRequest, gin.H{"InvalidRoom": roomErr.RoomID}
	case isTimeout(ctx, err):
		return http.StatusRequestTimeout, requestTimedOut
	default:
		return http.StatusInternalServerError, gin.H{"DatabaseError": internalDbMessage}
	}
}
