package http

import (
	"net/http"

	"github.com/Lexv0lk/stregsystem/internal/pkg/logging"
	"github.com/Lexv0lk/stregsystem/internal/store/domain"
	"github.com/gin-gonic/gin"
)

type quickBuyRequestBody struct {
	QuickBuy string `json:"quickbuy"`
	RoomID   *int   `json:"room_id"`
}

type roomQuery struct {
	RoomID *int `form:"room_id"`
}

type usernameQuery struct {
	Username string `form:"username" binding:"required"`
}

type requiredRoomQuery struct {
	RoomID *int `form:"room_id" binding:"required"`
}

type usernameResponse struct {
	Type     string `json:"type"`
	Username string `json:"username"`
}

type multiBuyResponse struct {
	Type            string                 `json:"type"`
	Username        string                 `json:"username"`
	BoughtProducts  []domain.BoughtProduct `json:"bought_products"`
	ProductPriceSum domain.StregCents      `json:"product_price_sum"`
	NewUserBalance  domain.StregCents      `json:"new_user_balance"`
}

type activeProductResponse struct {
	ID      domain.ProductID  `json:"id"`
	Name    string            `json:"name"`
	Price   domain.StregCents `json:"price"`
	Aliases []string          `json:"aliases"`
}

type activeProductsResponse struct {
	Products []activeProductResponse `json:"products"`
}

type activeNewsResponse struct {
	News []string `json:"news"`
}

type userInfoResponse struct {
	Username  string            `json:"username"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Email     string            `json:"email"`
	Balance   domain.StregCents `json:"balance"`
}

type roomInfoResponse struct {
	RoomID int    `json:"room_id"`
	Name   string `json:"name"`
}

type StoreHandler struct {
	quickBuyService domain.QuickBuyService
	productsService domain.ActiveProductsService
	newsService     domain.NewsService
	userInfoService domain.UserInfoService
	roomInfoService domain.RoomInfoService
	logger          logging.Logger
}

func NewStoreHandler(
	quickBuyService domain.QuickBuyService,
	productsService domain.ActiveProductsService,
	newsService domain.NewsService,
	userInfoService domain.UserInfoService,
	roomInfoService domain.RoomInfoService,
	logger logging.Logger,
) *StoreHandler {
	return &StoreHandler{
		quickBuyService: quickBuyService,
		productsService: productsService,
		newsService:     newsService,
		userInfoService: userInfoService,
		roomInfoService: roomInfoService,
		logger:          logger,
	}
}

func (h *StoreHandler) QuickBuy(c *gin.Context) {
	var body quickBuyRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, invalidRequest("invalid request body"))
		return
	}

	result, err := h.quickBuyService.QuickBuy(c.Request.Context(), body.QuickBuy, body.RoomID)
	if err != nil {
		status, content := quickBuyError(c.Request.Context(), err)
		h.logFailure("quickbuy failed", status, err)
		respondError(c, status, content)
		return
	}

	switch r := result.(type) {
	case domain.UsernameQuickBuy:
		respondOk(c, usernameResponse{Type: "Username", Username: r.Username})
	case domain.MultiBuyReceipt:
		respondOk(c, multiBuyResponse{
			Type:            "MultiBuy",
			Username:        r.Username,
			BoughtProducts:  r.BoughtProducts,
			ProductPriceSum: r.ProductPriceSum,
			NewUserBalance:  r.NewUserBalance,
		})
	default:
		respondError(c, http.StatusInternalServerError, gin.H{"Executor": gin.H{"DbError": "unexpected result"}})
	}
}

func (h *StoreHandler) GetActiveProducts(c *gin.Context) {
	var query roomQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, http.StatusBadRequest, invalidRequest("invalid room_id"))
		return
	}

	products, err := h.productsService.GetActiveProducts(c.Request.Context(), query.RoomID)
	if err != nil {
		h.respondLookupError(c, "failed to fetch active products", err)
		return
	}

	response := activeProductsResponse{
		Products: make([]activeProductResponse, 0, len(products)),
	}
	for _, product := range products {
		response.Products = append(response.Products, activeProductResponse{
			ID:      product.ID,
			Name:    product.Name,
			Price:   product.Price,
			Aliases: product.Aliases,
		})
	}

	respondOk(c, response)
}

func (h *StoreHandler) GetActiveNews(c *gin.Context) {
	news, err := h.newsService.GetActiveNews(c.Request.Context())
	if err != nil {
		h.respondLookupError(c, "failed to fetch active news", err)
		return
	}

	respondOk(c, activeNewsResponse{News: news})
}

func (h *StoreHandler) GetUserInfo(c *gin.Context) {
	var query usernameQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, http.StatusBadRequest, invalidRequest("username is required"))
		return
	}

	info, err := h.userInfoService.GetUserInfo(c.Request.Context(), query.Username)
	if err != nil {
		h.respondLookupError(c, "failed to fetch user info", err)
		return
	}

	respondOk(c, userInfoResponse{
		Username:  info.Username,
		FirstName: info.FirstName,
		LastName:  info.LastName,
		Email:     info.Email,
		Balance:   info.Balance,
	})
}

func (h *StoreHandler) GetRoomInfo(c *gin.Context) {
	var query requiredRoomQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, http.StatusBadRequest, invalidRequest("room_id is required"))
		return
	}

	room, err := h.roomInfoService.GetRoomInfo(c.Request.Context(), *query.RoomID)
	if err != nil {
		h.respondLookupError(c, "failed to fetch room info", err)
		return
	}

	respondOk(c, roomInfoResponse{RoomID: room.ID, Name: room.Name})
}

func (h *StoreHandler) respondLookupError(c *gin.Context, message string, err error) {
	status, content := lookupError(c.Request.Context(), err)
	h.logFailure(message, status, err)
	respondError(c, status, content)
}

func (h *StoreHandler) logFailure(message string, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error(message, "status", status, "error", err.Error())
	} else {
		h.logger.Warn(message, "status", status, "error", err.Error())
	}
}
