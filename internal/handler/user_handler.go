package handler

import (
	"net/http"

	"eventhub/internal/model"
	"eventhub/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// UsersQuery is the query string of GET /admin/users.
type UsersQuery struct {
	IDs []int64 `form:"ids" collection_format:"csv"`
}

func (h *UserHandler) RegisterRoutes(r *gin.Engine) {
	admin := r.Group("/admin/users")
	{
		admin.POST("", h.RegisterUser)
		admin.GET("", h.GetUsers)
		admin.DELETE("/:userId", h.DeleteUser)
	}

	r.GET("/initiators", h.GetInitiators)

	private := r.Group("/users/:userId")
	{
		private.PATCH("/profile", h.ChangeUserProfile)
		private.POST("/subscribe/:targetId", h.AddSubscription)
		private.DELETE("/subscribe/:targetId", h.DeleteSubscription)
		private.PATCH("/subscribe/:targetId", h.ChangeSubscriptionStatus)
		private.GET("/subscriptions", h.GetUsersSubscriptions)
	}
}

func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req model.NewUserRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	user, err := h.service.RegisterUser(c, req)
	if err != nil {
		handleError(c, err, "RegisterUser")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	var query UsersQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	page, ok := BindPage(c)
	if !ok {
		return
	}

	users, err := h.service.GetUsers(c, query.IDs, page)
	if err != nil {
		handleError(c, err, "GetUsers")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, ok := ParamID(c, "userId")
	if !ok {
		return
	}

	if err := h.service.DeleteUser(c, userID); err != nil {
		handleError(c, err, "DeleteUser")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) ChangeUserProfile(c *gin.Context) {
	userID, ok := ParamID(c, "userId")
	if !ok {
		return
	}
	profile, ok := RequiredQuery(c, "profile")
	if !ok {
		return
	}

	user, err := h.service.ChangeUserProfile(c, userID, profile)
	if err != nil {
		handleError(c, err, "ChangeUserProfile")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetInitiators(c *gin.Context) {
	page, ok := BindPage(c)
	if !ok {
		return
	}

	initiators, err := h.service.GetInitiators(c, c.Query("sort"), c.Query("profile"), page)
	if err != nil {
		handleError(c, err, "GetInitiators")
		return
	}
	c.JSON(http.StatusOK, initiators)
}

// AddSubscription subscribes :userId to :targetId.
func (h *UserHandler) AddSubscription(c *gin.Context) {
	subscriberID, ok := ParamID(c, "userId")
	if !ok {
		return
	}
	subscribedToID, ok := ParamID(c, "targetId")
	if !ok {
		return
	}

	sub, err := h.service.AddSubscription(c, subscriberID, subscribedToID)
	if err != nil {
		handleError(c, err, "AddSubscription")
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *UserHandler) DeleteSubscription(c *gin.Context) {
	subscriberID, ok := ParamID(c, "userId")
	if !ok {
		return
	}
	subscribedToID, ok := ParamID(c, "targetId")
	if !ok {
		return
	}

	if err := h.service.DeleteSubscription(c, subscriberID, subscribedToID); err != nil {
		handleError(c, err, "DeleteSubscription")
		return
	}
	c.Status(http.StatusNoContent)
}

// ChangeSubscriptionStatus lets :userId decide on the subscription made by :targetId.
func (h *UserHandler) ChangeSubscriptionStatus(c *gin.Context) {
	subscribedToID, ok := ParamID(c, "userId")
	if !ok {
		return
	}
	subscriberID, ok := ParamID(c, "targetId")
	if !ok {
		return
	}
	newState, ok := RequiredQuery(c, "newState")
	if !ok {
		return
	}

	sub, err := h.service.ChangeSubscriptionStatus(c, subscribedToID, subscriberID, newState)
	if err != nil {
		handleError(c, err, "ChangeSubscriptionStatus")
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *UserHandler) GetUsersSubscriptions(c *gin.Context) {
	userID, ok := ParamID(c, "userId")
	if !ok {
		return
	}
	direction, ok := RequiredQuery(c, "direction")
	if !ok {
		return
	}
	page, ok := BindPage(c)
	if !ok {
		return
	}

	subs, err := h.service.GetUsersSubscriptions(c, userID, direction, c.Query("state"), page)
	if err != nil {
		handleError(c, err, "GetUsersSubscriptions")
		return
	}
	c.JSON(http.StatusOK, subs)
}
