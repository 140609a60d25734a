package handler

import (
	"net/http"

	"eventhub/internal/model"
	"eventhub/internal/service"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	service service.RequestService
}

func NewRequestHandler(service service.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

func (h *RequestHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/users/:userId")
	{
		router.POST("/requests", h.CreateRequest)
		router.GET("/requests", h.GetUserRequests)
		router.PATCH("/requests/:requestId/cancel", h.CancelRequest)
		router.GET("/events/:eventId/requests", h.GetEventParticipants)
		router.PATCH("/events/:eventId/requests", h.ChangeRequestStatus)
	}
}

func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID, ok := ParamID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := QueryID(c, "eventId")
	if !ok {
		return
	}

	request, err := h.service.CreateRequest(c, userID, eventID)
	if err != nil {
		handleError(c, err, "CreateRequest")
		return
	}
	c.JSON(http.StatusCreated, model.ToRequestResponse(request))
}

func (h *RequestHandler) CancelRequest(c *gin.Context) {
	userID, ok := ParamID(c, "userId")
	if !ok {
		return
	}
	requestID, ok := ParamID(c, "requestId")
	if !ok {
		return
	}

	request, err := h.service.CancelRequest(c, userID, requestID)
	if err != nil {
		handleError(c, err, "CancelRequest")
		return
	}
	c.JSON(http.StatusOK, model.ToRequestResponse(request))
}

func (h *RequestHandler) GetUserRequests(c *gin.Context) {
	userID, ok := ParamID(c, "userId")
	if !ok {
		return
	}

	requests, err := h.service.GetUserRequests(c, userID)
	if err != nil {
		handleError(c, err, "GetUserRequests")
		return
	}
	c.JSON(http.StatusOK, model.ToRequestResponses(requests))
}

func (h *RequestHandler) GetEventParticipants(c *gin.Context) {
	userID, ok := ParamID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := ParamID(c, "eventId")
	if !ok {
		return
	}

	requests, err := h.service.GetEventParticipants(c, userID, eventID)
	if err != nil {
		handleError(c, err, "GetEventParticipants")
		return
	}
	c.JSON(http.StatusOK, model.ToRequestResponses(requests))
}

func (h *RequestHandler) ChangeRequestStatus(c *gin.Context) {
	userID, ok := ParamID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := ParamID(c, "eventId")
	if !ok {
		return
	}
	var update model.RequestStatusUpdate
	if err := BindJson(c, &update); err != nil {
		return
	}

	result, err := h.service.ChangeRequestStatus(c, userID, eventID, update)
	if err != nil {
		handleError(c, err, "ChangeRequestStatus")
		return
	}
	c.JSON(http.StatusOK, model.ToRequestStatusUpdateResponse(result))
}
