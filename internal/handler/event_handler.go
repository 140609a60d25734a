package handler

import (
	"net/http"

	"eventhub/internal/model"
	"eventhub/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	admin := r.Group("/admin/events")
	{
		admin.GET("", h.GetEventsAdmin)
		admin.PATCH("/:eventId", h.UpdateEventAdmin)
	}

	public := r.Group("/events")
	{
		public.GET("", h.GetEventsPublic)
		public.GET("/:eventId", h.GetEventPublic)
	}

	private := r.Group("/users/:userId")
	{
		private.POST("/events", h.AddEvent)
		private.GET("/events", h.GetEventsPrivate)
		private.GET("/events/:eventId", h.GetEventPrivate)
		private.PATCH("/events/:eventId", h.UpdateEventUser)
		private.GET("/follow/:targetId/events", h.GetEventsBySubscription)
	}
}

func (h *EventHandler) AddEvent(c *gin.Context) {
	userID, ok := ParamID(c, "userId")
	if !ok {
		return
	}
	var req model.NewEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	event, err := h.service.AddEvent(c, userID, req)
	if err != nil {
		handleError(c, err, "AddEvent")
		return
	}
	c.JSON(http.StatusCreated, model.ToEventFull(event))
}

func (h *EventHandler) GetEventsPrivate(c *gin.Context) {
	userID, ok := ParamID(c, "userId")
	if !ok {
		return
	}
	page, ok := BindPage(c)
	if !ok {
		return
	}

	events, err := h.service.GetEventsPrivate(c, userID, page)
	if err != nil {
		handleError(c, err, "GetEventsPrivate")
		return
	}
	c.JSON(http.StatusOK, model.ToEventShorts(events))
}

func (h *EventHandler) GetEventPrivate(c *gin.Context) {
	userID, ok := ParamID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := ParamID(c, "eventId")
	if !ok {
		return
	}

	event, err := h.service.GetEventPrivate(c, userID, eventID)
	if err != nil {
		handleError(c, err, "GetEventPrivate")
		return
	}
	c.JSON(http.StatusOK, model.ToEventFull(event))
}

func (h *EventHandler) UpdateEventUser(c *gin.Context) {
	userID, ok := ParamID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := ParamID(c, "eventId")
	if !ok {
		return
	}
	var req model.UpdateEventUserRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	event, err := h.service.UpdateEventUser(c, userID, eventID, req)
	if err != nil {
		handleError(c, err, "UpdateEventUser")
		return
	}
	c.JSON(http.StatusOK, model.ToEventFull(event))
}

func (h *EventHandler) GetEventsAdmin(c *gin.Context) {
	var query model.AdminEventQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	page, ok := BindPage(c)
	if !ok {
		return
	}

	events, err := h.service.GetEventsAdmin(c, query, page)
	if err != nil {
		handleError(c, err, "GetEventsAdmin")
		return
	}
	c.JSON(http.StatusOK, model.ToEventFulls(events))
}

func (h *EventHandler) UpdateEventAdmin(c *gin.Context) {
	eventID, ok := ParamID(c, "eventId")
	if !ok {
		return
	}
	var req model.UpdateEventAdminRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	event, err := h.service.UpdateEventAdmin(c, eventID, req)
	if err != nil {
		handleError(c, err, "UpdateEventAdmin")
		return
	}
	c.JSON(http.StatusOK, model.ToEventFull(event))
}

func (h *EventHandler) GetEventsPublic(c *gin.Context) {
	var query model.PublicEventQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	page, ok := BindPage(c)
	if !ok {
		return
	}

	events, err := h.service.GetEventsPublic(c, query, page, c.Request.URL.Path, c.ClientIP())
	if err != nil {
		handleError(c, err, "GetEventsPublic")
		return
	}
	c.JSON(http.StatusOK, model.ToEventShorts(events))
}

func (h *EventHandler) GetEventPublic(c *gin.Context) {
	eventID, ok := ParamID(c, "eventId")
	if !ok {
		return
	}

	event, err := h.service.GetEventPublic(c, eventID, c.ClientIP())
	if err != nil {
		handleError(c, err, "GetEventPublic")
		return
	}
	c.JSON(http.StatusOK, model.ToEventFull(event))
}

func (h *EventHandler) GetEventsBySubscription(c *gin.Context) {
	subscriberID, ok := ParamID(c, "userId")
	if !ok {
		return
	}
	subscribedToID, ok := ParamID(c, "targetId")
	if !ok {
		return
	}
	page, ok := BindPage(c)
	if !ok {
		return
	}

	events, err := h.service.GetEventsBySubscription(c, subscriberID, subscribedToID, page)
	if err != nil {
		handleError(c, err, "GetEventsBySubscription")
		return
	}
	c.JSON(http.StatusOK, model.ToEventShorts(events))
}
