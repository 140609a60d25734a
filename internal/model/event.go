package model

import (
	"time"

	apperrors "eventhub/pkg/app_errors"
)

// EventState is the moderation state of an event.
type EventState string

const (
	EventStatePending   EventState = "PENDING"
	EventStatePublished EventState = "PUBLISHED"
	EventStateCanceled  EventState = "CANCELED"
)

func ParseEventState(s string) (EventState, error) {
	return parseEnum("state", s, EventStatePending, EventStatePublished, EventStateCanceled)
}

// EventStateAction is a requested state change on an event update.
type EventStateAction string

const (
	// admin
	ActionPublishEvent EventStateAction = "PUBLISH_EVENT"
	ActionRejectEvent  EventStateAction = "REJECT_EVENT"
	// initiator
	ActionSendToReview EventStateAction = "SEND_TO_REVIEW"
	ActionCancelReview EventStateAction = "CANCEL_REVIEW"
)

func ParseAdminStateAction(s string) (EventStateAction, error) {
	return parseEnum("admin state action", s, ActionPublishEvent, ActionRejectEvent)
}

func ParseUserStateAction(s string) (EventStateAction, error) {
	return parseEnum("user state action", s, ActionSendToReview, ActionCancelReview)
}

// eventTransitions maps an action to the states it may start from and the state it leads to.
var eventTransitions = map[EventStateAction]struct {
	from []EventState
	to   EventState
}{
	ActionPublishEvent: {from: []EventState{EventStatePending}, to: EventStatePublished},
	ActionRejectEvent:  {from: []EventState{EventStatePending, EventStateCanceled}, to: EventStateCanceled},
	ActionSendToReview: {from: []EventState{EventStatePending, EventStateCanceled}, to: EventStatePending},
	ActionCancelReview: {from: []EventState{EventStatePending, EventStateCanceled}, to: EventStateCanceled},
}

// Apply returns the state reached by applying action to s.
func (s EventState) Apply(action EventStateAction) (EventState, error) {
	if s == EventStatePublished {
		return s, apperrors.IllegalAction("Event is already published and cannot be changed")
	}

	t, ok := eventTransitions[action]
	if !ok {
		return s, apperrors.IllegalAction("Unknown state action: %s", action)
	}

	for _, from := range t.from {
		if from == s {
			return t.to, nil
		}
	}
	return s, apperrors.IllegalAction("Cannot apply %s to an event in state %s", action, s)
}

type Location struct {
	Lat float32 `json:"lat"`
	Lon float32 `json:"lon"`
}

type Event struct {
	ID                int64      `json:"id" db:"id"`
	Annotation        string     `json:"annotation" db:"annotation"`
	Category          Category   `json:"category"`
	ConfirmedRequests int64      `json:"confirmedRequests" db:"confirmed_requests"`
	CreatedOn         time.Time  `json:"createdOn" db:"created_on"`
	Description       string     `json:"description" db:"description"`
	EventDate         time.Time  `json:"eventDate" db:"event_date"`
	Initiator         UserShort  `json:"initiator"`
	Location          Location   `json:"location"`
	Paid              bool       `json:"paid" db:"paid"`
	ParticipantLimit  int64      `json:"participantLimit" db:"participant_limit"`
	PublishedOn       *time.Time `json:"publishedOn,omitempty" db:"published_on"`
	RequestModeration bool       `json:"requestModeration" db:"request_moderation"`
	State             EventState `json:"state" db:"state"`
	Title             string     `json:"title" db:"title"`

	// Views is filled from the stats service, never stored.
	Views int64 `json:"views"`
}

// NeedsModeration reports whether new requests wait for the initiator's decision.
// An unlimited event (limit 0) never needs moderation.
func (e *Event) NeedsModeration() bool {
	return e.ParticipantLimit != 0 && e.RequestModeration
}

// IsLimitReached reports whether confirming extra more requests would meet or pass the limit.
func (e *Event) IsLimitReached(extra int64) bool {
	return e.ParticipantLimit != 0 && e.ConfirmedRequests+extra >= e.ParticipantLimit
}

// HasCapacityFor reports whether n more requests fit under the limit.
func (e *Event) HasCapacityFor(n int64) bool {
	return e.ParticipantLimit == 0 || n <= e.ParticipantLimit-e.ConfirmedRequests
}

func (e *Event) IsPublished() bool {
	return e.State == EventStatePublished
}

func (e *Event) IsInitiator(userID int64) bool {
	return e.Initiator.ID == userID
}

// URI is the public path the stats service counts hits against.
func (e *Event) URI() string {
	return EventURI(e.ID)
}

// NewEventRequest is the body of POST /users/:userId/events.
type NewEventRequest struct {
	Annotation        string    `json:"annotation" binding:"required,min=20,max=2000"`
	Category          int64     `json:"category" binding:"required,gt=0"`
	Description       string    `json:"description" binding:"required,min=20,max=7000"`
	EventDate         *DateTime `json:"eventDate" binding:"required,eventdate"`
	Location          *Location `json:"location" binding:"required"`
	Paid              *bool     `json:"paid"`
	ParticipantLimit  *int64    `json:"participantLimit" binding:"omitempty,min=0"`
	RequestModeration *bool     `json:"requestModeration"`
	Title             string    `json:"title" binding:"required,min=3,max=120"`
}

// UpdateEventFields are the optional field edits shared by user and admin updates.
type UpdateEventFields struct {
	Annotation        *string   `json:"annotation" binding:"omitempty,min=20,max=2000"`
	Category          *int64    `json:"category" binding:"omitempty,gt=0"`
	Description       *string   `json:"description" binding:"omitempty,min=20,max=7000"`
	EventDate         *DateTime `json:"eventDate" binding:"omitempty,future"`
	Location          *Location `json:"location"`
	Paid              *bool     `json:"paid"`
	ParticipantLimit  *int64    `json:"participantLimit" binding:"omitempty,min=0"`
	RequestModeration *bool     `json:"requestModeration"`
	Title             *string   `json:"title" binding:"omitempty,min=3,max=120"`
}

type UpdateEventUserRequest struct {
	UpdateEventFields
	StateAction *string `json:"stateAction"`
}

type UpdateEventAdminRequest struct {
	UpdateEventFields
	StateAction *string `json:"stateAction"`
}

// ApplyTo copies the set fields onto e. Category is resolved by the caller.
func (f *UpdateEventFields) ApplyTo(e *Event) {
	if f.Annotation != nil {
		e.Annotation = *f.Annotation
	}
	if f.Description != nil {
		e.Description = *f.Description
	}
	if f.EventDate != nil {
		e.EventDate = f.EventDate.Time()
	}
	if f.Location != nil {
		e.Location = *f.Location
	}
	if f.Paid != nil {
		e.Paid = *f.Paid
	}
	if f.ParticipantLimit != nil {
		e.ParticipantLimit = *f.ParticipantLimit
	}
	if f.RequestModeration != nil {
		e.RequestModeration = *f.RequestModeration
	}
	if f.Title != nil {
		e.Title = *f.Title
	}
}

// EventSort orders the public listing.
type EventSort string

const (
	EventSortEventDate EventSort = "EVENT_DATE"
	EventSortViews     EventSort = "VIEWS"
)

func ParseEventSort(s string) (EventSort, error) {
	return parseEnum("sort", s, EventSortEventDate, EventSortViews)
}

// AdminEventQuery is the raw query string of GET /admin/events.
type AdminEventQuery struct {
	Users      []int64    `form:"users" collection_format:"csv"`
	States     []string   `form:"states" collection_format:"csv"`
	Categories []int64    `form:"categories" collection_format:"csv"`
	RangeStart *time.Time `form:"rangeStart" time_format:"2006-01-02 15:04:05" time_utc:"1"`
	RangeEnd   *time.Time `form:"rangeEnd" time_format:"2006-01-02 15:04:05" time_utc:"1"`
}

// PublicEventQuery is the raw query string of GET /events.
type PublicEventQuery struct {
	Text          string     `form:"text"`
	Categories    []int64    `form:"categories" collection_format:"csv"`
	Paid          *bool      `form:"paid"`
	RangeStart    *time.Time `form:"rangeStart" time_format:"2006-01-02 15:04:05" time_utc:"1"`
	RangeEnd      *time.Time `form:"rangeEnd" time_format:"2006-01-02 15:04:05" time_utc:"1"`
	OnlyAvailable bool       `form:"onlyAvailable"`
	Sort          string     `form:"sort"`
}

// EventFilter is the persistence-level predicate set. Zero values mean "no filter".
type EventFilter struct {
	InitiatorIDs  []int64
	States        []EventState
	CategoryIDs   []int64
	Text          string
	Paid          *bool
	RangeStart    *time.Time
	RangeEnd      *time.Time
	OnlyAvailable bool
	SortByDate    bool
}

type EventShortResponse struct {
	ID                int64     `json:"id"`
	Annotation        string    `json:"annotation"`
	Category          Category  `json:"category"`
	ConfirmedRequests int64     `json:"confirmedRequests"`
	EventDate         string    `json:"eventDate"`
	Initiator         UserShort `json:"initiator"`
	Paid              bool      `json:"paid"`
	Title             string    `json:"title"`
	Views             int64     `json:"views"`
}

type EventFullResponse struct {
	ID                int64     `json:"id"`
	Annotation        string    `json:"annotation"`
	Category          Category  `json:"category"`
	ConfirmedRequests int64     `json:"confirmedRequests"`
	CreatedOn         string    `json:"createdOn"`
	Description       string    `json:"description"`
	EventDate         string    `json:"eventDate"`
	Initiator         UserShort `json:"initiator"`
	Location          Location  `json:"location"`
	Paid              bool      `json:"paid"`
	ParticipantLimit  int64     `json:"participantLimit"`
	PublishedOn       *string   `json:"publishedOn"`
	RequestModeration bool      `json:"requestModeration"`
	State             string    `json:"state"`
	Title             string    `json:"title"`
	Views             int64     `json:"views"`
}

func ToEventShort(e *Event) EventShortResponse {
	return EventShortResponse{
		ID:                e.ID,
		Annotation:        e.Annotation,
		Category:          e.Category,
		ConfirmedRequests: e.ConfirmedRequests,
		EventDate:         FormatDateTime(e.EventDate),
		Initiator:         e.Initiator,
		Paid:              e.Paid,
		Title:             e.Title,
		Views:             e.Views,
	}
}

func ToEventShorts(events []*Event) []EventShortResponse {
	out := make([]EventShortResponse, 0, len(events))
	for _, e := range events {
		out = append(out, ToEventShort(e))
	}
	return out
}

func ToEventFull(e *Event) EventFullResponse {
	return EventFullResponse{
		ID:                e.ID,
		Annotation:        e.Annotation,
		Category:          e.Category,
		ConfirmedRequests: e.ConfirmedRequests,
		CreatedOn:         FormatDateTime(e.CreatedOn),
		Description:       e.Description,
		EventDate:         FormatDateTime(e.EventDate),
		Initiator:         e.Initiator,
		Location:          e.Location,
		Paid:              e.Paid,
		ParticipantLimit:  e.ParticipantLimit,
		PublishedOn:       FormatDateTimePtr(e.PublishedOn),
		RequestModeration: e.RequestModeration,
		State:             string(e.State),
		Title:             e.Title,
		Views:             e.Views,
	}
}

func ToEventFulls(events []*Event) []EventFullResponse {
	out := make([]EventFullResponse, 0, len(events))
	for _, e := range events {
		out = append(out, ToEventFull(e))
	}
	return out
}
