package model

import "time"

// RequestState is the state of a participation request.
type RequestState string

const (
	RequestStatePending   RequestState = "PENDING"
	RequestStateConfirmed RequestState = "CONFIRMED"
	RequestStateCanceled  RequestState = "CANCELED"
	RequestStateRejected  RequestState = "REJECTED"
)

// ParseRequestDecision accepts only the two states an initiator may set.
func ParseRequestDecision(s string) (RequestState, error) {
	return parseEnum("request status", s, RequestStateConfirmed, RequestStateRejected)
}

// IsActive reports whether the request still counts as the user's intent to attend.
func (s RequestState) IsActive() bool {
	return s != RequestStateCanceled
}

// Request is a user's participation request for an event.
type Request struct {
	ID          int64        `json:"id" db:"id"`
	Created     time.Time    `json:"created" db:"created"`
	EventID     int64        `json:"event" db:"event_id"`
	RequesterID int64        `json:"requester" db:"requester_id"`
	State       RequestState `json:"status" db:"state"`
}

// RequestStatusUpdate is the body of PATCH /users/:userId/events/:eventId/requests.
type RequestStatusUpdate struct {
	RequestIDs []int64 `json:"requestIds" binding:"required"`
	Status     string  `json:"status" binding:"required"`
}

type RequestStatusUpdateResult struct {
	ConfirmedRequests []*Request
	RejectedRequests  []*Request
}

type ParticipationRequestResponse struct {
	ID        int64  `json:"id"`
	Created   string `json:"created"`
	Event     int64  `json:"event"`
	Requester int64  `json:"requester"`
	Status    string `json:"status"`
}

type RequestStatusUpdateResponse struct {
	ConfirmedRequests []ParticipationRequestResponse `json:"confirmedRequests"`
	RejectedRequests  []ParticipationRequestResponse `json:"rejectedRequests"`
}

func ToRequestResponse(r *Request) ParticipationRequestResponse {
	return ParticipationRequestResponse{
		ID:        r.ID,
		Created:   FormatDateTime(r.Created),
		Event:     r.EventID,
		Requester: r.RequesterID,
		Status:    string(r.State),
	}
}

func ToRequestResponses(requests []*Request) []ParticipationRequestResponse {
	out := make([]ParticipationRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, ToRequestResponse(r))
	}
	return out
}

func ToRequestStatusUpdateResponse(res *RequestStatusUpdateResult) RequestStatusUpdateResponse {
	return RequestStatusUpdateResponse{
		ConfirmedRequests: ToRequestResponses(res.ConfirmedRequests),
		RejectedRequests:  ToRequestResponses(res.RejectedRequests),
	}
}
