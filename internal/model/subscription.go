package model

type SubscriptionState string

const (
	SubscriptionStatePending   SubscriptionState = "PENDING"
	SubscriptionStateConfirmed SubscriptionState = "CONFIRMED"
	SubscriptionStateRejected  SubscriptionState = "REJECTED"
)

func ParseSubscriptionState(s string) (SubscriptionState, error) {
	return parseEnum("subscription state", s,
		SubscriptionStatePending, SubscriptionStateConfirmed, SubscriptionStateRejected)
}

// SubscriptionDirection selects subscriptions made by the user (FROM_ME) or to the user (TO_ME).
type SubscriptionDirection string

const (
	SubscriptionDirectionToMe   SubscriptionDirection = "TO_ME"
	SubscriptionDirectionFromMe SubscriptionDirection = "FROM_ME"
)

func ParseSubscriptionDirection(s string) (SubscriptionDirection, error) {
	return parseEnum("direction", s, SubscriptionDirectionToMe, SubscriptionDirectionFromMe)
}

type Subscription struct {
	ID           int64             `json:"id" db:"id"`
	Subscriber   UserShort         `json:"subscriber"`
	SubscribedTo UserShort         `json:"subscribedTo"`
	State        SubscriptionState `json:"state" db:"state"`
}
