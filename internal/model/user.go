package model

type UserProfile string

const (
	UserProfilePublic  UserProfile = "PUBLIC"
	UserProfilePrivate UserProfile = "PRIVATE"
)

func ParseUserProfile(s string) (UserProfile, error) {
	return parseEnum("profile", s, UserProfilePublic, UserProfilePrivate)
}

type User struct {
	ID      int64       `json:"id" db:"id"`
	Name    string      `json:"name" db:"name"`
	Email   string      `json:"email" db:"email"`
	Profile UserProfile `json:"profile" db:"profile"`
}

type UserShort struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type NewUserRequest struct {
	Email string `json:"email" binding:"required,min=6,max=254,email"`
	Name  string `json:"name" binding:"required,min=2,max=250"`
}

// InitiatorSort orders the initiators listing.
type InitiatorSort string

const (
	InitiatorSortMostInitiative InitiatorSort = "MOST_INITIATIVE"
	InitiatorSortMostPopular    InitiatorSort = "MOST_POPULAR"
)

func ParseInitiatorSort(s string) (InitiatorSort, error) {
	return parseEnum("sort", s, InitiatorSortMostInitiative, InitiatorSortMostPopular)
}

// EventInitiator is a user with the number of events they created and their confirmed subscribers.
type EventInitiator struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Profile     UserProfile `json:"profile"`
	Events      int64       `json:"events"`
	Subscribers int64       `json:"subscribers"`
}
