package model

type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}
