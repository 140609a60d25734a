package model

type Compilation struct {
	ID     int64    `json:"id" db:"id"`
	Title  string   `json:"title" db:"title"`
	Pinned bool     `json:"pinned" db:"pinned"`
	Events []*Event `json:"events"`

	// EventIDs is the stored order; Events is resolved from it by the service.
	EventIDs []int64 `json:"-"`
}

type NewCompilationRequest struct {
	Events []int64 `json:"events"`
	Pinned *bool   `json:"pinned"`
	Title  string  `json:"title" binding:"required,min=1,max=50"`
}

type UpdateCompilationRequest struct {
	Events *[]int64 `json:"events"`
	Pinned *bool    `json:"pinned"`
	Title  *string  `json:"title" binding:"omitempty,min=1,max=50"`
}

type CompilationResponse struct {
	ID     int64                `json:"id"`
	Events []EventShortResponse `json:"events"`
	Pinned bool                 `json:"pinned"`
	Title  string               `json:"title"`
}

func ToCompilationResponse(c *Compilation) CompilationResponse {
	return CompilationResponse{
		ID:     c.ID,
		Events: ToEventShorts(c.Events),
		Pinned: c.Pinned,
		Title:  c.Title,
	}
}

func ToCompilationResponses(cs []*Compilation) []CompilationResponse {
	out := make([]CompilationResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToCompilationResponse(c))
	}
	return out
}
