package model

const DefaultPageSize = 10

// PageRequest is the from/size pair accepted by every list endpoint.
type PageRequest struct {
	From int `form:"from,default=0" binding:"min=0"`
	Size int `form:"size,default=10" binding:"min=1"`
}

// NewPage builds a PageRequest, substituting defaults for non-positive sizes.
func NewPage(from, size int) PageRequest {
	if from < 0 {
		from = 0
	}
	if size < 1 {
		size = DefaultPageSize
	}
	return PageRequest{From: from, Size: size}
}

// Limit is the SQL LIMIT.
func (p PageRequest) Limit() int {
	if p.Size < 1 {
		return DefaultPageSize
	}
	return p.Size
}

// Offset is the SQL OFFSET. from is rounded down to a page boundary: page index = from/size.
func (p PageRequest) Offset() int {
	size := p.Limit()
	if p.From < 0 {
		return 0
	}
	return (p.From / size) * size
}
