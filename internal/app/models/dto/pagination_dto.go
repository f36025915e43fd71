package dto

// PaginationInfo describes one page of a filtered list.
type PaginationInfo struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
	TotalItems  int `json:"totalItems"`
}

// HasPrev reports whether a previous page exists.
func (p PaginationInfo) HasPrev() bool { return p.CurrentPage > 1 }

// HasNext reports whether a following page exists.
func (p PaginationInfo) HasNext() bool { return p.CurrentPage < p.TotalPages }

// PrevPage returns the previous page number.
func (p PaginationInfo) PrevPage() int { return p.CurrentPage - 1 }

// NextPage returns the following page number.
func (p PaginationInfo) NextPage() int { return p.CurrentPage + 1 }
