package pkg

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type Paginated[T any] struct {
	Data  []T `json:"data"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Offset of the first row of page; pages start at 1.
func Offset(page, limit int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * limit
}
