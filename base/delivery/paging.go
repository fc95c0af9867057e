package delivery

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Paging is bound from the offset and limit query params
type Paging struct {
	Offset int32 `query:"offset"`
	Limit  int32 `query:"limit"`
}

// Normalize clamps offset to >= 0 and limit into (0, 100], 0 meaning the default of 20
func (p Paging) Normalize() (offset int32, limit int32) {
	offset, limit = p.Offset, p.Limit
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}
	return offset, limit
}
