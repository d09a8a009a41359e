package sport

// Supported disciplines offered by the academy.
const (
	Fencing     = "Fencing"
	TableTennis = "Table Tennis"
	Swimming    = "Swimming"
	Basketball  = "Basketball"
	Tennis      = "Tennis"
)

// FilterAll is the sentinel filter value that disables the sport constraint.
const FilterAll = "all"

// All lists every supported sport in display order.
var All = []string{Fencing, TableTennis, Swimming, Basketball, Tennis}

// IsSupported reports whether s names a supported sport.
func IsSupported(s string) bool {
	for _, v := range All {
		if v == s {
			return true
		}
	}
	return false
}
