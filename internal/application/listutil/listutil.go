package listutil

import (
	"net/url"
	"strings"

	"academy/internal/domain/class"
	"academy/internal/domain/coach"
	"academy/internal/domain/sport"
	"academy/internal/domain/student"
)

// FilterParams carries the search and sport-filter predicates for one list
// view. Both constraints are ANDed; Sport equal to sport.FilterAll (or
// empty) disables the sport constraint.
type FilterParams struct {
	Search string
	Sport  string
}

// ParseFilterParams extracts search and sport filter from URL query values.
// POST: Sport defaults to the "all" sentinel when absent
func ParseFilterParams(q url.Values) FilterParams {
	s := q.Get("sport")
	if s == "" {
		s = sport.FilterAll
	}
	return FilterParams{
		Search: q.Get("search"),
		Sport:  s,
	}
}

// matchText reports whether any of the fields contains term,
// case-insensitively. An empty term matches everything.
func matchText(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// matchSport reports whether got passes the sport filter.
func matchSport(filter, got string) bool {
	return filter == "" || filter == sport.FilterAll || filter == got
}

// VisibleStudents computes the visible subset of the student collection.
// Pure function, linear scan, stable: the result preserves collection
// order and the input is never mutated. Search matches name or email.
func VisibleStudents(records []student.Student, p FilterParams) []student.Student {
	visible := make([]student.Student, 0, len(records))
	for _, r := range records {
		if matchText(p.Search, r.Name, r.Email) && matchSport(p.Sport, r.Sport) {
			visible = append(visible, r)
		}
	}
	return visible
}

// VisibleCoaches computes the visible subset of the coach collection.
// Search matches name or email; the sport filter matches specialization.
func VisibleCoaches(records []coach.Coach, p FilterParams) []coach.Coach {
	visible := make([]coach.Coach, 0, len(records))
	for _, r := range records {
		if matchText(p.Search, r.Name, r.Email) && matchSport(p.Sport, r.Specialization) {
			visible = append(visible, r)
		}
	}
	return visible
}

// VisibleClasses computes the visible subset of the class collection.
// Search matches the class name only.
func VisibleClasses(records []class.Class, p FilterParams) []class.Class {
	visible := make([]class.Class, 0, len(records))
	for _, r := range records {
		if matchText(p.Search, r.Name) && matchSport(p.Sport, r.Sport) {
			visible = append(visible, r)
		}
	}
	return visible
}
