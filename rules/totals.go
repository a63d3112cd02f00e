package rules

import (
	"strconv"
	"strings"
)

// TotalSet is a set of hand totals between 0 and 31. The zero value is empty.
type TotalSet uint32

// Totals builds a set from the given totals. Values outside 0-31 are ignored.
func Totals(totals ...int) TotalSet {
	var s TotalSet
	for _, t := range totals {
		if t >= 0 && t < 32 {
			s |= 1 << uint(t)
		}
	}
	return s
}

// Contains reports whether total is in the set
func (s TotalSet) Contains(total int) bool {
	if total < 0 || total >= 32 {
		return false
	}
	return s&(1<<uint(total)) != 0
}

// IsEmpty reports whether the set has no totals
func (s TotalSet) IsEmpty() bool {
	return s == 0
}

// Values returns the totals in ascending order
func (s TotalSet) Values() []int {
	var out []int
	for t := 0; t < 32; t++ {
		if s.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of totals in the set
func (s TotalSet) Len() int {
	return len(s.Values())
}

func (s TotalSet) String() string {
	vals := s.Values()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
