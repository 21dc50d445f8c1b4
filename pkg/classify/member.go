package classify

// Category is a club membership label.
type Category string

const (
	Open   Category = "open"
	Senior Category = "senior"
)

// Categories lists every membership category.
var Categories = []Category{Open, Senior}

// Thresholds for the senior category.
const (
	SeniorMinAge      = 55
	SeniorMinHandicap = 7 // exclusive
)

// String returns the display form used by the kata ("Open", "Senior").
func (c Category) String() string {
	switch c {
	case Open:
		return "Open"
	case Senior:
		return "Senior"
	}
	return string(c)
}

// Member is a club applicant: age in years and golf handicap.
type Member struct {
	Age      int
	Handicap int
}

// Categorize returns Senior when m.Age >= 55 and m.Handicap > 7, else Open.
func Categorize(m Member) Category {
	if m.Age >= SeniorMinAge && m.Handicap > SeniorMinHandicap {
		return Senior
	}
	return Open
}

// CategorizeAll categorizes each member in order.
func CategorizeAll(members []Member) []Category {
	out := make([]Category, len(members))
	for i, m := range members {
		out[i] = Categorize(m)
	}
	return out
}

// ParseCategory parses "open" or "senior".
func ParseCategory(s string) (Category, error) {
	return parseLabel("category", s, Categories)
}
