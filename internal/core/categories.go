package core

// Label returns the human-readable name for a category. The mapping is
// total over the closed enumeration; unknown values fall through to the
// raw string so a bad cast never panics a display path.
func (c Category) Label() string {
	switch c {
	case Salary:
		return "Salary"
	case Food:
		return "Food"
	case Transport:
		return "Transport"
	case Shopping:
		return "Shopping"
	case Entertainment:
		return "Entertainment"
	case Bills:
		return "Bills"
	case Health:
		return "Health"
	case Other:
		return "Other"
	default:
		return string(c)
	}
}

// Color returns the hex display color associated with a category.
func (c Category) Color() string {
	switch c {
	case Salary:
		return "#10b981"
	case Food:
		return "#f97316"
	case Transport:
		return "#3b82f6"
	case Shopping:
		return "#a855f7"
	case Entertainment:
		return "#ec4899"
	case Bills:
		return "#eab308"
	case Health:
		return "#ef4444"
	default:
		return "#6b7280"
	}
}
