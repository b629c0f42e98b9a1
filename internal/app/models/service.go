package models

// Service represents an offering rendered on the services section
type Service struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
	Active      bool     `json:"active"`
	OrderIndex  int      `json:"orderIndex"`
}

// ServiceIcons is the closed set of icon identifiers the frontend can render.
// Icon names are validated at ingestion time (seed and admin writes), never
// resolved dynamically.
var ServiceIcons = map[string]struct{}{
	"Code":          {},
	"Cpu":           {},
	"Globe":         {},
	"Rocket":        {},
	"GraduationCap": {},
	"Users":         {},
	"Zap":           {},
	"BookOpen":      {},
	"Briefcase":     {},
	"TrendingUp":    {},
	"Cloud":         {},
	"Smartphone":    {},
}

// IsValidServiceIcon reports whether name belongs to the closed icon set.
func IsValidServiceIcon(name string) bool {
	_, ok := ServiceIcons[name]
	return ok
}
