package domain

// EventType classifies events; names are unique.
type EventType struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CostType classifies cost entries; names are unique. DefaultRate is the
// hourly rate applied when a cost entry leaves its rate blank.
type CostType struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	DefaultRate float64 `json:"default_rate"`
	Description string  `json:"description"`
}
