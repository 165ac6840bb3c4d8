package filter

import "time"

// OrderFilter narrows an order list query
type OrderFilter struct {
	Statuses     []string
	CreatedAtMin *time.Time
	CreatedAtMax *time.Time
	Page         int
	Limit        int
}
