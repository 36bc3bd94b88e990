package monitor

import "time"

type Status struct {
	Database  bool      `json:"database"`
	LastCheck time.Time `json:"last_check"`
}
