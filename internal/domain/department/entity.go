package department

import "time"

type Department struct {
	ID            string
	Name          string
	Description   string
	EmployeeCount int64 // only populated by List
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
