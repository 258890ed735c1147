package dashboard

type LeaveSummary struct {
	AppliedFor int64 `json:"appliedFor"`
	Approved   int64 `json:"approved"`
	Rejected   int64 `json:"rejected"`
	Pending    int64 `json:"pending"`
}

type SummaryResponse struct {
	TotalEmployees   int64        `json:"totalEmployees"`
	TotalDepartments int64        `json:"totalDepartments"`
	TotalSalary      float64      `json:"totalSalary"`
	LeaveSummary     LeaveSummary `json:"leaveSummary"`
}
