package employee

type EmployeeResponse struct {
	ID               int64   `json:"id"`
	EmployeeName     string  `json:"employee_name"`
	EmployeeCode     string  `json:"ee_id"`
	Department       *string `json:"department"`
	ReportingManager *string `json:"reporting_manager"`
	PositionTitle    *string `json:"position_title"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		EmployeeName:     e.Name,
		EmployeeCode:     e.EmployeeCode,
		Department:       e.Department,
		ReportingManager: e.ReportingManager,
		PositionTitle:    e.PositionTitle,
	}
}
