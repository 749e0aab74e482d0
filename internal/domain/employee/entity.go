package employee

// Employee is maintained outside this system; it is read-only here.
type Employee struct {
	ID               int64
	EmployeeCode     string
	Name             string
	Department       *string
	ReportingManager *string
	PositionTitle    *string
}
