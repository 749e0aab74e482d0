package employee

import "context"

type EmployeeRepository interface {
	// List returns the roster ordered by name.
	List(ctx context.Context) ([]Employee, error)
}
