package ports

import (
	"hrdash/domain/employee"
)

// DatasetReader loads the employee table from its source.
// Implementations either return a complete, validated table or an error;
// there is no partial load.
type DatasetReader interface {
	ReadTable() (*employee.Table, error)
}
