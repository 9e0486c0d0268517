package model

import (
	"time"

	"innkeep/shared/model"
)

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldLastName  = "last_name"
	FieldPosition  = "position"
	FieldSalary    = "salary"
	FieldHireDate  = "hire_date"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
)

type Employee struct {
	ID string `db:"id"`
	model.Contact
	Position  string     `db:"position"`
	Salary    float64    `db:"salary"`
	HireDate  time.Time  `db:"hire_date"`
	Password  string     `db:"password"`
	Role      string     `db:"role"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}

// TenureMonths returns the number of whole months the employee has been on
// staff as of the given day.
func (e Employee) TenureMonths(asOf time.Time) int {
	if asOf.Before(e.HireDate) {
		return 0
	}

	months := (asOf.Year()-e.HireDate.Year())*12 + int(asOf.Month()) - int(e.HireDate.Month())
	if asOf.Day() < e.HireDate.Day() {
		months--
	}

	if months < 0 {
		return 0
	}

	return months
}
