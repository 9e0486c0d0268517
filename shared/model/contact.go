package model

// Contact carries the identifying details shared by guests and employees.
type Contact struct {
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Phone     string `db:"phone"`
	Email     string `db:"email"`
}

// FullName joins the first and last name for display.
func (c Contact) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}

	if c.LastName == "" {
		return c.FirstName
	}

	return c.FirstName + " " + c.LastName
}
