package dto

import (
	"time"

	"innkeep/internal/domains/employee/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
)

type CreateEmployeeRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name"  validate:"required,max=100"`
	Phone     string  `json:"phone"      validate:"omitempty,max=20"`
	Email     string  `json:"email"      validate:"required,email,max=100"`
	Position  string  `json:"position"   validate:"required,max=100"`
	Salary    float64 `json:"salary"     validate:"omitempty,gt=0"`
	HireDate  string  `json:"hire_date"  validate:"required,calendardate"`
	Password  string  `json:"password"   validate:"required,min=8"`
	Role      string  `json:"role"       validate:"omitempty,oneof=superadmin admin reception"`
}

func (c *CreateEmployeeRequest) ToModel(user, hashedPassword string, hireDate time.Time) model.Employee {
	role := c.Role
	if role == "" {
		role = constant.RoleReception
	}

	return model.Employee{
		ID: uuid.NewString(),
		Contact: gModel.Contact{
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Phone:     c.Phone,
			Email:     c.Email,
		},
		Position: c.Position,
		Salary:   c.Salary,
		HireDate: hireDate,
		Password: hashedPassword,
		Role:     role,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEmployeeRequest struct {
	FirstName string   `db:"first_name" json:"first_name" validate:"omitempty,max=100"`
	LastName  string   `db:"last_name"  json:"last_name"  validate:"omitempty,max=100"`
	Phone     string   `db:"phone"      json:"phone"      validate:"omitempty,max=20"`
	Position  string   `db:"position"   json:"position"   validate:"omitempty,max=100"`
	Salary    *float64 `db:"salary"     json:"salary"     validate:"omitempty,gt=0"`
	Role      string   `db:"role"       json:"role"       validate:"omitempty,oneof=superadmin admin reception"`
	Active    *bool    `db:"active"     json:"active"     validate:"omitempty"`
}

type EmployeeResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	Position  string  `json:"position"`
	Salary    float64 `json:"salary"`
	HireDate  string  `json:"hire_date"`
	Role      string  `json:"role"`
	Active    bool    `json:"active"`
	LastLogin *string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *EmployeeResponse) FromModel(model model.Employee) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Phone = model.Phone
	r.Email = model.Email
	r.Position = model.Position
	r.Salary = model.Salary
	r.HireDate = timezone.Format(model.HireDate, constant.CalendarDateFormat)
	r.Role = model.Role
	r.Active = model.Active

	if model.LastLogin != nil {
		lastLogin := model.LastLogin.Format(time.RFC3339)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetEmployeesResponse) FromModels(models []model.Employee, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Employees = make([]EmployeeResponse, len(models))
	for i, mod := range models {
		r.Employees[i].FromModel(mod)
	}
}
