package dto

// RoomOccupancy aggregates how many days of the reporting window a room was
// held by bookings, and the revenue those days produced at the room's price.
type RoomOccupancy struct {
	RoomID       string  `json:"room_id"`
	Number       string  `json:"number"`
	Type         string  `json:"type"`
	Price        float64 `json:"price"`
	TotalDays    int     `json:"total_days"`
	OccupiedDays int     `json:"occupied_days"`
	Rate         float64 `json:"rate"`
	Revenue      float64 `json:"revenue"`
}

type OccupancyReport struct {
	From              string          `json:"from"`
	To                string          `json:"to"`
	Rooms             []RoomOccupancy `json:"rooms"`
	TotalOccupiedDays int             `json:"total_occupied_days"`
}

type FinancialReport struct {
	From              string  `json:"from"`
	To                string  `json:"to"`
	TotalRevenue      float64 `json:"total_revenue"`
	RoomRevenue       float64 `json:"room_revenue"`
	TotalBookings     int     `json:"total_bookings"`
	OccupiedDays      int     `json:"occupied_days"`
	TotalPossibleDays int     `json:"total_possible_days"`
	OccupancyRate     float64 `json:"occupancy_rate"`
}

// GuestActivity summarizes one guest's bookings. Nights and AmountSpent
// cover stays sharing at least one day with the window; Bookings and
// LastBookingDate look at the guest's whole history.
type GuestActivity struct {
	GuestID         string  `json:"guest_id"`
	Name            string  `json:"name"`
	Passport        string  `json:"passport"`
	Bookings        int     `json:"bookings"`
	Nights          int     `json:"nights"`
	AmountSpent     float64 `json:"amount_spent"`
	LastBookingDate string  `json:"last_booking_date,omitempty"`
}

type GuestReport struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Guests []GuestActivity `json:"guests"`
}

type StaffMember struct {
	EmployeeID   string  `json:"employee_id"`
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	Salary       float64 `json:"salary"`
	HireDate     string  `json:"hire_date"`
	TenureMonths int     `json:"tenure_months"`
}

type StaffReport struct {
	AsOf               string        `json:"as_of"`
	Staff              []StaffMember `json:"staff"`
	TotalMonthlySalary float64       `json:"total_monthly_salary"`
}
