package attendance

type CheckInRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Notes     *string  `json:"notes"`
}

type CheckOutRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Notes     *string  `json:"notes"`
}

type AttendanceResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	AttendanceDate string   `json:"attendance_date"`
	CheckIn        *string  `json:"check_in,omitempty"`
	CheckOut       *string  `json:"check_out,omitempty"`
	Status         string   `json:"status"`
	LateMinutes    int      `json:"late_minutes"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}
