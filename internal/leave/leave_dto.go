package leave

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	LeaveType  string `json:"leave_type" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	Reason     string `json:"reason"`
}

type RejectLeaveRequest struct {
	RejectionReason string `json:"rejection_reason" binding:"required"`
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Days            int     `json:"days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

type ReturnStatusResponse struct {
	LeaveID    string  `json:"leave_id"`
	EmployeeID string  `json:"employee_id"`
	EndDate    string  `json:"end_date"`
	Applicable bool    `json:"applicable"`
	IsLate     bool    `json:"is_late"`
	ReturnDate *string `json:"return_date,omitempty"`
}

func mapReturnStatus(st ReturnStatus) ReturnStatusResponse {
	resp := ReturnStatusResponse{
		LeaveID:    st.LeaveID,
		EmployeeID: st.EmployeeID,
		EndDate:    st.EndDate.Format("2006-01-02"),
		Applicable: st.Applicable,
		IsLate:     st.IsLate,
	}
	if st.ReturnDate != nil {
		v := st.ReturnDate.Format("2006-01-02")
		resp.ReturnDate = &v
	}
	return resp
}
