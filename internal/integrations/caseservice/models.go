package caseservice

// SummonRequest summon/dispute request data from the case service
type SummonRequest struct {
	ID              int64  `json:"id"`
	ComplaintID     int64  `json:"complaint_id"`
	ComplainantName string `json:"complainant_name"`
	RespondentName  string `json:"respondent_name"`
	Status          string `json:"status"` // pending, ongoing, resolved, closed
}

// UpdateStatusRequest body of the status update call
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ErrorResponse error model of the case service
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
