package gatelog

import "time"

type GateLogResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	Type         string  `json:"type"`
	Action       string  `json:"action"`
	Details      string  `json:"details"`
	Timestamp    string  `json:"timestamp"`
}

func ToResponse(log GateLog) GateLogResponse {
	return GateLogResponse{
		ID:           log.ID,
		Name:         log.Name,
		EmployeeCode: log.EmployeeCode,
		Type:         string(log.Type),
		Action:       log.Action,
		Details:      log.Details,
		Timestamp:    log.Timestamp.Format(time.RFC3339),
	}
}

func ToResponseList(logs []GateLog) []GateLogResponse {
	responses := make([]GateLogResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, ToResponse(log))
	}
	return responses
}
