package request

// AssignRateRequest attaches a catalog rate to an RFQ.
type AssignRateRequest struct {
	RateID string `json:"rate_id" binding:"required"`
}

// AssignAgentRequest routes an RFQ to an operations agent.
type AssignAgentRequest struct {
	Agent string `json:"agent" binding:"required"`
}
