package models

// Requests and responses for the dashboard HTTP endpoints. Defined in domain
// for consistency and reuse.

type AuthRequest struct {
	Token string `json:"token" validate:"required,min=1"`
}

type IssueTokenRequest struct {
	TTLSeconds int `json:"ttl_seconds" default:"3600" validate:"gte=1,lte=31536000"`
}

type IssueTokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// DashboardResponse is one render cycle's output: the status message (absent
// when the session is quietly authenticated), the authorization flag and the
// ordered display records.
type DashboardResponse struct {
	Message       *StatusMessage  `json:"message,omitempty"`
	Authenticated bool            `json:"authenticated"`
	Records       []DisplayRecord `json:"records"`
}
