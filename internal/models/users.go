package models

// UsersResponse lists the most recent submissions, newest first
// swagger:model UsersResponse
type UsersResponse struct {
	// example: true
	Success bool `json:"success"`

	Users []UserDB `json:"users"`
}

// HealthResponse reports store reachability
// swagger:model HealthResponse
type HealthResponse struct {
	// example: true
	Success bool `json:"success"`
}
