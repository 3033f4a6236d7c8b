package model

// StatusCheck is a liveness record a client can leave behind, mostly
// useful when debugging deployments.
type StatusCheck struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Timestamp  int64  `json:"timestamp"`
}

type StatusCheckCreateRequest struct {
	ClientName string `json:"client_name"`
}
