package health

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
	StatusError    = "error"

	depOK   = "ok"
	depDown = "down"
)

type LivenessResponse struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
}

type ReadinessResponse struct {
	Status       string            `json:"status"`
	Service      string            `json:"service,omitempty"`
	Dependencies map[string]string `json:"dependencies"`
}
