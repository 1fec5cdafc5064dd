package tools

// Error kinds carried on tool results and agent output. A closed
// taxonomy: every kind maps to one human sentence safe to display, and
// internal details (SQL, stack traces) stay at the logging boundary.
const (
	ErrKindInvalidRequest     = "invalid_request"
	ErrKindUnknownAction      = "unknown_action"
	ErrKindAmbiguousTarget    = "ambiguous_target"
	ErrKindTargetNotFound     = "target_not_found"
	ErrKindTripCancelled      = "trip_cancelled"
	ErrKindTripPast           = "trip_past"
	ErrKindAlreadyDeployed    = "already_deployed"
	ErrKindVehicleUnavailable = "vehicle_unavailable"
	ErrKindDriverUnavailable  = "driver_unavailable"
	ErrKindNoDeployment       = "no_deployment"
	ErrKindPageMismatch       = "page_context_mismatch"
	ErrKindSessionNotFound    = "session_not_found"
	ErrKindSessionNotPending  = "session_not_pending"
	ErrKindLLMUnavailable     = "llm_unavailable"
	ErrKindInternal           = "internal_error"
)
