package agent

// State keys grouped by the node family that owns them. Input keys are
// copied verbatim from the request; everything else is produced inside
// the graph.
const (
	// Request inputs
	KeyText             = "text"
	KeyUserID           = "user_id"
	KeySessionID        = "session_id"
	KeySelectedEntityID = "selected_entity_id"
	KeyCurrentPage      = "current_page"
	KeyFromImage        = "from_image"

	// Classification (intent parser)
	KeyAction             = "action"
	KeyTargetLabel        = "target_label"
	KeyTargetTime         = "target_time"
	KeyTargetEntityID     = "target_entity_id"
	KeyParsedParams       = "parsed_params"
	KeyConfidence         = "confidence"
	KeyNeedsClarification = "needs_clarification"
	KeyClarifyOptions     = "clarify_options"
	KeySource             = "source"
	KeyFromSelectionUI    = "from_selection_ui"
	KeyLLMDegraded        = "llm_degraded"

	// Resolution
	KeyResolveResult = "resolve_result"
	KeyTripID        = "trip_id"
	KeyMatches       = "matches"

	// Decision and consequences
	KeyStatus            = "status"
	KeyNeedsConfirmation = "needs_confirmation"
	KeyConsequences      = "consequences"
	KeyWarnings          = "warning_messages"

	// Wizard
	KeyWizardActive     = "wizard_active"
	KeyWizardType       = "wizard_type"
	KeyWizardStep       = "wizard_step"
	KeyWizardStepsTotal = "wizard_steps_total"
	KeyWizardData       = "wizard_data"
	KeyWizardQuestion   = "wizard_question"
	KeyWizardHint       = "wizard_hint"
	KeyWizardCompleted  = "wizard_completed"
	KeyWizardCancelled  = "wizard_cancelled"

	// Confirmation replay: set when the executor runs on behalf of a
	// confirmed session, where replacement semantics are authorised.
	KeyFromConfirmation = "from_confirmation"

	// Output
	KeyOptions         = "options"
	KeyExecutionResult = "execution_result"
	KeyOutputType      = "type"
	KeyData            = "data"
)

// Intent sources.
const (
	SourceLLM        = "llm"
	SourceStructured = "structured_command"
	SourceShortcut   = "context_shortcut"
	SourceWizard     = "wizard"
)

// Resolution results.
const (
	ResolveFound    = "found"
	ResolveMultiple = "multiple"
	ResolveNone     = "none"
	ResolveSkipped  = "skipped"
)

// Request statuses carried in final output.
const (
	StatusExecuted             = "executed"
	StatusFailed               = "failed"
	StatusAwaitingConfirmation = "awaiting_confirmation"
	StatusCancelled            = "cancelled"
	StatusClarification        = "clarification"
	StatusWizard               = "wizard"
)

// Node names.
const (
	NodeParseIntent         = "parse_intent"
	NodeResolveTarget       = "resolve_target"
	NodeRouteDecision       = "route_decision"
	NodeAnalyzeConsequences = "analyze_consequences"
	NodeConfirmationGate    = "confirmation_gate"
	NodeWizard              = "wizard"
	NodeExecute             = "execute_action"
	NodeSuggest             = "suggest_actions"
	NodeSelection           = "selection"
	NodeOfferCreation       = "offer_creation"
	NodeReportResult        = "report_result"
	NodeFallback            = "fallback"
)
