// models/outcome.go
package models

// OutcomeStatus classifies the result of one lookup attempt.
type OutcomeStatus string

const (
	OutcomeSuccess   OutcomeStatus = "success"
	OutcomeEmpty     OutcomeStatus = "empty"
	OutcomeUpstream  OutcomeStatus = "upstream_error"
	OutcomeMalformed OutcomeStatus = "malformed_response"
	OutcomeTransport OutcomeStatus = "transport_error"
)

// Outcome is the terminal result of one lookup attempt. HTTPStatus is only
// meaningful for OutcomeUpstream; Records only for OutcomeSuccess.
type Outcome struct {
	Status     OutcomeStatus
	HTTPStatus int
	Records    []Record
}
