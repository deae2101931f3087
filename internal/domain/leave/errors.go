package leave

import "errors"

var (
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidDecision  = errors.New("decision must be Approved or Rejected")
)
