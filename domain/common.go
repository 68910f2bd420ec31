package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageUnknownAction        = "unknown action"

	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrUnknownAction = errors.New("unknown action")
)
