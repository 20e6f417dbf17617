package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"

	// SCMM upstream failures, classified at the API client boundary.
	Timeout           failure.ErrorCode = "Timeout"
	NotFound          failure.ErrorCode = "NotFound"
	MalformedResponse failure.ErrorCode = "MalformedResponse"
	UpstreamError     failure.ErrorCode = "UpstreamError"
	Unreachable       failure.ErrorCode = "Unreachable"

	// Discord delivery failures.
	InteractionExpired failure.ErrorCode = "InteractionExpired"
	MessageGone        failure.ErrorCode = "MessageGone"

	// Command input failures.
	InvalidDate   failure.ErrorCode = "InvalidDate"
	EmptyItemName failure.ErrorCode = "EmptyItemName"
)
