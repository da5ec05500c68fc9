package adcp

import "errors"

// Network-layer failures. Never retried here; retry policy belongs to the
// caller.
var (
	// ErrConnection indicates the TCP connection was refused, reset, or
	// dropped mid-exchange.
	ErrConnection = errors.New("adcp connection failed")

	// ErrTimeout indicates the per-call deadline elapsed at any step.
	ErrTimeout = errors.New("adcp timeout")
)

// ErrAuthentication indicates the device rejected the hashed password
// (err_auth) or replied to the handshake with something unrecognized.
var ErrAuthentication = errors.New("adcp authentication failed")

// Protocol-layer failures reported by the device. Each maps to exactly one
// err_* token so callers can tell a permanently unsupported feature
// (ErrCommandNotRecognized, ErrOptionUnsupported) from a transient state
// (ErrTemporarilyUnavailable) from bad input (ErrValueOutOfRange).
var (
	// ErrCommandNotRecognized maps err_cmd: the command is unknown to or
	// unsupported on this model.
	ErrCommandNotRecognized = errors.New("adcp command not recognized")

	// ErrValueOutOfRange maps err_val: the value is out of range or invalid.
	ErrValueOutOfRange = errors.New("adcp value out of range")

	// ErrOptionUnsupported maps err_option: the parameter suffix is
	// unsupported, invalid, or missing.
	ErrOptionUnsupported = errors.New("adcp option unsupported")

	// ErrTemporarilyUnavailable maps err_inactive: the command exists but
	// cannot run in the current power or input state.
	ErrTemporarilyUnavailable = errors.New("adcp command temporarily unavailable")

	// ErrInternalDevice maps err_internal1 and err_internal2.
	ErrInternalDevice = errors.New("adcp internal device error")

	// ErrUnknownResponse indicates a reply line matching no recognized shape.
	ErrUnknownResponse = errors.New("unknown adcp response")

	// ErrEmptyResponse indicates the peer closed without sending a reply.
	ErrEmptyResponse = errors.New("empty adcp response")
)

// Request-construction failures, raised before anything touches the wire.
var (
	// ErrValueNotAllowed indicates a value was supplied for a key or
	// execute command.
	ErrValueNotAllowed = errors.New("command does not take a value")

	// ErrQueryParameterRequired indicates a query command was built without
	// ParamQuery or ParamRange. Queries are never inferred from a missing
	// value.
	ErrQueryParameterRequired = errors.New("query command requires a query parameter")

	// ErrMalformedRange indicates a range query reply that is not a valid
	// JSON string array.
	ErrMalformedRange = errors.New("malformed range response")
)
