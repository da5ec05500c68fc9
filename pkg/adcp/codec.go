package adcp

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Parameter is an optional suffix modifying command semantics. At most one
// per command.
type Parameter string

const (
	// ParamNone sends the command as a plain write.
	ParamNone Parameter = ""
	// ParamQuery reads the current value.
	ParamQuery Parameter = "?"
	// ParamRange reads the list of legal values as a JSON array.
	ParamRange Parameter = "? --range"
	// ParamInfo reads auxiliary information about the setting.
	ParamInfo Parameter = "--info"
	// ParamRelative makes a numeric value a relative delta, not absolute.
	ParamRelative Parameter = "--rel"
	// ParamReset restores the setting's factory default.
	ParamReset Parameter = "--reset"
)

// ParseParameter maps the parameter spellings accepted at the API boundary
// to a Parameter.
func ParseParameter(s string) (Parameter, error) {
	switch strings.TrimSpace(s) {
	case "":
		return ParamNone, nil
	case "?", "query":
		return ParamQuery, nil
	case "? --range", "range":
		return ParamRange, nil
	case "--info", "info":
		return ParamInfo, nil
	case "--rel", "rel":
		return ParamRelative, nil
	case "--reset", "reset":
		return ParamReset, nil
	}
	return ParamNone, fmt.Errorf("unknown parameter %q", s)
}

// ResponseKind tags the shape of a successful reply.
type ResponseKind int

const (
	// KindAck is the bare "ok" acknowledgement of a write.
	KindAck ResponseKind = iota
	// KindValue is a quoted scalar, a raw JSON-array-shaped string, or a
	// bare scalar answered to a query.
	KindValue
	// KindRange is the parsed legal-value list of a --range query.
	KindRange
)

// Response is the classified result of one command exchange.
type Response struct {
	Kind  ResponseKind
	Value string   // raw reply line for KindValue
	Range []string // parsed values for KindRange
}

// Ack reports whether the reply was a bare acknowledgement.
func (r Response) Ack() bool { return r.Kind == KindAck }

// Encode builds the wire line for a command, without the trailing CRLF.
// A value on a key or execute command and a query command without a query
// parameter are rejected here, before anything is sent.
func Encode(cmd Command, value string, param Parameter) (string, error) {
	if value != "" && (cmd.Category == CategoryKey || cmd.Category == CategoryExecute) {
		return "", fmt.Errorf("%w: %s", ErrValueNotAllowed, cmd.Name)
	}
	if cmd.Category == CategoryQuery && param != ParamQuery && param != ParamRange && param != ParamInfo {
		return "", fmt.Errorf("%w: %s", ErrQueryParameterRequired, cmd.Name)
	}

	line := cmd.Name
	if value != "" {
		line += " " + value
	}
	if param != ParamNone {
		line += " " + string(param)
	}
	return line, nil
}

// errorTokens maps the err_* substrings the device can answer with to their
// typed errors. The tokens are mutually exclusive by construction of the
// firmware, so match order does not matter.
var errorTokens = []struct {
	token string
	err   error
}{
	{"err_cmd", ErrCommandNotRecognized},
	{"err_val", ErrValueOutOfRange},
	{"err_option", ErrOptionUnsupported},
	{"err_inactive", ErrTemporarilyUnavailable},
	{"err_internal1", ErrInternalDevice},
	{"err_internal2", ErrInternalDevice},
	{"err_auth", ErrAuthentication},
}

// Classify turns the raw reply line for a sent command line into a Response
// or a typed error. Classification is a pure function of the two strings.
//
// The rule order is part of the contract and must not change:
//  1. a line containing a known err_* token is that error
//  2. a line bracketed by quotes or square brackets is a value; for a
//     --range command it is additionally parsed as a JSON string array
//  3. any line answered to a ?-suffixed command is a bare scalar value
//  4. the literal "ok" is a write acknowledgement
//  5. everything else is ErrUnknownResponse
//
// Rule 3 before rule 4 means a literal "ok" answered to a query is a value,
// not an acknowledgement.
func Classify(raw, sent string) (Response, error) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Response{}, fmt.Errorf("%w: command %q", ErrEmptyResponse, sent)
	}

	for _, e := range errorTokens {
		if strings.Contains(line, e.token) {
			return Response{}, fmt.Errorf("%w: command %q", e.err, sent)
		}
	}

	startsValue := strings.HasPrefix(line, `"`) || strings.HasPrefix(line, "[")
	endsValue := strings.HasSuffix(line, `"`) || strings.HasSuffix(line, "]")
	if startsValue && endsValue {
		if strings.HasSuffix(sent, string(ParamRange)) {
			var values []string
			if err := json.Unmarshal([]byte(line), &values); err != nil {
				return Response{}, fmt.Errorf("%w: %q: %v", ErrMalformedRange, line, err)
			}
			return Response{Kind: KindRange, Range: values}, nil
		}
		return Response{Kind: KindValue, Value: line}, nil
	}

	if strings.HasSuffix(sent, "?") {
		return Response{Kind: KindValue, Value: line}, nil
	}

	if line == "ok" {
		return Response{Kind: KindAck}, nil
	}

	return Response{}, fmt.Errorf("%w: command %q: %q", ErrUnknownResponse, sent, line)
}
