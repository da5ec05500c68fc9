package adcp

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Protocol defaults. The password is the factory default; projectors with
// authentication disabled answer the handshake with NOKEY and ignore it.
const (
	DefaultPort     = 53595
	DefaultTimeout  = 5 * time.Second
	DefaultPassword = "Projector"
)

// noAuthToken in the challenge line means the device accepts commands
// without authentication.
const noAuthToken = "NOKEY"

// Session holds the immutable configuration for ADCP exchanges with one
// projector. Each Execute call opens its own TCP connection, performs the
// challenge handshake, sends one command, reads one reply, and closes; there
// is no connection reuse, so a Session is safe for concurrent use.
type Session struct {
	Address  string
	Port     int
	Password string
	Timeout  time.Duration
}

// NewSession returns a Session for the given address with protocol defaults.
func NewSession(address string) *Session {
	return &Session{
		Address:  address,
		Port:     DefaultPort,
		Password: DefaultPassword,
		Timeout:  DefaultTimeout,
	}
}

// Execute encodes one command and runs a full exchange for it.
func (s *Session) Execute(ctx context.Context, cmd Command, value string, param Parameter) (Response, error) {
	line, err := Encode(cmd, value, param)
	if err != nil {
		return Response{}, err
	}
	return s.ExecuteRaw(ctx, line)
}

// ExecuteRaw runs a full connect/handshake/send/receive/close cycle for an
// already-encoded command line, all under one deadline measured from call
// start. Network and authentication errors are returned untouched and are
// never retried here.
func (s *Session) ExecuteRaw(ctx context.Context, line string) (Response, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	port := s.Port
	if port == 0 {
		port = DefaultPort
	}
	target := net.JoinHostPort(s.Address, strconv.Itoa(port))

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", target)
	if err != nil {
		return Response{}, wireError("connect to "+target, err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Debug().Err(err).Str("address", target).Msg("ADCP close failed")
		}
	}()

	// One absolute deadline for every read and write on this connection.
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return Response{}, wireError("set deadline", err)
		}
	}

	reader := bufio.NewReader(conn)

	if err := s.authenticate(conn, reader); err != nil {
		return Response{}, err
	}

	if _, err := conn.Write([]byte(line + "\r\n")); err != nil {
		return Response{}, wireError("send command", err)
	}
	log.Debug().Str("address", target).Str("command", line).Msg("ADCP command sent")

	reply, err := reader.ReadString('\n')
	if err != nil && reply == "" {
		if errors.Is(err, io.EOF) {
			return Response{}, fmt.Errorf("%w: command %q", ErrEmptyResponse, line)
		}
		return Response{}, wireError("read response", err)
	}

	resp, err := Classify(reply, line)
	if err != nil {
		return Response{}, err
	}
	log.Debug().Str("address", target).Str("command", line).Str("reply", strings.TrimSpace(reply)).Msg("ADCP reply")
	return resp, nil
}

// authenticate performs the challenge-response handshake. The device opens
// the conversation: either NOKEY, or a nonce to be answered with
// hex(sha256(nonce + password)).
func (s *Session) authenticate(conn net.Conn, reader *bufio.Reader) error {
	challenge, err := reader.ReadString('\n')
	if err != nil && challenge == "" {
		return wireError("read challenge", err)
	}
	challenge = strings.TrimSpace(challenge)

	if strings.Contains(challenge, noAuthToken) {
		log.Debug().Str("address", s.Address).Msg("ADCP authentication not required")
		return nil
	}

	sum := sha256.Sum256([]byte(challenge + s.Password))
	if _, err := conn.Write([]byte(hex.EncodeToString(sum[:]) + "\r\n")); err != nil {
		return wireError("send auth digest", err)
	}

	reply, err := reader.ReadString('\n')
	if err != nil && reply == "" {
		return wireError("read auth reply", err)
	}
	reply = strings.TrimSpace(reply)

	switch {
	case strings.Contains(reply, "err_auth"):
		return fmt.Errorf("%w: password rejected", ErrAuthentication)
	case strings.Contains(reply, "OK"):
		return nil
	default:
		// Anything else is a protocol violation, not retried.
		return fmt.Errorf("%w: unexpected handshake reply %q", ErrAuthentication, reply)
	}
}

// wireError folds a raw network error into the taxonomy: deadline overruns
// become ErrTimeout, everything else ErrConnection.
func wireError(op string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %s: %v", ErrTimeout, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrConnection, op, err)
}
