package adcp

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"
)

// fakeProjector runs a one-connection ADCP peer on a loopback port and
// returns a Session pointed at it.
func fakeProjector(t *testing.T, handle func(conn net.Conn)) *Session {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		handle(conn)
	}()

	host, portStr, _ := net.SplitHostPort(ln.Addr().String())
	port, _ := strconv.Atoi(portStr)

	s := NewSession(host)
	s.Port = port
	s.Timeout = 2 * time.Second
	return s
}

func writeLine(conn net.Conn, line string) {
	conn.Write([]byte(line + "\r\n"))
}

func readLine(conn net.Conn, reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func TestExecute_NoAuth(t *testing.T) {
	s := fakeProjector(t, func(conn net.Conn) {
		reader := bufio.NewReader(conn)
		writeLine(conn, "NOKEY")
		// Next line must be the command itself, not an auth digest.
		cmd := readLine(conn, reader)
		if cmd != `power "on"` {
			writeLine(conn, "err_cmd")
			return
		}
		writeLine(conn, "ok")
	})

	resp, err := s.Execute(context.Background(), CmdPower, ValueOn, ParamNone)
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Ack() {
		t.Errorf("expected acknowledgement, got %+v", resp)
	}
}

func TestExecute_PasswordHandshake(t *testing.T) {
	const nonce = "6e584a0a"

	s := fakeProjector(t, func(conn net.Conn) {
		reader := bufio.NewReader(conn)
		writeLine(conn, nonce)

		digest := readLine(conn, reader)
		sum := sha256.Sum256([]byte(nonce + "Projector"))
		if digest != hex.EncodeToString(sum[:]) {
			writeLine(conn, "err_auth")
			return
		}
		writeLine(conn, "OK")

		if readLine(conn, reader) != "power_status ?" {
			writeLine(conn, "err_cmd")
			return
		}
		writeLine(conn, `"standby"`)
	})

	resp, err := s.Execute(context.Background(), QueryPowerStatus, "", ParamQuery)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Value != `"standby"` {
		t.Errorf("got %+v", resp)
	}
}

func TestExecute_WrongPassword(t *testing.T) {
	s := fakeProjector(t, func(conn net.Conn) {
		reader := bufio.NewReader(conn)
		writeLine(conn, "deadbeef")
		readLine(conn, reader)
		writeLine(conn, "err_auth")
	})
	s.Password = "wrong"

	_, err := s.Execute(context.Background(), CmdPower, ValueOn, ParamNone)
	if !errors.Is(err, ErrAuthentication) {
		t.Errorf("expected ErrAuthentication, got %v", err)
	}
}

func TestExecute_UnexpectedHandshakeReply(t *testing.T) {
	s := fakeProjector(t, func(conn net.Conn) {
		reader := bufio.NewReader(conn)
		writeLine(conn, "deadbeef")
		readLine(conn, reader)
		writeLine(conn, "hello there")
	})

	_, err := s.Execute(context.Background(), CmdPower, ValueOn, ParamNone)
	if !errors.Is(err, ErrAuthentication) {
		t.Errorf("expected ErrAuthentication, got %v", err)
	}
}

func TestExecute_ConnectionRefused(t *testing.T) {
	// Grab a free port, then close it so the dial is refused before any
	// handshake can start.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	host, portStr, _ := net.SplitHostPort(ln.Addr().String())
	port, _ := strconv.Atoi(portStr)
	ln.Close()

	s := NewSession(host)
	s.Port = port
	s.Timeout = 2 * time.Second

	_, err = s.Execute(context.Background(), CmdPower, ValueOn, ParamNone)
	if !errors.Is(err, ErrConnection) {
		t.Errorf("expected ErrConnection, got %v", err)
	}
}

func TestExecute_Timeout(t *testing.T) {
	s := fakeProjector(t, func(conn net.Conn) {
		// Never send the challenge.
		time.Sleep(3 * time.Second)
	})
	s.Timeout = 200 * time.Millisecond

	start := time.Now()
	_, err := s.Execute(context.Background(), CmdPower, ValueOn, ParamNone)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 1*time.Second {
		t.Errorf("deadline not enforced, call took %v", elapsed)
	}
}

func TestExecute_EmptyResponse(t *testing.T) {
	s := fakeProjector(t, func(conn net.Conn) {
		reader := bufio.NewReader(conn)
		writeLine(conn, "NOKEY")
		readLine(conn, reader)
		// Close without replying to the command.
	})

	_, err := s.Execute(context.Background(), CmdPower, ValueOn, ParamNone)
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestExecute_DeviceError(t *testing.T) {
	s := fakeProjector(t, func(conn net.Conn) {
		reader := bufio.NewReader(conn)
		writeLine(conn, "NOKEY")
		readLine(conn, reader)
		writeLine(conn, "err_inactive")
	})

	_, err := s.Execute(context.Background(), CmdPictureMute, ValueOn, ParamNone)
	if !errors.Is(err, ErrTemporarilyUnavailable) {
		t.Errorf("expected ErrTemporarilyUnavailable, got %v", err)
	}
}

func TestExecute_EncodeErrorSendsNothing(t *testing.T) {
	dialed := false
	s := fakeProjector(t, func(conn net.Conn) {
		dialed = true
	})

	_, err := s.Execute(context.Background(), KeyMenu, `"on"`, ParamNone)
	if !errors.Is(err, ErrValueNotAllowed) {
		t.Fatalf("expected ErrValueNotAllowed, got %v", err)
	}
	if dialed {
		t.Error("connection opened for a request rejected at encode time")
	}
}
