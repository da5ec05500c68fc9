// Package sdap implements the UDP broadcast discovery protocol projectors
// use to announce themselves. Announcements arrive roughly every 30 seconds
// as fixed binary frames; listening for one full interval is enough to see
// every device on the segment.
package sdap

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultPort is the UDP port projectors broadcast announcements on.
	DefaultPort = 53862
	// DefaultWindow covers one full announcement interval (30s) plus slack.
	DefaultWindow = 31 * time.Second

	// minFrameLen is the smallest valid announcement; anything shorter is
	// broadcast noise and silently dropped.
	minFrameLen = 24

	readBufferSize = 1028
)

// Announcement frame layout: bytes 8..20 carry the NUL-padded ASCII model
// name, bytes 20..24 the big-endian serial number. Bytes 0..8 are unused by
// this client.
const (
	modelOffset  = 8
	serialOffset = 20
)

// Device is one announcing projector, keyed by (serial, address).
type Device struct {
	Model   string `json:"model"`
	Serial  uint32 `json:"serial"`
	Address string `json:"address"`
}

// Listener collects projector announcements for one bounded window. Zero
// values fall back to the protocol defaults.
type Listener struct {
	Port   int
	Window time.Duration
}

// NewListener returns a Listener with protocol defaults.
func NewListener() *Listener {
	return &Listener{Port: DefaultPort, Window: DefaultWindow}
}

// Discover listens for the full window and returns every distinct device
// seen. An empty result means no projector announced itself; that is a
// valid outcome, not an error. Socket-level failures are returned as errors.
func (l *Listener) Discover(ctx context.Context) ([]Device, error) {
	return l.listen(ctx, false)
}

// DiscoverFirst returns as soon as one device announces itself, or nil if
// the window elapses without an announcement.
func (l *Listener) DiscoverFirst(ctx context.Context) (*Device, error) {
	devices, err := l.listen(ctx, true)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, nil
	}
	return &devices[0], nil
}

func (l *Listener) listen(ctx context.Context, stopAfterFirst bool) ([]Device, error) {
	port := l.Port
	if port == 0 {
		port = DefaultPort
	}
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{Port: port})
	if err != nil {
		return nil, fmt.Errorf("bind udp port %d: %w", port, err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Debug().Err(err).Msg("SDAP socket close failed")
		}
	}()

	window := l.Window
	if window <= 0 {
		window = DefaultWindow
	}
	deadline := time.Now().Add(window)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	return collect(conn, deadline, stopAfterFirst)
}

// collect runs the receive loop on an already-bound socket until the
// deadline elapses. The read deadline is reset after every datagram so the
// total listen time never exceeds the window.
func collect(conn *net.UDPConn, deadline time.Time, stopAfterFirst bool) ([]Device, error) {
	type deviceKey struct {
		serial  uint32
		address string
	}

	devices := []Device{}
	seen := make(map[deviceKey]struct{})
	buf := make([]byte, readBufferSize)

	for {
		if err := conn.SetReadDeadline(deadline); err != nil {
			return nil, fmt.Errorf("set read deadline: %w", err)
		}

		n, addr, err := conn.ReadFromUDP(buf)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				log.Debug().Int("devices", len(devices)).Msg("SDAP window elapsed")
				return devices, nil
			}
			return nil, fmt.Errorf("receive announcement: %w", err)
		}

		dev, ok := parseAnnouncement(buf[:n], addr.IP.String())
		if !ok {
			continue
		}

		key := deviceKey{serial: dev.Serial, address: dev.Address}
		if _, dup := seen[key]; dup {
			log.Debug().Uint32("serial", dev.Serial).Str("address", dev.Address).Msg("Duplicate announcement ignored")
			continue
		}
		seen[key] = struct{}{}
		devices = append(devices, dev)

		log.Info().
			Str("model", dev.Model).
			Uint32("serial", dev.Serial).
			Str("address", dev.Address).
			Msg("Projector discovered")

		if stopAfterFirst {
			return devices, nil
		}
	}
}

// parseAnnouncement decodes one datagram. Malformed frames are reported as
// not-ok and discarded by the caller; broadcast noise from unrelated
// senders is expected on this port.
func parseAnnouncement(frame []byte, address string) (Device, bool) {
	if len(frame) < minFrameLen {
		log.Debug().Int("len", len(frame)).Msg("SDAP frame too short, discarding")
		return Device{}, false
	}

	serial := binary.BigEndian.Uint32(frame[serialOffset : serialOffset+4])
	model := decodeModel(frame[modelOffset:serialOffset])

	if model == "" || serial == 0 || address == "" {
		log.Debug().Uint32("serial", serial).Str("model", model).Str("address", address).Msg("Incomplete SDAP frame, discarding")
		return Device{}, false
	}

	return Device{Model: model, Serial: serial, Address: address}, true
}

// decodeModel trims the NUL padding and keeps only ASCII bytes. Dropping
// instead of rejecting non-ASCII matches what deployed firmware emits and
// what existing clients expect.
func decodeModel(raw []byte) string {
	trimmed := bytes.Trim(raw, "\x00")
	out := make([]byte, 0, len(trimmed))
	for _, b := range trimmed {
		if b < 0x80 {
			out = append(out, b)
		}
	}
	return string(out)
}
