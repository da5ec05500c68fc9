package sdap

import (
	"net"
	"testing"
	"time"
)

// announcement builds a valid SDAP frame for the given model and serial.
func announcement(model string, serial uint32) []byte {
	frame := make([]byte, 24)
	copy(frame[modelOffset:serialOffset], model)
	frame[serialOffset] = byte(serial >> 24)
	frame[serialOffset+1] = byte(serial >> 16)
	frame[serialOffset+2] = byte(serial >> 8)
	frame[serialOffset+3] = byte(serial)
	return frame
}

// boundConn binds a loopback UDP socket and returns it with a sender
// pointed at it.
func boundConn(t *testing.T) (*net.UDPConn, *net.UDPConn) {
	t.Helper()

	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })

	sender, err := net.DialUDP("udp4", nil, conn.LocalAddr().(*net.UDPAddr))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sender.Close() })

	return conn, sender
}

func TestCollect_Deduplicates(t *testing.T) {
	conn, sender := boundConn(t)

	frame := announcement("VPL-XW5000", 1234567)
	sender.Write(frame)
	sender.Write(frame) // same (serial, address), later timestamp
	sender.Write(announcement("VPL-XW7000", 7654321))

	devices, err := collect(conn, time.Now().Add(500*time.Millisecond), false)
	if err != nil {
		t.Fatal(err)
	}
	if len(devices) != 2 {
		t.Fatalf("expected 2 devices, got %d: %v", len(devices), devices)
	}
	if devices[0].Model != "VPL-XW5000" || devices[0].Serial != 1234567 {
		t.Errorf("got %+v", devices[0])
	}
	if devices[0].Address != "127.0.0.1" {
		t.Errorf("got address %q", devices[0].Address)
	}
}

func TestCollect_DropsShortFrames(t *testing.T) {
	conn, sender := boundConn(t)

	sender.Write([]byte("noise"))
	sender.Write(announcement("VPL-XW5000", 99)[:23])
	sender.Write(announcement("VPL-XW5000", 99))

	devices, err := collect(conn, time.Now().Add(500*time.Millisecond), false)
	if err != nil {
		t.Fatal(err)
	}
	if len(devices) != 1 {
		t.Fatalf("expected the loop to survive short frames, got %v", devices)
	}
}

func TestCollect_EmptyWindowIsNotAnError(t *testing.T) {
	conn, _ := boundConn(t)

	devices, err := collect(conn, time.Now().Add(100*time.Millisecond), false)
	if err != nil {
		t.Fatal(err)
	}
	if len(devices) != 0 {
		t.Errorf("expected no devices, got %v", devices)
	}
}

func TestCollect_StopsAfterFirst(t *testing.T) {
	conn, sender := boundConn(t)

	sender.Write(announcement("VPL-XW5000", 42))

	start := time.Now()
	devices, err := collect(conn, time.Now().Add(5*time.Second), true)
	if err != nil {
		t.Fatal(err)
	}
	if len(devices) != 1 {
		t.Fatalf("got %v", devices)
	}
	if time.Since(start) > time.Second {
		t.Error("did not return early after first announcement")
	}
}

func TestParseAnnouncement_RejectsEmptyModel(t *testing.T) {
	frame := announcement("", 42)
	if _, ok := parseAnnouncement(frame, "127.0.0.1"); ok {
		t.Error("accepted frame with empty model")
	}
}

func TestParseAnnouncement_RejectsZeroSerial(t *testing.T) {
	frame := announcement("VPL-XW5000", 0)
	if _, ok := parseAnnouncement(frame, "127.0.0.1"); ok {
		t.Error("accepted frame with zero serial")
	}
}

func TestParseAnnouncement_TrimsPaddingAndNonASCII(t *testing.T) {
	frame := announcement("VPL", 7)
	frame[modelOffset+3] = 0xC3 // stray non-ASCII byte inside the name field
	frame[modelOffset+4] = 'X'

	dev, ok := parseAnnouncement(frame, "127.0.0.1")
	if !ok {
		t.Fatal("frame rejected")
	}
	if dev.Model != "VPLX" {
		t.Errorf("got model %q", dev.Model)
	}
}
