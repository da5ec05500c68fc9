package registry

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/pmartell/sonyadcp/pkg/sdap"
)

func openTestRegistry(t *testing.T) *Registry {
	t.Helper()

	r, err := Open(filepath.Join(t.TempDir(), "projectors.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { r.Close() })

	if err := r.Migrate(context.Background()); err != nil {
		t.Fatal(err)
	}
	return r
}

func TestMigrate_Idempotent(t *testing.T) {
	r := openTestRegistry(t)
	if err := r.Migrate(context.Background()); err != nil {
		t.Fatal(err)
	}
}

func TestUpsertAndGet(t *testing.T) {
	r := openTestRegistry(t)
	ctx := context.Background()
	store := r.Projectors()

	p := FromDiscovery(sdap.Device{Model: "VPL-XW5000", Serial: 7001234, Address: "192.168.1.40"})
	if err := store.Upsert(ctx, p); err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(ctx, "7001234")
	if err != nil {
		t.Fatal(err)
	}
	if got.Model != "VPL-XW5000" || got.Address != "192.168.1.40" {
		t.Errorf("got %+v", got)
	}
	if got.ADCPPort != 53595 || got.SDAPPort != 53862 || got.TimeoutSeconds != 5 {
		t.Errorf("defaults not applied: %+v", got)
	}
	if got.LastSeen == nil {
		t.Error("last_seen not set on upsert")
	}
}

func TestUpsert_RediscoveryKeepsNameAndPassword(t *testing.T) {
	r := openTestRegistry(t)
	ctx := context.Background()
	store := r.Projectors()

	p := FromDiscovery(sdap.Device{Model: "VPL-XW5000", Serial: 42, Address: "192.168.1.40"})
	p.Password = "secret"
	if err := store.Upsert(ctx, p); err != nil {
		t.Fatal(err)
	}
	if err := store.Rename(ctx, "42", "Cinema"); err != nil {
		t.Fatal(err)
	}

	// Same device announces from a new address.
	again := FromDiscovery(sdap.Device{Model: "VPL-XW5000", Serial: 42, Address: "192.168.1.99"})
	if err := store.Upsert(ctx, again); err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(ctx, "42")
	if err != nil {
		t.Fatal(err)
	}
	if got.Address != "192.168.1.99" {
		t.Errorf("address not refreshed: %+v", got)
	}
	if got.Name != "Cinema" || got.Password != "secret" {
		t.Errorf("user settings clobbered: %+v", got)
	}
}

func TestUpdate(t *testing.T) {
	r := openTestRegistry(t)
	ctx := context.Background()
	store := r.Projectors()

	p := FromDiscovery(sdap.Device{Model: "VPL", Serial: 9, Address: "10.0.0.9"})
	if err := store.Upsert(ctx, p); err != nil {
		t.Fatal(err)
	}

	p.Name = "Den"
	p.Password = "hunter2"
	p.TimeoutSeconds = 10
	if err := store.Update(ctx, p); err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(ctx, "9")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Den" || got.Password != "hunter2" || got.TimeoutSeconds != 10 {
		t.Errorf("got %+v", got)
	}

	p.ID = "404"
	if err := store.Update(ctx, p); !errors.Is(err, ErrProjectorNotFound) {
		t.Errorf("expected ErrProjectorNotFound, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	r := openTestRegistry(t)
	if _, err := r.Projectors().Get(context.Background(), "999"); !errors.Is(err, ErrProjectorNotFound) {
		t.Errorf("expected ErrProjectorNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	r := openTestRegistry(t)
	ctx := context.Background()
	store := r.Projectors()

	for serial, addr := range map[uint32]string{1: "10.0.0.1", 2: "10.0.0.2"} {
		p := FromDiscovery(sdap.Device{Model: "VPL", Serial: serial, Address: addr})
		if err := store.Upsert(ctx, p); err != nil {
			t.Fatal(err)
		}
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("got %d projectors", len(all))
	}
}

func TestDelete(t *testing.T) {
	r := openTestRegistry(t)
	ctx := context.Background()
	store := r.Projectors()

	p := FromDiscovery(sdap.Device{Model: "VPL", Serial: 5, Address: "10.0.0.5"})
	if err := store.Upsert(ctx, p); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, "5"); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, "5"); !errors.Is(err, ErrProjectorNotFound) {
		t.Errorf("expected ErrProjectorNotFound, got %v", err)
	}
}

func TestTouchLastSeen(t *testing.T) {
	r := openTestRegistry(t)
	ctx := context.Background()
	store := r.Projectors()

	p := FromDiscovery(sdap.Device{Model: "VPL", Serial: 6, Address: "10.0.0.6"})
	if err := store.Upsert(ctx, p); err != nil {
		t.Fatal(err)
	}
	if err := store.TouchLastSeen(ctx, "6", "10.0.0.7"); err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(ctx, "6")
	if err != nil {
		t.Fatal(err)
	}
	if got.Address != "10.0.0.7" || got.LastSeen == nil {
		t.Errorf("got %+v", got)
	}
}

func TestProjectorSession(t *testing.T) {
	p := &Projector{Address: "10.0.0.9", ADCPPort: 50000, Password: "pw", TimeoutSeconds: 2}
	s := p.Session()
	if s.Address != "10.0.0.9" || s.Port != 50000 || s.Password != "pw" || s.Timeout != 2*time.Second {
		t.Errorf("got %+v", s)
	}
}
