package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/pmartell/sonyadcp/pkg/adcp"
	"github.com/pmartell/sonyadcp/pkg/sdap"
)

// ErrProjectorNotFound indicates no registry row matched the given id.
var ErrProjectorNotFound = errors.New("projector not found")

// Projector is one registered device. The id is the SDAP serial number in
// decimal, which is stable across DHCP address changes.
type Projector struct {
	ID             string
	Name           string
	Model          string
	Address        string
	ADCPPort       int
	SDAPPort       int
	Password       string
	TimeoutSeconds int
	LastSeen       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Session builds an ADCP session from the stored connection settings.
func (p *Projector) Session() *adcp.Session {
	s := adcp.NewSession(p.Address)
	if p.ADCPPort != 0 {
		s.Port = p.ADCPPort
	}
	if p.Password != "" {
		s.Password = p.Password
	}
	if p.TimeoutSeconds > 0 {
		s.Timeout = time.Duration(p.TimeoutSeconds) * time.Second
	}
	return s
}

// FromDiscovery converts an SDAP announcement into a registrable projector
// with default connection settings.
func FromDiscovery(dev sdap.Device) *Projector {
	return &Projector{
		ID:             strconv.FormatUint(uint64(dev.Serial), 10),
		Name:           dev.Model,
		Model:          dev.Model,
		Address:        dev.Address,
		ADCPPort:       adcp.DefaultPort,
		SDAPPort:       sdap.DefaultPort,
		Password:       adcp.DefaultPassword,
		TimeoutSeconds: int(adcp.DefaultTimeout / time.Second),
	}
}

// ProjectorStore provides projector CRUD operations.
type ProjectorStore interface {
	Get(ctx context.Context, id string) (*Projector, error)
	List(ctx context.Context) ([]*Projector, error)
	Upsert(ctx context.Context, p *Projector) error
	Update(ctx context.Context, p *Projector) error
	Rename(ctx context.Context, id, name string) error
	TouchLastSeen(ctx context.Context, id, address string) error
	Delete(ctx context.Context, id string) error
}

// Projectors returns a ProjectorStore for this registry.
func (r *Registry) Projectors() ProjectorStore {
	return &projectorStore{r: r}
}

type projectorStore struct {
	r *Registry
}

const projectorColumns = `id, name, model, address, adcp_port, sdap_port, password, timeout_seconds, last_seen, created_at, updated_at`

func (s *projectorStore) Get(ctx context.Context, id string) (*Projector, error) {
	row := s.r.QueryRowContext(ctx, `SELECT `+projectorColumns+` FROM projectors WHERE id = ?`, id)
	return scanProjector(row)
}

func (s *projectorStore) List(ctx context.Context) ([]*Projector, error) {
	rows, err := s.r.QueryContext(ctx, `SELECT `+projectorColumns+` FROM projectors ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projectors []*Projector
	for rows.Next() {
		p, err := scanProjector(rows)
		if err != nil {
			return nil, err
		}
		projectors = append(projectors, p)
	}
	return projectors, rows.Err()
}

// Upsert inserts a projector or refreshes the mutable fields of an existing
// row. Rediscovering a known device updates its address and model but keeps
// the user-assigned name and credentials.
func (s *projectorStore) Upsert(ctx context.Context, p *Projector) error {
	_, err := s.r.ExecContext(ctx, `
		INSERT INTO projectors (id, name, model, address, adcp_port, sdap_port, password, timeout_seconds, last_seen)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))
		ON CONFLICT(id) DO UPDATE SET
			model = excluded.model,
			address = excluded.address,
			last_seen = datetime('now'),
			updated_at = datetime('now')
	`, p.ID, p.Name, p.Model, p.Address, p.ADCPPort, p.SDAPPort, p.Password, p.TimeoutSeconds)
	if err != nil {
		return fmt.Errorf("upsert projector %s: %w", p.ID, err)
	}
	return nil
}

// Update rewrites the user-editable fields of an existing row.
func (s *projectorStore) Update(ctx context.Context, p *Projector) error {
	result, err := s.r.ExecContext(ctx, `
		UPDATE projectors
		SET name = ?, address = ?, adcp_port = ?, password = ?, timeout_seconds = ?, updated_at = datetime('now')
		WHERE id = ?
	`, p.Name, p.Address, p.ADCPPort, p.Password, p.TimeoutSeconds, p.ID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (s *projectorStore) Rename(ctx context.Context, id, name string) error {
	result, err := s.r.ExecContext(ctx, `
		UPDATE projectors SET name = ?, updated_at = datetime('now') WHERE id = ?
	`, name, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// TouchLastSeen records a fresh announcement for a known projector,
// following an address change if the device moved.
func (s *projectorStore) TouchLastSeen(ctx context.Context, id, address string) error {
	result, err := s.r.ExecContext(ctx, `
		UPDATE projectors SET address = ?, last_seen = datetime('now'), updated_at = datetime('now') WHERE id = ?
	`, address, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (s *projectorStore) Delete(ctx context.Context, id string) error {
	result, err := s.r.ExecContext(ctx, `DELETE FROM projectors WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProjectorNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProjector(row rowScanner) (*Projector, error) {
	p := &Projector{}
	var lastSeen sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(&p.ID, &p.Name, &p.Model, &p.Address, &p.ADCPPort, &p.SDAPPort,
		&p.Password, &p.TimeoutSeconds, &lastSeen, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProjectorNotFound
	}
	if err != nil {
		return nil, err
	}
	if lastSeen.Valid {
		t, _ := time.Parse(time.DateTime, lastSeen.String)
		p.LastSeen = &t
	}
	p.CreatedAt, _ = time.Parse(time.DateTime, createdAt)
	p.UpdatedAt, _ = time.Parse(time.DateTime, updatedAt)
	return p, nil
}
