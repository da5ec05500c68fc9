package projector

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pmartell/sonyadcp/pkg/adcp"
)

// Identity carries the projector's self-reported identification.
type Identity struct {
	Model      string `json:"model"`
	Serial     string `json:"serial"`
	MACAddress string `json:"mac_address"`
}

// Identify queries model name, serial number and MAC address.
func (c *Controller) Identify(ctx context.Context) (Identity, error) {
	model, err := c.queryString(ctx, adcp.QueryModelName)
	if err != nil {
		return Identity{}, err
	}
	serial, err := c.queryString(ctx, adcp.QuerySerial)
	if err != nil {
		return Identity{}, err
	}
	mac, err := c.queryString(ctx, adcp.QueryMACAddress)
	if err != nil {
		return Identity{}, err
	}
	return Identity{Model: model, Serial: serial, MACAddress: mac}, nil
}

// LightSourceHours reads the light source usage counter. The device answers
// `timer ?` with a JSON array of counter objects; the one keyed light_src is
// the lamp/laser hour count.
func (c *Controller) LightSourceHours(ctx context.Context) (int, error) {
	resp, err := c.client.Execute(ctx, adcp.QueryTimer, "", adcp.ParamQuery)
	if err != nil {
		return 0, err
	}

	var counters []map[string]json.Number
	if err := json.Unmarshal([]byte(resp.Value), &counters); err != nil {
		return 0, fmt.Errorf("parse timer response %q: %w", resp.Value, err)
	}
	for _, counter := range counters {
		if hours, ok := counter["light_src"]; ok {
			n, err := hours.Int64()
			if err != nil {
				return 0, fmt.Errorf("parse light_src value %q: %w", hours, err)
			}
			return int(n), nil
		}
	}
	return 0, fmt.Errorf("no light_src counter in timer response %q", resp.Value)
}

// Temperature returns the device temperature reading as reported, typically
// a bare integer in degrees Celsius.
func (c *Controller) Temperature(ctx context.Context) (string, error) {
	return c.queryString(ctx, adcp.QueryTemperature)
}

// ActiveErrors returns the device's current error tokens, empty when the
// device reports no_err.
func (c *Controller) ActiveErrors(ctx context.Context) ([]string, error) {
	return c.queryTokenList(ctx, adcp.QueryError, adcp.DeviceErrNone)
}

// ActiveWarnings returns the device's current warning tokens, empty when the
// device reports no_warn.
func (c *Controller) ActiveWarnings(ctx context.Context) ([]string, error) {
	return c.queryTokenList(ctx, adcp.QueryWarning, adcp.DeviceWarnNone)
}

func (c *Controller) queryString(ctx context.Context, cmd adcp.Command) (string, error) {
	resp, err := c.client.Execute(ctx, cmd, "", adcp.ParamQuery)
	if err != nil {
		return "", err
	}
	return adcp.Unquote(resp.Value), nil
}

// queryTokenList handles queries that answer either a single quoted token or
// a JSON array of them, filtering out the none sentinel.
func (c *Controller) queryTokenList(ctx context.Context, cmd adcp.Command, none string) ([]string, error) {
	resp, err := c.client.Execute(ctx, cmd, "", adcp.ParamQuery)
	if err != nil {
		return nil, err
	}

	var tokens []string
	if strings.HasPrefix(resp.Value, "[") {
		if err := json.Unmarshal([]byte(resp.Value), &tokens); err != nil {
			return nil, fmt.Errorf("parse %s response %q: %w", cmd.Name, resp.Value, err)
		}
	} else {
		tokens = []string{adcp.Unquote(resp.Value)}
	}

	active := tokens[:0]
	for _, tok := range tokens {
		if tok != none && tok != "" {
			active = append(active, tok)
		}
	}
	return active, nil
}
