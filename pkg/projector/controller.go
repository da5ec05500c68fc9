// Package projector builds device-level operations (power, input, picture
// settings, sensors) on top of the raw ADCP command session.
package projector

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/pmartell/sonyadcp/pkg/adcp"
)

// ErrUnknownKey indicates a keypress name with no remote-control mapping.
var ErrUnknownKey = errors.New("unknown remote key")

// Client is the slice of the ADCP session the controller needs. *adcp.Session
// satisfies it; tests substitute a scripted fake.
type Client interface {
	Execute(ctx context.Context, cmd adcp.Command, value string, param adcp.Parameter) (adcp.Response, error)
	ExecuteRaw(ctx context.Context, line string) (adcp.Response, error)
}

// Controller drives one projector. It holds no mutable state of its own:
// every operation is a self-contained command exchange, so a Controller is
// safe for concurrent use.
type Controller struct {
	client Client
}

// NewController creates a Controller over an ADCP client.
func NewController(client Client) *Controller {
	return &Controller{client: client}
}

// PowerOn switches the projector on.
func (c *Controller) PowerOn(ctx context.Context) error {
	_, err := c.client.Execute(ctx, adcp.CmdPower, adcp.ValueOn, adcp.ParamNone)
	return err
}

// PowerOff puts the projector into standby.
func (c *Controller) PowerOff(ctx context.Context) error {
	_, err := c.client.Execute(ctx, adcp.CmdPower, adcp.ValueOff, adcp.ParamNone)
	return err
}

// PowerToggle emulates the remote power key.
func (c *Controller) PowerToggle(ctx context.Context) error {
	_, err := c.client.Execute(ctx, adcp.KeyPowerToggle, "", adcp.ParamNone)
	return err
}

// PowerStatus returns the unquoted power state token: on, off, standby,
// startup, cooling1 or cooling2.
func (c *Controller) PowerStatus(ctx context.Context) (string, error) {
	resp, err := c.client.Execute(ctx, adcp.QueryPowerStatus, "", adcp.ParamQuery)
	if err != nil {
		return "", err
	}
	return adcp.Unquote(resp.Value), nil
}

// PoweredOn reports whether the projector is on or starting up. The cooling
// states count as off, matching how the device itself reports them on the
// way to standby.
func (c *Controller) PoweredOn(ctx context.Context) (bool, error) {
	status, err := c.PowerStatus(ctx)
	if err != nil {
		return false, err
	}
	return status == "on" || status == "startup", nil
}

// SelectInput switches to the given input, e.g. "hdmi1".
func (c *Controller) SelectInput(ctx context.Context, input string) error {
	_, err := c.client.Execute(ctx, adcp.CmdInput, adcp.Quote(input), adcp.ParamNone)
	return err
}

// CurrentInput returns the unquoted active input selector.
func (c *Controller) CurrentInput(ctx context.Context) (string, error) {
	resp, err := c.client.Execute(ctx, adcp.QueryInput, "", adcp.ParamQuery)
	if err != nil {
		return "", err
	}
	return adcp.Unquote(resp.Value), nil
}

// SetMuted blanks or unblanks the picture.
func (c *Controller) SetMuted(ctx context.Context, muted bool) error {
	value := adcp.ValueOff
	if muted {
		value = adcp.ValueOn
	}
	_, err := c.client.Execute(ctx, adcp.CmdPictureMute, value, adcp.ParamNone)
	return err
}

// Muted reports whether the picture is blanked.
func (c *Controller) Muted(ctx context.Context) (bool, error) {
	resp, err := c.client.Execute(ctx, adcp.QueryMute, "", adcp.ParamQuery)
	if err != nil {
		return false, err
	}
	return resp.Value == adcp.ValueOn, nil
}

// PressKey emulates a remote-control keypress by bare key name, e.g. "menu"
// or "lens_shift_up".
func (c *Controller) PressKey(ctx context.Context, name string) error {
	key, ok := adcp.KeyByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	_, err := c.client.Execute(ctx, key, "", adcp.ParamNone)
	return err
}

// Select applies a value to a select command, e.g. picture mode or aspect.
func (c *Controller) Select(ctx context.Context, cmd adcp.Command, value string) error {
	_, err := c.client.Execute(ctx, cmd, adcp.Quote(value), adcp.ParamNone)
	return err
}

// Send forwards a command given as strings from an API boundary. Tokens
// missing from the registry are passed through as select commands so newer
// firmware vocabulary stays reachable; the device answers err_cmd if it does
// not recognize them.
func (c *Controller) Send(ctx context.Context, name, value, parameter string) (adcp.Response, error) {
	param, err := adcp.ParseParameter(parameter)
	if err != nil {
		return adcp.Response{}, err
	}

	cmd, ok := adcp.Lookup(name)
	if !ok {
		if param == adcp.ParamQuery || param == adcp.ParamRange {
			cmd = adcp.Command{Name: name, Category: adcp.CategoryQuery}
		} else {
			cmd = adcp.Command{Name: name, Category: adcp.CategorySelect}
		}
		log.Debug().Str("command", name).Msg("Forwarding unregistered command")
	}

	return c.client.Execute(ctx, cmd, value, param)
}

// AllowedValues returns the legal value list for a settable command via a
// range query.
func (c *Controller) AllowedValues(ctx context.Context, name string) ([]string, error) {
	resp, err := c.client.Execute(ctx, adcp.Command{Name: name, Category: adcp.CategoryQuery}, "", adcp.ParamRange)
	if err != nil {
		return nil, err
	}
	return resp.Range, nil
}
