package projector

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/pmartell/sonyadcp/pkg/adcp"
)

// State is a point-in-time snapshot of the attributes a host UI cares about.
type State struct {
	Power string `json:"power"`           // on, standby, startup, cooling1, cooling2
	Input string `json:"input,omitempty"` // active input selector, empty in standby
	Muted bool   `json:"muted"`
}

// Snapshot reads the current state. Input and mute are only queried while
// the projector is on; in standby most commands answer err_inactive anyway.
// Device-side unavailability of individual attributes is tolerated, network
// and authentication failures are not.
func (c *Controller) Snapshot(ctx context.Context) (State, error) {
	power, err := c.PowerStatus(ctx)
	if err != nil {
		return State{}, err
	}

	state := State{Power: power}
	if power != "on" {
		return state, nil
	}

	input, err := c.CurrentInput(ctx)
	switch {
	case err == nil:
		state.Input = input
	case recoverable(err):
		log.Debug().Err(err).Msg("Input unavailable, leaving unset")
	default:
		return State{}, err
	}

	muted, err := c.Muted(ctx)
	switch {
	case err == nil:
		state.Muted = muted
	case recoverable(err):
		log.Debug().Err(err).Msg("Mute state unavailable, leaving unset")
	default:
		return State{}, err
	}

	return state, nil
}

// Apply sets the attributes present in the payload, power first so input and
// mute changes land on a device that is awake. Payloads are validated
// against the state schema before they reach this point.
func (c *Controller) Apply(ctx context.Context, payload map[string]any) (State, error) {
	if power, ok := payload["power"].(string); ok {
		var err error
		if power == "on" {
			err = c.PowerOn(ctx)
		} else {
			err = c.PowerOff(ctx)
		}
		if err != nil {
			return State{}, fmt.Errorf("set power: %w", err)
		}
	}

	if input, ok := payload["input"].(string); ok {
		if err := c.SelectInput(ctx, input); err != nil {
			return State{}, fmt.Errorf("select input: %w", err)
		}
	}

	if muted, ok := payload["muted"].(bool); ok {
		if err := c.SetMuted(ctx, muted); err != nil {
			return State{}, fmt.Errorf("set mute: %w", err)
		}
	}

	return c.Snapshot(ctx)
}

// recoverable reports whether an attribute read failed for a device-side
// reason a snapshot should shrug off: the feature is unsupported on this
// model or unavailable in the current state.
func recoverable(err error) bool {
	return errors.Is(err, adcp.ErrCommandNotRecognized) ||
		errors.Is(err, adcp.ErrOptionUnsupported) ||
		errors.Is(err, adcp.ErrTemporarilyUnavailable)
}
