package projector

import (
	"context"
	"errors"
	"testing"

	"github.com/pmartell/sonyadcp/pkg/adcp"
)

// scriptedClient answers each encoded command line from a canned table and
// records what was sent.
type scriptedClient struct {
	replies map[string]string
	sent    []string
}

func (c *scriptedClient) Execute(ctx context.Context, cmd adcp.Command, value string, param adcp.Parameter) (adcp.Response, error) {
	line, err := adcp.Encode(cmd, value, param)
	if err != nil {
		return adcp.Response{}, err
	}
	return c.ExecuteRaw(ctx, line)
}

func (c *scriptedClient) ExecuteRaw(ctx context.Context, line string) (adcp.Response, error) {
	c.sent = append(c.sent, line)
	reply, ok := c.replies[line]
	if !ok {
		reply = "err_cmd"
	}
	return adcp.Classify(reply, line)
}

func newController(replies map[string]string) (*Controller, *scriptedClient) {
	client := &scriptedClient{replies: replies}
	return NewController(client), client
}

func TestPowerOn(t *testing.T) {
	c, client := newController(map[string]string{`power "on"`: "ok"})
	if err := c.PowerOn(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(client.sent) != 1 || client.sent[0] != `power "on"` {
		t.Errorf("sent %v", client.sent)
	}
}

func TestPowerStatus(t *testing.T) {
	c, _ := newController(map[string]string{"power_status ?": `"standby"`})
	status, err := c.PowerStatus(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if status != "standby" {
		t.Errorf("got %q", status)
	}
}

func TestPoweredOn(t *testing.T) {
	cases := map[string]bool{
		`"on"`:       true,
		`"startup"`:  true,
		`"standby"`:  false,
		`"cooling1"`: false,
		`"cooling2"`: false,
	}
	for reply, want := range cases {
		c, _ := newController(map[string]string{"power_status ?": reply})
		got, err := c.PoweredOn(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%s: got %v, want %v", reply, got, want)
		}
	}
}

func TestSelectInput_QuotesBareToken(t *testing.T) {
	c, client := newController(map[string]string{`input "hdmi2"`: "ok"})
	if err := c.SelectInput(context.Background(), "hdmi2"); err != nil {
		t.Fatal(err)
	}
	if client.sent[0] != `input "hdmi2"` {
		t.Errorf("sent %q", client.sent[0])
	}
}

func TestMuted(t *testing.T) {
	c, _ := newController(map[string]string{"blank ?": `"on"`})
	muted, err := c.Muted(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !muted {
		t.Error("expected muted")
	}
}

func TestPressKey(t *testing.T) {
	c, client := newController(map[string]string{`key "menu"`: "ok"})
	if err := c.PressKey(context.Background(), "menu"); err != nil {
		t.Fatal(err)
	}
	if client.sent[0] != `key "menu"` {
		t.Errorf("sent %q", client.sent[0])
	}
}

func TestPressKey_Unknown(t *testing.T) {
	c, _ := newController(nil)
	if err := c.PressKey(context.Background(), "warp"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("expected ErrUnknownKey, got %v", err)
	}
}

func TestSend_RegisteredCommand(t *testing.T) {
	c, _ := newController(map[string]string{`picture_mode "game"`: "ok"})
	resp, err := c.Send(context.Background(), "picture_mode", `"game"`, "")
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Ack() {
		t.Errorf("got %+v", resp)
	}
}

func TestSend_UnregisteredCommandForwarded(t *testing.T) {
	c, client := newController(map[string]string{`laser_focus "fine"`: "ok"})
	if _, err := c.Send(context.Background(), "laser_focus", `"fine"`, ""); err != nil {
		t.Fatal(err)
	}
	if client.sent[0] != `laser_focus "fine"` {
		t.Errorf("sent %q", client.sent[0])
	}
}

func TestSend_UnregisteredQuery(t *testing.T) {
	c, _ := newController(map[string]string{"laser_hours ?": "123"})
	resp, err := c.Send(context.Background(), "laser_hours", "", "?")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Value != "123" {
		t.Errorf("got %+v", resp)
	}
}

func TestAllowedValues(t *testing.T) {
	c, _ := newController(map[string]string{"input ? --range": `["hdmi1","hdmi2"]`})
	values, err := c.AllowedValues(context.Background(), "input")
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 2 || values[0] != "hdmi1" {
		t.Errorf("got %v", values)
	}
}

func TestSnapshot_On(t *testing.T) {
	c, _ := newController(map[string]string{
		"power_status ?": `"on"`,
		"input ?":        `"hdmi1"`,
		"blank ?":        `"off"`,
	})
	state, err := c.Snapshot(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := State{Power: "on", Input: "hdmi1", Muted: false}
	if state != want {
		t.Errorf("got %+v, want %+v", state, want)
	}
}

func TestSnapshot_StandbySkipsAttributeQueries(t *testing.T) {
	c, client := newController(map[string]string{
		"power_status ?": `"standby"`,
	})
	state, err := c.Snapshot(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if state.Power != "standby" || state.Input != "" {
		t.Errorf("got %+v", state)
	}
	if len(client.sent) != 1 {
		t.Errorf("unexpected extra queries: %v", client.sent)
	}
}

func TestSnapshot_ToleratesUnsupportedAttribute(t *testing.T) {
	c, _ := newController(map[string]string{
		"power_status ?": `"on"`,
		"input ?":        "err_inactive",
		"blank ?":        `"on"`,
	})
	state, err := c.Snapshot(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if state.Input != "" || !state.Muted {
		t.Errorf("got %+v", state)
	}
}

func TestApply_PowerBeforeInput(t *testing.T) {
	c, client := newController(map[string]string{
		`power "on"`:     "ok",
		`input "hdmi2"`:  "ok",
		"power_status ?": `"on"`,
		"input ?":        `"hdmi2"`,
		"blank ?":        `"off"`,
	})
	state, err := c.Apply(context.Background(), map[string]any{
		"power": "on",
		"input": "hdmi2",
	})
	if err != nil {
		t.Fatal(err)
	}
	if state.Input != "hdmi2" {
		t.Errorf("got %+v", state)
	}
	if client.sent[0] != `power "on"` || client.sent[1] != `input "hdmi2"` {
		t.Errorf("order wrong: %v", client.sent)
	}
}

func TestLightSourceHours(t *testing.T) {
	c, _ := newController(map[string]string{
		"timer ?": `[{"high": 10}, {"light_src": 1234}]`,
	})
	hours, err := c.LightSourceHours(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if hours != 1234 {
		t.Errorf("got %d", hours)
	}
}

func TestLightSourceHours_MissingCounter(t *testing.T) {
	c, _ := newController(map[string]string{"timer ?": `[{"high": 10}]`})
	if _, err := c.LightSourceHours(context.Background()); err == nil {
		t.Error("expected error for missing light_src counter")
	}
}

func TestActiveErrors(t *testing.T) {
	c, _ := newController(map[string]string{
		"error ?": `["err_fan","err_temp"]`,
	})
	errs, err := c.ActiveErrors(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(errs) != 2 || errs[0] != "err_fan" {
		t.Errorf("got %v", errs)
	}
}

func TestActiveErrors_NoneIsEmpty(t *testing.T) {
	c, _ := newController(map[string]string{"error ?": `"no_err"`})
	errs, err := c.ActiveErrors(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(errs) != 0 {
		t.Errorf("got %v", errs)
	}
}

func TestActiveWarnings(t *testing.T) {
	c, _ := newController(map[string]string{"warning ?": `["warn_temp"]`})
	warns, err := c.ActiveWarnings(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(warns) != 1 || warns[0] != "warn_temp" {
		t.Errorf("got %v", warns)
	}
}

func TestIdentify(t *testing.T) {
	c, _ := newController(map[string]string{
		"modelname ?":   `"VPL-XW5000"`,
		"serialnum ?":   "7001234",
		"mac_address ?": `"00:1a:80:11:22:33"`,
	})
	id, err := c.Identify(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := Identity{Model: "VPL-XW5000", Serial: "7001234", MACAddress: "00:1a:80:11:22:33"}
	if id != want {
		t.Errorf("got %+v", id)
	}
}

func TestIdentify_PropagatesDeviceError(t *testing.T) {
	c, _ := newController(map[string]string{"modelname ?": "err_internal1"})
	if _, err := c.Identify(context.Background()); !errors.Is(err, adcp.ErrInternalDevice) {
		t.Errorf("expected ErrInternalDevice, got %v", err)
	}
}

// Guard against the fake itself drifting: unknown lines answer err_cmd.
func TestScriptedClientDefault(t *testing.T) {
	c, _ := newController(nil)
	err := c.PowerOn(context.Background())
	if !errors.Is(err, adcp.ErrCommandNotRecognized) {
		t.Errorf("expected ErrCommandNotRecognized, got %v", err)
	}
}
