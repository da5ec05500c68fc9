package adcp

import (
	"errors"
	"testing"
)

func TestEncode_SelectWithValue(t *testing.T) {
	line, err := Encode(CmdPower, ValueOn, ParamNone)
	if err != nil {
		t.Fatal(err)
	}
	if line != `power "on"` {
		t.Errorf("got %q", line)
	}
}

func TestEncode_QueryWithParameter(t *testing.T) {
	line, err := Encode(QueryInput, "", ParamQuery)
	if err != nil {
		t.Fatal(err)
	}
	if line != "input ?" {
		t.Errorf("got %q", line)
	}
}

func TestEncode_RangeQuery(t *testing.T) {
	line, err := Encode(QueryInput, "", ParamRange)
	if err != nil {
		t.Fatal(err)
	}
	if line != "input ? --range" {
		t.Errorf("got %q", line)
	}
}

func TestEncode_NumericRelative(t *testing.T) {
	line, err := Encode(CmdLightOutput, "+10", ParamRelative)
	if err != nil {
		t.Fatal(err)
	}
	if line != "light_output_val +10 --rel" {
		t.Errorf("got %q", line)
	}
}

func TestEncode_KeyRejectsValue(t *testing.T) {
	if _, err := Encode(KeyMenu, `"on"`, ParamNone); !errors.Is(err, ErrValueNotAllowed) {
		t.Errorf("expected ErrValueNotAllowed, got %v", err)
	}
}

func TestEncode_ExecuteRejectsValue(t *testing.T) {
	if _, err := Encode(CmdTimerReset, "1", ParamNone); !errors.Is(err, ErrValueNotAllowed) {
		t.Errorf("expected ErrValueNotAllowed, got %v", err)
	}
}

func TestEncode_QueryWithoutParameterRejected(t *testing.T) {
	if _, err := Encode(QueryPowerStatus, "", ParamNone); !errors.Is(err, ErrQueryParameterRequired) {
		t.Errorf("expected ErrQueryParameterRequired, got %v", err)
	}
}

func TestClassify_Ack(t *testing.T) {
	resp, err := Classify("ok\r\n", `power "on"`)
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Ack() {
		t.Errorf("expected acknowledgement, got %+v", resp)
	}
}

func TestClassify_QuotedValue(t *testing.T) {
	resp, err := Classify(`"standby"`+"\r\n", "power_status ?")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Kind != KindValue || resp.Value != `"standby"` {
		t.Errorf("got %+v", resp)
	}
}

func TestClassify_BareScalarForQuery(t *testing.T) {
	resp, err := Classify("42\r\n", "temperature ?")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Kind != KindValue || resp.Value != "42" {
		t.Errorf("got %+v", resp)
	}
}

// A literal "ok" answered to a query is classified as a value: the
// query-suffix rule is checked before the ok rule.
func TestClassify_OkForQueryIsValue(t *testing.T) {
	resp, err := Classify("ok\r\n", "signal ?")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Kind != KindValue || resp.Value != "ok" {
		t.Errorf("got %+v", resp)
	}
}

func TestClassify_Range(t *testing.T) {
	resp, err := Classify(`["hdmi1","hdmi2"]`+"\r\n", "input ? --range")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Kind != KindRange {
		t.Fatalf("got kind %v", resp.Kind)
	}
	if len(resp.Range) != 2 || resp.Range[0] != "hdmi1" || resp.Range[1] != "hdmi2" {
		t.Errorf("got %v", resp.Range)
	}
}

func TestClassify_MalformedRange(t *testing.T) {
	_, err := Classify(`["hdmi1",]`+"\r\n", "input ? --range")
	if !errors.Is(err, ErrMalformedRange) {
		t.Errorf("expected ErrMalformedRange, got %v", err)
	}
}

// An array-shaped reply to a plain query stays a raw value; only --range
// replies are JSON-parsed.
func TestClassify_ArrayValueForPlainQuery(t *testing.T) {
	raw := `[{"light_src": 1234}]`
	resp, err := Classify(raw+"\r\n", "timer ?")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Kind != KindValue || resp.Value != raw {
		t.Errorf("got %+v", resp)
	}
}

func TestClassify_ErrorTokens(t *testing.T) {
	cases := []struct {
		line string
		want error
	}{
		{"err_cmd", ErrCommandNotRecognized},
		{"err_val", ErrValueOutOfRange},
		{"err_option", ErrOptionUnsupported},
		{"err_inactive", ErrTemporarilyUnavailable},
		{"err_internal1", ErrInternalDevice},
		{"err_internal2", ErrInternalDevice},
		{"err_auth", ErrAuthentication},
	}
	for _, c := range cases {
		if _, err := Classify(c.line, `power "on"`); !errors.Is(err, c.want) {
			t.Errorf("%s: expected %v, got %v", c.line, c.want, err)
		}
	}
}

// Error tokens win regardless of surrounding text.
func TestClassify_ErrorTokenWithSurroundingText(t *testing.T) {
	if _, err := Classify(`"err_val"`, `contrast 999`); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("expected ErrValueOutOfRange, got %v", err)
	}
}

func TestClassify_UnknownResponse(t *testing.T) {
	_, err := Classify("banana", `power "on"`)
	if !errors.Is(err, ErrUnknownResponse) {
		t.Errorf("expected ErrUnknownResponse, got %v", err)
	}
}

func TestClassify_EmptyLine(t *testing.T) {
	_, err := Classify("\r\n", `power "on"`)
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestEncodeClassify_RoundTrip(t *testing.T) {
	line, err := Encode(CmdInput, InputHDMI1, ParamNone)
	if err != nil {
		t.Fatal(err)
	}
	if line != `input "hdmi1"` {
		t.Fatalf("got %q", line)
	}
	resp, err := Classify(`"hdmi1"`, line)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Value != InputHDMI1 {
		t.Errorf("got %q", resp.Value)
	}
}

func TestParseParameter(t *testing.T) {
	for in, want := range map[string]Parameter{
		"":          ParamNone,
		"?":         ParamQuery,
		"query":     ParamQuery,
		"range":     ParamRange,
		"? --range": ParamRange,
		"--rel":     ParamRelative,
		"reset":     ParamReset,
		"--info":    ParamInfo,
	} {
		got, err := ParseParameter(in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: got %q, want %q", in, got, want)
		}
	}

	if _, err := ParseParameter("--bogus"); err == nil {
		t.Error("expected error for unknown parameter")
	}
}

func TestQuoteUnquote(t *testing.T) {
	if Quote("on") != `"on"` {
		t.Error("Quote failed")
	}
	if Quote(`"on"`) != `"on"` {
		t.Error("Quote double-wrapped")
	}
	if Unquote(`"on"`) != "on" {
		t.Error("Unquote failed")
	}
	if Unquote("42") != "42" {
		t.Error("Unquote mangled bare token")
	}
}

func TestLookup(t *testing.T) {
	cmd, ok := Lookup("picture_mode")
	if !ok || cmd.Category != CategorySelect {
		t.Errorf("got %+v ok=%v", cmd, ok)
	}
	if _, ok := Lookup("made_up_cmd"); ok {
		t.Error("unexpected hit for unregistered command")
	}
}

func TestKeyByName(t *testing.T) {
	k, ok := KeyByName("lens_shift_up")
	if !ok || k.Name != `key "lens_shift_up"` {
		t.Errorf("got %+v ok=%v", k, ok)
	}
	if _, ok := KeyByName("warp"); ok {
		t.Error("unexpected hit for unknown key")
	}
}
