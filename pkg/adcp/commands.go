package adcp

// Category describes how a command interacts with the projector: whether it
// carries a value, a relative delta, or is read-only/keypress-only.
type Category int

const (
	// CategorySelect commands set a mode and require a following value token.
	CategorySelect Category = iota
	// CategoryNumeric commands set an integer-valued parameter, absolute by
	// default or relative when combined with ParamRelative.
	CategoryNumeric
	// CategoryExecute commands trigger a fire-and-forget action. No value.
	CategoryExecute
	// CategoryKey commands emulate a remote-control keypress. No value.
	CategoryKey
	// CategoryQuery commands are read-only and must be combined with
	// ParamQuery or ParamRange.
	CategoryQuery
)

// String returns the category name for logging.
func (c Category) String() string {
	switch c {
	case CategorySelect:
		return "select"
	case CategoryNumeric:
		return "numeric"
	case CategoryExecute:
		return "execute"
	case CategoryKey:
		return "key"
	case CategoryQuery:
		return "query"
	}
	return "unknown"
}

// Command is an immutable (category, wire token) pair. The token is sent on
// the wire verbatim; key commands embed their quoted key name.
type Command struct {
	Name     string
	Category Category
}

// Select commands. Each takes exactly one value token from the tables in
// values.go. These cover only a fraction of the ADCP vocabulary; unknown
// commands can still be sent raw and will be answered with err_cmd by
// models that do not support them.
var (
	CmdPower            = Command{"power", CategorySelect}
	CmdInput            = Command{"input", CategorySelect}
	CmdPictureMode      = Command{"picture_mode", CategorySelect}
	CmdPicturePosition  = Command{"pic_pos_sel", CategorySelect}
	CmdPicturePosSave   = Command{"pic_pos_save", CategorySelect}
	CmdAspect           = Command{"aspect", CategorySelect}
	CmdMotionflow       = Command{"motionflow", CategorySelect}
	CmdHDR              = Command{"hdr", CategorySelect}
	CmdHDRToneMapping   = Command{"hdr_tone_mapping", CategorySelect}
	CmdMode2D3D         = Command{"2d3d_sel", CategorySelect}
	Cmd3DFormat         = Command{"3d_format", CategorySelect}
	CmdDynIrisControl   = Command{"iris_dyn_cont", CategorySelect}
	CmdDynLightControl  = Command{"light_output_dyn", CategorySelect}
	CmdLampControl      = Command{"lamp_control", CategorySelect}
	CmdInputLagReduce   = Command{"input_lag_red", CategorySelect}
	CmdMenuPosition     = Command{"menu_pos", CategorySelect}
	CmdPictureMute      = Command{"blank", CategorySelect}
	CmdColorSpace       = Command{"color_space", CategorySelect}
	CmdColorTemperature = Command{"color_temp", CategorySelect}
)

// Numeric commands. The value is an integer literal, interpreted as a
// relative delta when sent with ParamRelative.
var (
	CmdContrast    = Command{"contrast", CategoryNumeric}
	CmdBrightness  = Command{"brightness", CategoryNumeric}
	CmdColor       = Command{"color", CategoryNumeric}
	CmdHue         = Command{"hue", CategoryNumeric}
	CmdSharpness   = Command{"sharpness", CategoryNumeric}
	CmdLightOutput = Command{"light_output_val", CategoryNumeric}
)

// Key commands. The quoted key name is part of the wire token, so these
// never take a separate value.
var (
	KeyPowerToggle    = Command{`key "power"`, CategoryKey}
	KeyMenu           = Command{`key "menu"`, CategoryKey}
	KeyUp             = Command{`key "up"`, CategoryKey}
	KeyDown           = Command{`key "down"`, CategoryKey}
	KeyLeft           = Command{`key "left"`, CategoryKey}
	KeyRight          = Command{`key "right"`, CategoryKey}
	KeyEnter          = Command{`key "enter"`, CategoryKey}
	KeyLensFocusNear  = Command{`key "lens_focus_near"`, CategoryKey}
	KeyLensFocusFar   = Command{`key "lens_focus_far"`, CategoryKey}
	KeyLensZoomLarge  = Command{`key "lens_zoom_up"`, CategoryKey}
	KeyLensZoomSmall  = Command{`key "lens_zoom_down"`, CategoryKey}
	KeyLensShiftUp    = Command{`key "lens_shift_up"`, CategoryKey}
	KeyLensShiftDown  = Command{`key "lens_shift_down"`, CategoryKey}
	KeyLensShiftLeft  = Command{`key "lens_shift_left"`, CategoryKey}
	KeyLensShiftRight = Command{`key "lens_shift_right"`, CategoryKey}
	KeyLaserDimUp     = Command{`key "laser_brightness+"`, CategoryKey}
	KeyLaserDimDown   = Command{`key "laser_brightness-"`, CategoryKey}
)

// Execute commands.
var (
	CmdTimerReset = Command{"timer_reset", CategoryExecute}
)

// Query commands. Sent with ParamQuery for the current value or ParamRange
// for the list of legal values.
var (
	QueryPowerStatus = Command{"power_status", CategoryQuery}
	QueryInput       = Command{"input", CategoryQuery}
	QueryMute        = Command{"blank", CategoryQuery}
	QueryColorSpace  = Command{"color_space", CategoryQuery}
	Query3DStatus    = Command{"3d_status", CategoryQuery}
	QuerySignal      = Command{"signal", CategoryQuery}
	QueryTimer       = Command{"timer", CategoryQuery}
	QueryTemperature = Command{"temperature", CategoryQuery}
	QueryWarning     = Command{"warning", CategoryQuery}
	QueryError       = Command{"error", CategoryQuery}
	QueryModelName   = Command{"modelname", CategoryQuery}
	QuerySerial      = Command{"serialnum", CategoryQuery}
	QueryMACAddress  = Command{"mac_address", CategoryQuery}
)

// keyByName maps bare key names to their key commands.
var keyByName = map[string]Command{
	"power":            KeyPowerToggle,
	"menu":             KeyMenu,
	"up":               KeyUp,
	"down":             KeyDown,
	"left":             KeyLeft,
	"right":            KeyRight,
	"enter":            KeyEnter,
	"lens_focus_near":  KeyLensFocusNear,
	"lens_focus_far":   KeyLensFocusFar,
	"lens_zoom_up":     KeyLensZoomLarge,
	"lens_zoom_down":   KeyLensZoomSmall,
	"lens_shift_up":    KeyLensShiftUp,
	"lens_shift_down":  KeyLensShiftDown,
	"lens_shift_left":  KeyLensShiftLeft,
	"lens_shift_right": KeyLensShiftRight,
	"laser_dim_up":     KeyLaserDimUp,
	"laser_dim_down":   KeyLaserDimDown,
}

// KeyByName returns the key command for a bare key name such as "menu".
func KeyByName(name string) (Command, bool) {
	k, ok := keyByName[name]
	return k, ok
}

// commandByName indexes the settable and executable commands by wire token.
var commandByName = func() map[string]Command {
	cmds := []Command{
		CmdPower, CmdInput, CmdPictureMode, CmdPicturePosition,
		CmdPicturePosSave, CmdAspect, CmdMotionflow, CmdHDR,
		CmdHDRToneMapping, CmdMode2D3D, Cmd3DFormat, CmdDynIrisControl,
		CmdDynLightControl, CmdLampControl, CmdInputLagReduce,
		CmdMenuPosition, CmdPictureMute, CmdColorSpace, CmdColorTemperature,
		CmdContrast, CmdBrightness, CmdColor, CmdHue, CmdSharpness,
		CmdLightOutput, CmdTimerReset,
	}
	m := make(map[string]Command, len(cmds))
	for _, c := range cmds {
		m[c.Name] = c
	}
	return m
}()

// Lookup returns the registered command for a wire token. The registry is
// deliberately non-exhaustive: callers forwarding an unregistered token
// should construct a Command themselves and let the device answer err_cmd
// if it does not recognize it.
func Lookup(name string) (Command, bool) {
	c, ok := commandByName[name]
	return c, ok
}
