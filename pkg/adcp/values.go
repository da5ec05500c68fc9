package adcp

import "strings"

// Value tokens are opaque quoted strings to the protocol layer; which ones a
// given command accepts is a device property. The tables below enumerate the
// tokens known to current VPL firmware so callers can build requests without
// hand-quoting, but nothing rejects a token missing from them.

// Quote wraps a bare token in the double quotes ADCP value tokens carry on
// the wire. Already-quoted tokens are returned unchanged.
func Quote(token string) string {
	if strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`) && len(token) >= 2 {
		return token
	}
	return `"` + token + `"`
}

// Unquote strips the surrounding double quotes from a wire token, if present.
func Unquote(token string) string {
	if strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`) && len(token) >= 2 {
		return token[1 : len(token)-1]
	}
	return token
}

// Power and mute states. power_status additionally reports the transient
// startup/cooling states.
const (
	ValueOn       = `"on"`
	ValueOff      = `"off"`
	ValueStandby  = `"standby"`
	ValueStartup  = `"startup"`
	ValueCooling1 = `"cooling1"`
	ValueCooling2 = `"cooling2"`
)

// Input selectors.
const (
	InputHDMI1 = `"hdmi1"`
	InputHDMI2 = `"hdmi2"`
)

// Picture modes.
const (
	PictureModeCinemaFilm1  = `"cinema_film1"`
	PictureModeCinemaFilm2  = `"cinema_film2"`
	PictureModeReference    = `"reference"`
	PictureModeTV           = `"tv"`
	PictureModePhoto        = `"photo"`
	PictureModeBrightCinema = `"brt_cinema"`
	PictureModeBrightTV     = `"brt_tv"`
	PictureModeUser         = `"user"`
	PictureModeUser1        = `"user1"`
	PictureModeUser2        = `"user2"`
	PictureModeUser3        = `"user3"`
	PictureModeGame         = `"game"`
)

// Picture positions.
const (
	PicturePosition185     = `"1.85_1"`
	PicturePosition235     = `"2.35_1"`
	PicturePositionCustom1 = `"custom1"`
	PicturePositionCustom2 = `"custom2"`
	PicturePositionCustom3 = `"custom3"`
	PicturePositionCustom4 = `"custom4"`
	PicturePositionCustom5 = `"custom5"`
)

// Aspect ratios.
const (
	AspectFull1    = `"full1"`
	AspectFull2    = `"full2"`
	AspectNormal   = `"normal"`
	AspectStretch  = `"stretch"`
	AspectVStretch = `"v_stretch"`
	AspectSqueeze  = `"squeeze"`
	AspectZoom185  = `"1.85_1_zoom"`
	AspectZoom235  = `"2.35_1_zoom"`
)

// Motionflow modes.
const (
	MotionflowSmoothHigh  = `"smooth_high"`
	MotionflowSmoothLow   = `"smooth_low"`
	MotionflowImpulse     = `"impulse"`
	MotionflowCombination = `"combination"`
	MotionflowTrueCinema  = `"true_cinema"`
	MotionflowOff         = `"off"`
)

// HDR modes.
const (
	HDRAuto      = `"auto"`
	HDRHLG       = `"hlg"`
	HDR10        = `"hdr10"`
	HDRReference = `"hdr_reference"`
)

// HDR dynamic tone mapping modes.
const (
	ToneMappingMode1 = `"mode1"`
	ToneMappingMode2 = `"mode2"`
	ToneMappingMode3 = `"mode3"`
)

// Lamp control settings.
const (
	LampLow  = `"low"`
	LampHigh = `"high"`
)

// Dynamic iris / light source control settings.
const (
	LightControlFull    = `"full"`
	LightControlLimited = `"limited"`
)

// 2D/3D display modes.
const (
	Mode2D3DAuto = `"auto"`
	Mode3D       = `"3d"`
	Mode2D       = `"2d"`
)

// 3D formats.
const (
	Format3DSimulated  = `"simulated"`
	Format3DSideBySide = `"sidebyside"`
	Format3DOverUnder  = `"overunder"`
)

// Menu positions.
const (
	MenuBottomLeft = `"bottom_left"`
	MenuCenter     = `"center"`
)

// Color spaces.
const (
	ColorSpaceBT709   = `"bt709"`
	ColorSpaceBT2020  = `"bt2020"`
	ColorSpaceCustom  = `"custom"`
	ColorSpacePreset1 = `"color_space1"`
	ColorSpacePreset2 = `"color_space2"`
	ColorSpacePreset3 = `"color_space3"`
)

// Color temperatures.
const (
	ColorTempD93     = `"d93"`
	ColorTempD75     = `"d75"`
	ColorTempD65     = `"d65"`
	ColorTempD55     = `"d55"`
	ColorTempCustom1 = `"custom1"`
	ColorTempCustom2 = `"custom2"`
	ColorTempCustom3 = `"custom3"`
	ColorTempCustom4 = `"custom4"`
	ColorTempCustom5 = `"custom5"`
)

// Tokens reported by `error ?`. The device answers with a JSON array that
// may contain several of these at once.
const (
	DeviceErrNone          = "no_err"
	DeviceErrPower         = "err_power"
	DeviceErrPower2        = "err_power2"
	DeviceErrSystem3       = "err_system3"
	DeviceErrSystem4       = "err_system4"
	DeviceErrSystem5       = "err_system5"
	DeviceErrCover         = "err_cover"
	DeviceErrLightSource   = "err_light_src"
	DeviceErrLensCover     = "err_lens_cover"
	DeviceErrShock         = "err_shock"
	DeviceErrNoLens        = "err_nolens"
	DeviceErrAttitude      = "err_attitude"
	DeviceErrTemperature   = "err_temp"
	DeviceErrFan           = "err_fan"
	DeviceErrWheel         = "err_wheel"
	DeviceErrLuminance     = "err_light_over"
	DeviceErrAssembly      = "err_assy"
	DeviceErrBallastUpdate = "err_ballast_update"
)

// Tokens reported by `warning ?`.
const (
	DeviceWarnNone            = "no_warn"
	DeviceWarnLightSourceLife = "warn_light_src_life"
	DeviceWarnAltitude        = "warn_highland"
	DeviceWarnTemperature     = "warn_temp"
	DeviceWarnSignalFreq      = "warn_signal_freq"
	DeviceWarnSignalType      = "warn_signal_sel"
)
