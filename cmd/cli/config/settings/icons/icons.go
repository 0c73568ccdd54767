package icons

const (
	Clock = ""

	Battery100      = "􀛨"
	Battery75       = "􀺸"
	Battery50       = "􀺶"
	Battery25       = "􀛩"
	Battery0        = "􀛪"
	BatteryCharging = "􀢋"
	BatteryUnknown  = "􀛪"

	Speaker     = "􀊩"
	SpeakerMute = "􀊣"

	None = ""
)

// Battery picks the glyph for a percentage the way the bar buckets them.
func Battery(percent int, charging bool) string {
	if charging {
		return BatteryCharging
	}

	switch {
	case percent >= 80:
		return Battery100
	case percent >= 70:
		return Battery75
	case percent >= 40:
		return Battery50
	case percent >= 10:
		return Battery25
	default:
		return Battery0
	}
}
