package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// PixelsPerMeter is the top-down view scale.
	PixelsPerMeter = 12
)
