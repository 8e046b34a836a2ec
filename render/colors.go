package render

// Palette
var (
	RgbBackground = Hex(0x232424)
	RgbPath       = Hex(0x00ff00) // Trail and win marker
	RgbPlayer     = Hex(0xeb4034)
	RgbMaze       = Hex(0x94c8d4)

	// Outlines for the pixel frontend
	RgbPlayerStroke = Hex(0xb0302a)
	RgbPathStroke   = Hex(0x00bf00)

	RgbText     = Hex(0xffffff)
	RgbTextDim  = Hex(0xa0a0a0)
	RgbWin      = Hex(0x00ff00)
	RgbLose     = Hex(0xff0000)
	RgbPending  = Hex(0xffa500) // Panel values waiting for the next round
	RgbBackdrop = RGBBlack
)
