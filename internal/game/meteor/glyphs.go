package meteor

// Grid glyphs. Large meteors span two adjacent cells and alternate between
// two animation frames; small meteors pulse between two shapes on the same
// cadence.
const (
	GlyphLargeL1 = '▟'
	GlyphLargeR1 = '▙'
	GlyphLargeL2 = '▜'
	GlyphLargeR2 = '▛'
	GlyphSmall1  = '●'
	GlyphSmall2  = '◌'

	GlyphExplode1 = '✶'
	GlyphExplode2 = '·'

	GlyphStarDim    = '·'
	GlyphStarBright = '+'

	GlyphShield = '█'
	GlyphBullet = '|'
	GlyphGround = '═'
)

// Overlay glyphs for the fine-resolution movables drawn on top of the field.
const (
	GlyphShip       = '▲'
	GlyphUFOLeft    = '<'
	GlyphUFOBody    = 'o'
	GlyphUFORight   = '>'
	GlyphPowerField = '◆'
)
