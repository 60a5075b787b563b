package meteor

// Field geometry. The play field is a fixed 40x25 cell grid; fine-resolution
// movables (ship, bullets, power-up, UFO) track positions in pixels at 8
// pixels per cell and collapse to cells for grid collision checks.
const (
	FieldW = 40
	FieldH = 25

	PxPerCell = 8

	TopRow    = 2  // First row meteors and stars may occupy (rows 0-1 are sky/UFO lane)
	ShipRow   = 22 // Cell row of the player ship
	GroundRow = 23 // Decorative ground line
	HUDRow    = 0  // Score/wave/lives
	StatusRow = 24 // Combo banner, buff indicators, wave progress

	ShieldRow   = 20 // Top row of the shield bunkers
	ShieldCount = 4
	ShieldWidth = 4

	ShipSpeed   = 2 // Pixels per frame
	BulletSpeed = 5 // Pixels per frame, upward
)

// Pool capacities. All pools allocate by linear scan and fail silently when
// full; a dropped spawn or effect is acceptable loss in a fixed-budget
// real-time loop.
const (
	MaxMeteors    = 16
	MaxStars      = 20
	MaxExplosions = 8
)

// px converts a cell coordinate to pixels.
func px(cell int) int {
	return cell * PxPerCell
}

// toCell converts a pixel coordinate to its cell.
func toCell(p int) int {
	return p / PxPerCell
}

// Ship travel limits and fixed rows, in pixels.
var (
	shipMinX  = px(1)
	shipMaxX  = px(37)
	shipRowPx = px(ShipRow)
	bulletTop = px(1) + 4
)
