package catalog

import "fmt"

// Sprite is an opaque handle returned by the asset loader (an external
// collaborator per spec; this package never inspects it).
type Sprite any

// Direction is one of the four cardinal directions used for edge
// compatibility and WFC propagation.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "n"
	case East:
		return "e"
	case South:
		return "s"
	case West:
		return "w"
	default:
		return "?"
	}
}

// Opposite returns the direction a neighbor on side D sees back at this tile.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Tile is a single entry in a tile catalog. Edge descriptors come in two
// equivalent dialects (§3): the four-edge form (North/East/South/West,
// each optionally nil) and the eight-point form (X, an 8-character ring
// starting at the NW corner). When both are present, X is authoritative.
type Tile struct {
	Name        string
	ID          int
	Sprite      Sprite
	North       *string
	East        *string
	South       *string
	West        *string
	X           string // empty when the tile uses the four-edge form
	Transparent bool
	Animated    bool
}

// Edge returns the tile's 3-character connector in direction D and whether
// it is defined. Four-edge tiles can have a nil edge in a given direction
// (no constraint, no neighbors); eight-point tiles always have a defined
// edge since X is always fully populated.
func (t *Tile) Edge(d Direction) (string, bool) {
	if t.X != "" {
		return eightPointEdge(t.X, d), true
	}
	var p *string
	switch d {
	case North:
		p = t.North
	case East:
		p = t.East
	case South:
		p = t.South
	case West:
		p = t.West
	}
	if p == nil {
		return "", false
	}
	return *p, true
}

// eightPointEdge extracts the 3-character connector for direction d from
// an 8-character ring indexed clockwise from the NW corner: 0=NW, 1=N-mid,
// 2=NE, 3=E-mid, 4=SE, 5=S-mid, 6=SW, 7=W-mid (§3). South and West are
// read in reverse ring order so every edge compares left-to-right in the
// same frame a neighboring tile would read its opposite edge.
func eightPointEdge(x string, d Direction) string {
	b := []byte(x)
	switch d {
	case North:
		return string(b[0:3])
	case East:
		return string([]byte{b[2], b[3], b[4]})
	case South:
		return string([]byte{b[6], b[5], b[4]})
	case West:
		return string([]byte{b[0], b[7], b[6]})
	default:
		return ""
	}
}

// AnimationStep is one frame of an animation: its own tile id and sprite,
// plus how long it is shown. Steps embed their sprite directly rather than
// a pointer back to a full Tile, so no cycle exists between an animated
// tile and its steps (§9).
type AnimationStep struct {
	ID         int
	DurationMS int
	Sprite     Sprite
}

// Animation is the ordered, non-empty step sequence for one tile id.
type Animation struct {
	ID    int
	Steps []AnimationStep
}

// ANIMATION_INV_SPEED and ANIMATION_SEQUENCE_LEN from §3: the effective
// step index for an animated tile at tick t is
// (t / ANIMATION_INV_SPEED) mod ANIMATION_SEQUENCE_LEN.
const (
	AnimationInvSpeed   = 5
	AnimationSequenceLen = 4
)

// StepAt returns the animation step shown at tick t.
func (a Animation) StepAt(t int) AnimationStep {
	idx := (t / AnimationInvSpeed) % AnimationSequenceLen
	if idx < 0 {
		idx += AnimationSequenceLen
	}
	if idx >= len(a.Steps) {
		idx = len(a.Steps) - 1
	}
	return a.Steps[idx]
}

// Character is a peripheral, passive record: an action name maps to an
// ordered list of sprite frames (§3). The core never reads it.
type Character map[string][]Sprite

// Catalog is the immutable, built-once result of Load.
type Catalog struct {
	TilesByName map[string]*Tile
	Animations  []Animation
	Characters  map[string]Character
}

// GetTileByID implements §4.1's get_tile_by_id: exactly one tile must carry
// the given id.
func (c *Catalog) GetTileByID(id int) (*Tile, error) {
	var found *Tile
	count := 0
	for _, t := range c.TilesByName {
		if t.ID == id {
			found = t
			count++
		}
	}
	if count != 1 {
		return nil, ambiguousOrMissing("tile id %d matched %d tiles, want exactly 1", id, count)
	}
	return found, nil
}

// GetAnimationSteps implements §4.3's steps operation.
func (c *Catalog) GetAnimationSteps(id int) ([]AnimationStep, error) {
	var found *Animation
	count := 0
	for i := range c.Animations {
		if c.Animations[i].ID == id {
			found = &c.Animations[i]
			count++
		}
	}
	if count != 1 {
		return nil, &AnimationError{Msg: fmt.Sprintf("animation id %d matched %d entries, want exactly 1", id, count)}
	}
	return found.Steps, nil
}
