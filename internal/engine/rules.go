package engine

import (
	"fmt"

	"github.com/vovakirdan/prompt-arcade/internal/core"
)

// spawnEdge is where new entities enter the field.
type spawnEdge int

const (
	spawnNone  spawnEdge = iota
	spawnTop             // fall from the top
	spawnRight           // scroll in from the right along the ground
	spawnPipes           // scroll in from the right as a pair with a gap
)

// anchor is where the player starts.
type anchor int

const (
	anchorBottom   anchor = iota // centered on the bottom row
	anchorGround                 // left quarter, standing on the ground
	anchorFlyer                  // left quarter, mid-air
	anchorLeftEdge               // left edge, vertically centered
)

// rules describe an archetype for the generic step functions.
type rules struct {
	spawn  spawnEdge
	anchor anchor

	gravity     bool // player falls
	ground      bool // a ground line stops the player
	flap        bool // primary sets upward velocity even in mid-air
	edgesHurt   bool // touching ceiling or ground costs a life
	platforms   bool // some spawns are ledges with a target on top
	passScoring bool // +1 when an obstacle gets past the player
	projectiles bool
	ball        bool
	bricks      bool
	cpuPaddle   bool

	grace float64 // seconds of invulnerability after losing a life
}

var rulebook = make(map[core.Archetype]rules)

// registerRules adds an archetype's rules. Registering twice is a bug.
func registerRules(a core.Archetype, r rules) {
	if _, exists := rulebook[a]; exists {
		panic(fmt.Sprintf("engine: rules for %q already registered", a))
	}
	rulebook[a] = r
}

// rulesFor returns the rules for an archetype, or the default archetype's.
func rulesFor(a core.Archetype) rules {
	if r, ok := rulebook[a]; ok {
		return r
	}
	return rulebook[core.DefaultArchetype]
}

func init() {
	registerRules(core.ArchetypeShooter, rules{
		spawn:       spawnTop,
		anchor:      anchorBottom,
		projectiles: true,
	})
	registerRules(core.ArchetypeCatcher, rules{
		spawn:  spawnTop,
		anchor: anchorBottom,
	})
	registerRules(core.ArchetypeRunner, rules{
		spawn:       spawnRight,
		anchor:      anchorGround,
		gravity:     true,
		ground:      true,
		passScoring: true,
		grace:       1.5,
	})
	registerRules(core.ArchetypePlatformer, rules{
		spawn:     spawnRight,
		anchor:    anchorGround,
		gravity:   true,
		ground:    true,
		platforms: true,
		grace:     1.5,
	})
	registerRules(core.ArchetypeRacer, rules{
		spawn:       spawnTop,
		anchor:      anchorBottom,
		passScoring: true,
		grace:       1.0,
	})
	registerRules(core.ArchetypeBreakout, rules{
		anchor: anchorBottom,
		ball:   true,
		bricks: true,
	})
	registerRules(core.ArchetypeFlappy, rules{
		spawn:       spawnPipes,
		anchor:      anchorFlyer,
		gravity:     true,
		flap:        true,
		edgesHurt:   true,
		passScoring: true,
		grace:       1.5,
	})
	registerRules(core.ArchetypePong, rules{
		anchor:    anchorLeftEdge,
		ball:      true,
		cpuPaddle: true,
	})
}
