// Package dungeon holds the immutable directed room graph. The graph is
// validated once at load time and never repaired at runtime.
package dungeon

import (
	"errors"
	"fmt"
	"sort"
)

// ErrContent wraps every load-time validation failure. Callers treat it
// as fatal: a malformed or disconnected map cannot be played.
var ErrContent = errors.New("invalid dungeon content")

// RoomType is the closed set of room categories.
type RoomType string

const (
	RoomHome   RoomType = "home"
	RoomNormal RoomType = "normal"
	RoomBoss   RoomType = "boss"
	RoomExit   RoomType = "exit"
)

// Lock gates entry to a room behind a key item.
type Lock struct {
	KeyItemID string `json:"key_item" yaml:"key_item"`
}

// Room is a node in the dungeon graph. Exits are directional and not
// required to be symmetric.
type Room struct {
	ID   string   `json:"id" yaml:"id"`
	Type RoomType `json:"type" yaml:"type"`
	Name string   `json:"name" yaml:"name"`
	Hint string   `json:"hint" yaml:"hint"`

	// Exits maps a direction label to a target room id.
	Exits map[string]string `json:"exits,omitempty" yaml:"exits,omitempty"`

	BossID string `json:"boss,omitempty" yaml:"boss,omitempty"`
	Lock   *Lock  `json:"lock,omitempty" yaml:"lock,omitempty"`
}

// Graph is the validated, read-only room graph.
type Graph struct {
	rooms     map[string]*Room
	order     []string
	home      string
	bossRooms []string
}

// New validates the rooms and builds the graph. Invariants enforced:
// exactly one home room, at least one exit room, every exit target
// exists, boss rooms carry a boss id (and only boss rooms do), and
// every room is reachable from home.
func New(rooms []Room) (*Graph, error) {
	g := &Graph{rooms: make(map[string]*Room, len(rooms))}

	for idx := range rooms {
		rm := rooms[idx]
		if rm.ID == "" {
			return nil, fmt.Errorf("%w: room with empty id", ErrContent)
		}
		if _, ok := g.rooms[rm.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate room id %q", ErrContent, rm.ID)
		}
		g.rooms[rm.ID] = &rm
		g.order = append(g.order, rm.ID)
	}

	var homes, exits int
	for _, id := range g.order {
		rm := g.rooms[id]
		switch rm.Type {
		case RoomHome:
			homes++
			g.home = rm.ID
		case RoomExit:
			exits++
		case RoomBoss, RoomNormal:
		default:
			return nil, fmt.Errorf("%w: room %q has unknown type %q", ErrContent, rm.ID, rm.Type)
		}

		if rm.Type == RoomBoss && rm.BossID == "" {
			return nil, fmt.Errorf("%w: boss room %q has no boss id", ErrContent, rm.ID)
		}
		if rm.Type != RoomBoss && rm.BossID != "" {
			return nil, fmt.Errorf("%w: room %q has a boss id but is not a boss room", ErrContent, rm.ID)
		}
		if rm.Type == RoomBoss {
			g.bossRooms = append(g.bossRooms, rm.ID)
		}
		if rm.Lock != nil && rm.Lock.KeyItemID == "" {
			return nil, fmt.Errorf("%w: room %q lock has no key item", ErrContent, rm.ID)
		}

		for dir, target := range rm.Exits {
			if _, ok := g.rooms[target]; !ok {
				return nil, fmt.Errorf("%w: room %q exit %q points to unknown room %q", ErrContent, rm.ID, dir, target)
			}
		}
	}

	if homes == 0 {
		return nil, fmt.Errorf("%w: no home room", ErrContent)
	}
	if homes > 1 {
		return nil, fmt.Errorf("%w: %d home rooms, want exactly one", ErrContent, homes)
	}
	if exits == 0 {
		return nil, fmt.Errorf("%w: no exit room", ErrContent)
	}

	if reached := g.reachableFromHome(); reached != len(g.rooms) {
		return nil, fmt.Errorf("%w: only %d of %d rooms reachable from home", ErrContent, reached, len(g.rooms))
	}

	return g, nil
}

// reachableFromHome counts rooms reachable by breadth-first traversal.
func (g *Graph) reachableFromHome() int {
	seen := map[string]bool{g.home: true}
	queue := []string{g.home}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, target := range g.rooms[id].Exits {
			if !seen[target] {
				seen[target] = true
				queue = append(queue, target)
			}
		}
	}
	return len(seen)
}

// Room returns the room for id.
func (g *Graph) Room(id string) (*Room, bool) {
	rm, ok := g.rooms[id]
	return rm, ok
}

// HomeID returns the id of the single home room.
func (g *Graph) HomeID() string {
	return g.home
}

// ResolveDirection returns the room reached by taking direction from
// fromID, or false when the direction is not a legal exit.
func (g *Graph) ResolveDirection(fromID, direction string) (string, bool) {
	rm, ok := g.rooms[fromID]
	if !ok {
		return "", false
	}
	target, ok := rm.Exits[direction]
	return target, ok
}

// ExitDirections returns the legal direction labels from a room, sorted
// for stable prompt construction.
func (g *Graph) ExitDirections(roomID string) []string {
	rm, ok := g.rooms[roomID]
	if !ok {
		return nil
	}
	dirs := make([]string, 0, len(rm.Exits))
	for dir := range rm.Exits {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

// NamedExits maps each exit direction to the target room's display
// name, for narration context.
func (g *Graph) NamedExits(roomID string) map[string]string {
	rm, ok := g.rooms[roomID]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(rm.Exits))
	for dir, target := range rm.Exits {
		out[dir] = g.rooms[target].Name
	}
	return out
}

// BossID returns the boss occupying roomID, if any.
func (g *Graph) BossID(roomID string) (string, bool) {
	rm, ok := g.rooms[roomID]
	if !ok || rm.BossID == "" {
		return "", false
	}
	return rm.BossID, true
}

// BossRoomIDs returns the ids of all boss rooms in definition order.
func (g *Graph) BossRoomIDs() []string {
	out := make([]string, len(g.bossRooms))
	copy(out, g.bossRooms)
	return out
}

// RoomIDs returns every room id in definition order.
func (g *Graph) RoomIDs() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Len returns the number of rooms.
func (g *Graph) Len() int {
	return len(g.rooms)
}
