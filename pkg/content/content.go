// Package content loads and validates the static content pack: the
// room graph, the item registry, and the boss registry. Content is
// read-only after load; any defect is fatal at startup.
package content

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ewhitmore/blindkeep/pkg/boss"
	"github.com/ewhitmore/blindkeep/pkg/dungeon"
	"github.com/ewhitmore/blindkeep/pkg/item"
)

//go:embed defaults/*.yaml
var defaultFS embed.FS

const (
	roomsFile  = "rooms.yaml"
	itemsFile  = "items.yaml"
	bossesFile = "bosses.yaml"
)

// Pack is a decoded but not-yet-validated content pack.
type Pack struct {
	Theme  string
	Rooms  []dungeon.Room
	Items  []item.Item
	Bosses []boss.Boss
}

type roomsDoc struct {
	Theme string         `yaml:"theme"`
	Rooms []dungeon.Room `yaml:"rooms"`
}

type itemsDoc struct {
	Items []item.Item `yaml:"items"`
}

type bossesDoc struct {
	Bosses []boss.Boss `yaml:"bosses"`
}

// Load reads a content pack from dir.
func Load(dir string) (*Pack, error) {
	read := func(name string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, name))
	}
	return decode(read)
}

// Default returns the content pack embedded in the binary.
func Default() (*Pack, error) {
	read := func(name string) ([]byte, error) {
		return defaultFS.ReadFile("defaults/" + name)
	}
	return decode(read)
}

func decode(read func(string) ([]byte, error)) (*Pack, error) {
	var rooms roomsDoc
	if err := decodeFile(read, roomsFile, &rooms); err != nil {
		return nil, err
	}
	var items itemsDoc
	if err := decodeFile(read, itemsFile, &items); err != nil {
		return nil, err
	}
	var bosses bossesDoc
	if err := decodeFile(read, bossesFile, &bosses); err != nil {
		return nil, err
	}

	return &Pack{
		Theme:  rooms.Theme,
		Rooms:  rooms.Rooms,
		Items:  items.Items,
		Bosses: bosses.Bosses,
	}, nil
}

func decodeFile(read func(string) ([]byte, error), name string, out any) error {
	data, err := read(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// Build validates the pack and produces the shared read-only
// registries. Cross-references are checked here: boss rooms must name
// known bosses, and room locks must name known key items.
func (p *Pack) Build() (*dungeon.Graph, *item.Registry, *boss.Registry, error) {
	graph, err := dungeon.New(p.Rooms)
	if err != nil {
		return nil, nil, nil, err
	}
	items, err := item.NewRegistry(p.Items)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", dungeon.ErrContent, err)
	}
	bosses, err := boss.NewRegistry(p.Bosses)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", dungeon.ErrContent, err)
	}

	for _, roomID := range graph.BossRoomIDs() {
		bossID, _ := graph.BossID(roomID)
		if _, ok := bosses.Get(bossID); !ok {
			return nil, nil, nil, fmt.Errorf("%w: room %q references unknown boss %q", dungeon.ErrContent, roomID, bossID)
		}
	}
	for _, roomID := range graph.RoomIDs() {
		rm, _ := graph.Room(roomID)
		if rm.Lock == nil {
			continue
		}
		key, ok := items.Get(rm.Lock.KeyItemID)
		if !ok {
			return nil, nil, nil, fmt.Errorf("%w: room %q lock references unknown item %q", dungeon.ErrContent, roomID, rm.Lock.KeyItemID)
		}
		if key.Kind != item.KindKey {
			return nil, nil, nil, fmt.Errorf("%w: room %q lock item %q is not a key", dungeon.ErrContent, roomID, key.ID)
		}
	}

	return graph, items, bosses, nil
}
