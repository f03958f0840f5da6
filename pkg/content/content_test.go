package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewhitmore/blindkeep/pkg/dungeon"
)

func TestDefault_BuildsPlayableDungeon(t *testing.T) {
	pack, err := Default()
	require.NoError(t, err)
	assert.NotEmpty(t, pack.Theme)

	graph, items, bosses, err := pack.Build()
	require.NoError(t, err)

	assert.Greater(t, graph.Len(), 4)
	assert.NotEmpty(t, graph.BossRoomIDs())
	assert.NotEmpty(t, items.SentinelID())
	assert.NotEmpty(t, items.ScatterIDs())
	assert.NotEmpty(t, bosses.All())

	// Every boss room binds to a defined boss.
	for _, roomID := range graph.BossRoomIDs() {
		bossID, ok := graph.BossID(roomID)
		require.True(t, ok)
		_, found := bosses.Get(bossID)
		assert.True(t, found, "boss %s defined", bossID)
	}
}

func writePack(t *testing.T, rooms, items, bosses string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rooms.yaml"), []byte(rooms), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.yaml"), []byte(items), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bosses.yaml"), []byte(bosses), 0o644))
	return dir
}

const minimalItems = `
items:
  - id: fists
    name: Bare Fists
    kind: weapon
    slot: weapon
    damage: 5
    sentinel: true
`

const minimalBosses = `
bosses:
  - id: beast
    name: The Beast
    max_hp: 40
    skills:
      - id: bite
        name: Bite
        damage: 10
`

func TestLoad_ValidPack(t *testing.T) {
	dir := writePack(t, `
theme: test keep
rooms:
  - id: home
    type: home
    name: Entry
    hint: cold
    exits: {north: den, south: out}
  - id: den
    type: boss
    name: Den
    hint: blood
    boss: beast
    exits: {south: home}
  - id: out
    type: exit
    name: Gate
    hint: wind
`, minimalItems, minimalBosses)

	pack, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "test keep", pack.Theme)

	graph, items, bosses, err := pack.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, graph.Len())
	assert.Equal(t, "fists", items.SentinelID())
	assert.Len(t, bosses.All(), 1)
}

func TestBuild_UnknownBossRejected(t *testing.T) {
	dir := writePack(t, `
theme: test keep
rooms:
  - id: home
    type: home
    name: Entry
    hint: cold
    exits: {north: den, south: out}
  - id: den
    type: boss
    name: Den
    hint: blood
    boss: nobody
    exits: {south: home}
  - id: out
    type: exit
    name: Gate
    hint: wind
`, minimalItems, minimalBosses)

	pack, err := Load(dir)
	require.NoError(t, err)

	_, _, _, err = pack.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, dungeon.ErrContent)
}

func TestBuild_LockMustNameKeyItem(t *testing.T) {
	dir := writePack(t, `
theme: test keep
rooms:
  - id: home
    type: home
    name: Entry
    hint: cold
    exits: {north: vault, south: out}
  - id: vault
    type: normal
    name: Vault
    hint: still
    lock: {key_item: missing_key}
    exits: {south: home}
  - id: out
    type: exit
    name: Gate
    hint: wind
`, minimalItems, minimalBosses)

	pack, err := Load(dir)
	require.NoError(t, err)

	_, _, _, err = pack.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, dungeon.ErrContent)
}

func TestLoad_MissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
