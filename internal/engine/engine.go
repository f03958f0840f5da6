// Package engine is the authoritative game loop. All state mutation
// happens on one goroutine inside Run; the TUI talks to it through
// commands, and slow collaborators come back through the bridge's
// completions channel.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ewhitmore/blindkeep/internal/bridge"
	"github.com/ewhitmore/blindkeep/internal/services"
	"github.com/ewhitmore/blindkeep/internal/storage"
	"github.com/ewhitmore/blindkeep/pkg/boss"
	"github.com/ewhitmore/blindkeep/pkg/combat"
	"github.com/ewhitmore/blindkeep/pkg/dungeon"
	"github.com/ewhitmore/blindkeep/pkg/intent"
	"github.com/ewhitmore/blindkeep/pkg/item"
	"github.com/ewhitmore/blindkeep/pkg/state"
)

// Mode is the engine's externally visible state.
type Mode string

const (
	ModeExploring         Mode = "exploring"
	ModeCaptureInProgress Mode = "capture_in_progress"
	ModeNarrating         Mode = "narrating"
	ModeInCombat          Mode = "in_combat"
	ModeGameOver          Mode = "game_over"
	ModeWon               Mode = "won"
)

// EventKind discriminates engine events for the UI.
type EventKind string

const (
	EventNarration       EventKind = "narration"
	EventTranscriptDelta EventKind = "transcript_delta"
	EventTranscript      EventKind = "transcript"
	EventStatus          EventKind = "status"
	EventError           EventKind = "error"
	EventGameOver        EventKind = "game_over"
	EventVictory         EventKind = "victory"
)

// Event is one UI-facing update. Mode and the HP snapshot reflect the
// engine state at emission time; BossHP is -1 outside combat.
type Event struct {
	Kind      EventKind
	Text      string
	AudioPath string

	Mode     Mode
	PlayerHP int
	BossHP   int
}

type commandKind int

const (
	cmdStartCapture commandKind = iota
	cmdStopCapture
	cmdSubmitTranscript
)

type command struct {
	kind commandKind
	text string
}

// Narration tags route completions back to the right transition.
const (
	tagRoom        = "room"
	tagBossEntry   = "boss_entry"
	tagCombatRound = "combat_round"
	tagBossDefeat  = "boss_defeat"
	tagPickup      = "pickup"
	tagExitBlocked = "exit_blocked"
	tagLocked      = "locked"
	tagUnlocked    = "unlocked"
	tagVictory     = "victory"
)

// Options tune an engine without widening the constructor.
type Options struct {
	BagCapacity  int
	BossAudioDir string
	Seed         int64
}

// Engine drives one playthrough.
type Engine struct {
	graph  *dungeon.Graph
	items  *item.Registry
	bosses *boss.Registry

	store       storage.Storage
	parser      services.IntentParser
	narrator    services.Narrator
	transcriber services.Transcriber
	player      services.AudioPlayer
	bridge      *bridge.Bridge

	rng    *combat.RNG
	opts   Options
	logger *slog.Logger

	gs         *state.GameState
	mode       Mode
	combatSess *state.CombatSession
	prevRoom   string // display name, for narration context

	commands chan command
	events   chan Event
}

// New wires an engine. Run must be called before commands have effect.
func New(
	graph *dungeon.Graph,
	items *item.Registry,
	bosses *boss.Registry,
	store storage.Storage,
	parser services.IntentParser,
	narrator services.Narrator,
	transcriber services.Transcriber,
	player services.AudioPlayer,
	br *bridge.Bridge,
	opts Options,
	logger *slog.Logger,
) *Engine {
	if opts.BagCapacity <= 0 {
		opts.BagCapacity = state.DefaultBagCapacity
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	return &Engine{
		graph:       graph,
		items:       items,
		bosses:      bosses,
		store:       store,
		parser:      parser,
		narrator:    narrator,
		transcriber: transcriber,
		player:      player,
		bridge:      br,
		rng:         combat.NewRNG(opts.Seed),
		opts:        opts,
		logger:      logger,
		mode:        ModeExploring,
		commands:    make(chan command, 16),
		events:      make(chan Event, 64),
	}
}

// Events is the UI-facing stream. Slow consumers lose events rather
// than stall the game.
func (e *Engine) Events() <-chan Event {
	return e.events
}

// StartCapture requests a push-to-talk recording.
func (e *Engine) StartCapture() { e.commands <- command{kind: cmdStartCapture} }

// StopCapture finalizes the in-flight recording.
func (e *Engine) StopCapture() { e.commands <- command{kind: cmdStopCapture} }

// Submit feeds a typed transcript, bypassing speech capture.
func (e *Engine) Submit(text string) {
	e.commands <- command{kind: cmdSubmitTranscript, text: text}
}

// Run loads or creates the save, narrates the opening beat, and serves
// commands until ctx is cancelled or persistence fails fatally.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.loadOrCreate(ctx); err != nil {
		return err
	}
	e.checkBossAudio()

	// Opening beat: resume mid-combat as a fresh boss entry, otherwise
	// describe the current room.
	if e.combatSess != nil {
		e.narrateBossEntry(ctx)
	} else {
		e.narrateRoom(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			e.player.Stop()
			return ctx.Err()
		case cmd := <-e.commands:
			if err := e.handleCommand(ctx, cmd); err != nil {
				return err
			}
		case comp := <-e.bridge.Completions():
			if err := e.handleCompletion(ctx, comp); err != nil {
				return err
			}
		}
	}
}

// loadOrCreate restores the save or starts fresh, scatters items when
// needed, and derives any in-progress combat from position.
func (e *Engine) loadOrCreate(ctx context.Context) error {
	gs, err := e.store.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("failed to load save: %w", err)
	}
	if gs == nil {
		gs = state.New(e.graph.HomeID(), e.items.SentinelID())
		e.logger.Info("Starting new game", "home", e.graph.HomeID())
	} else {
		gs.Normalize(e.items.SentinelID())
		e.logger.Info("Resuming saved game", "room", gs.Player.CurrentRoom, "hp", gs.Player.HP)
	}
	e.gs = gs

	if e.gs.NeedsScatter() {
		e.scatterItems()
	}

	// An uncleared boss room as the current room means the player quit
	// or crashed mid-fight: combat resumes, it is never escaped by
	// restarting.
	if bossID, ok := e.graph.BossID(e.gs.Player.CurrentRoom); ok && !e.gs.IsBossCleared(bossID) {
		b, found := e.bosses.Get(bossID)
		if !found {
			return fmt.Errorf("room %q names unknown boss %q", e.gs.Player.CurrentRoom, bossID)
		}
		e.combatSess = &state.CombatSession{
			BossID: bossID,
			RoomID: e.gs.Player.CurrentRoom,
			BossHP: e.gs.BossHP(bossID, b.MaxHP),
		}
	}
	e.mode = e.restMode()

	return e.persist(ctx)
}

// scatterItems distributes every scatterable item round-robin over the
// shuffled normal rooms.
func (e *Engine) scatterItems() {
	var rooms []string
	for _, id := range e.graph.RoomIDs() {
		if rm, ok := e.graph.Room(id); ok && rm.Type == dungeon.RoomNormal {
			rooms = append(rooms, id)
		}
	}
	if len(rooms) == 0 {
		return
	}
	e.rng.Shuffle(len(rooms), func(i, j int) {
		rooms[i], rooms[j] = rooms[j], rooms[i]
	})

	for i, itemID := range e.items.ScatterIDs() {
		roomID := rooms[i%len(rooms)]
		e.gs.AddRoomItem(roomID, itemID)
		e.logger.Debug("Item scattered", "item", itemID, "room", roomID)
	}
}

// checkBossAudio warns about missing skill stingers at startup so a
// half-populated audio directory is visible before it matters.
func (e *Engine) checkBossAudio() {
	if e.opts.BossAudioDir == "" {
		return
	}
	for _, b := range e.bosses.All() {
		for _, skill := range b.Skills {
			path := e.skillAudioPath(b.ID, skill.ID)
			if _, err := os.Stat(path); err != nil {
				e.logger.Warn("Boss skill audio missing", "boss", b.ID, "skill", skill.ID, "path", path)
			}
		}
	}
}

func (e *Engine) skillAudioPath(bossID, skillID string) string {
	return filepath.Join(e.opts.BossAudioDir, bossID, skillID+".wav")
}

// restMode is the mode the engine settles into when no capture or
// narration is pending.
func (e *Engine) restMode() Mode {
	if e.combatSess != nil {
		return ModeInCombat
	}
	return ModeExploring
}

func (e *Engine) emit(kind EventKind, text, audioPath string) {
	bossHP := -1
	if e.combatSess != nil {
		bossHP = e.combatSess.BossHP
	}
	ev := Event{
		Kind:      kind,
		Text:      text,
		AudioPath: audioPath,
		Mode:      e.mode,
		PlayerHP:  e.gs.Player.HP,
		BossHP:    bossHP,
	}
	select {
	case e.events <- ev:
	default:
		e.logger.Warn("Event dropped, consumer too slow", "kind", kind)
	}
}

// persist saves the state, retrying once. A second failure is fatal:
// play must not continue past an unsaved mutation.
func (e *Engine) persist(ctx context.Context) error {
	err := e.store.SaveState(ctx, e.gs)
	if err == nil {
		return nil
	}
	e.logger.Warn("Save failed, retrying", "error", err)
	if err = e.store.SaveState(ctx, e.gs); err != nil {
		return fmt.Errorf("save failed twice, refusing to continue: %w", err)
	}
	return nil
}

func (e *Engine) handleCommand(ctx context.Context, cmd command) error {
	switch cmd.kind {
	case cmdStartCapture:
		e.startCapture(ctx)
	case cmdStopCapture:
		e.bridge.StopCapture()
	case cmdSubmitTranscript:
		if !e.captureLegal() {
			e.emit(EventStatus, e.rejectReason(), "")
			return nil
		}
		return e.handleTranscript(ctx, cmd.text)
	}
	return nil
}

// captureLegal reports whether the player may issue a command now:
// only from the two rest modes, never over a pending capture or
// narration and never after the keep is won. GameOver is transient;
// defeat hands control back once the home beat lands.
func (e *Engine) captureLegal() bool {
	return e.mode == ModeExploring || e.mode == ModeInCombat
}

func (e *Engine) rejectReason() string {
	switch e.mode {
	case ModeWon:
		return "You are already free of the keep."
	case ModeNarrating:
		return "The narrator is still speaking."
	case ModeCaptureInProgress:
		return "Already listening."
	default:
		return "Not now."
	}
}

func (e *Engine) startCapture(ctx context.Context) {
	if !e.captureLegal() {
		e.emit(EventStatus, e.rejectReason(), "")
		return
	}
	if _, err := e.bridge.StartCapture(ctx, e.transcriber); err != nil {
		e.emit(EventStatus, "Already listening.", "")
		return
	}
	e.mode = ModeCaptureInProgress
	e.emit(EventStatus, "Listening...", "")
}

func (e *Engine) handleCompletion(ctx context.Context, comp bridge.Completion) error {
	switch comp.Kind {
	case bridge.KindCaptureDelta:
		e.emit(EventTranscriptDelta, comp.Delta, "")
		return nil
	case bridge.KindTranscript:
		if comp.Err != nil {
			e.logger.Warn("Capture failed", "error", comp.Err)
			e.mode = e.restMode()
			e.emit(EventError, "I didn't catch that.", "")
			return nil
		}
		e.emit(EventTranscript, comp.Transcript, "")
		return e.handleTranscript(ctx, comp.Transcript)
	case bridge.KindNarration:
		return e.handleNarration(ctx, comp)
	}
	return nil
}

// intentContext snapshots the player's legal options. Exits are always
// included, combat or not; omitting them would make fleeing
// unspeakable.
func (e *Engine) intentContext() intent.Context {
	roomID := e.gs.Player.CurrentRoom

	var weapons []intent.Option
	for _, id := range e.gs.HeldWeapons(e.items) {
		weapons = append(weapons, intent.Option{ID: id, Name: e.items.Name(id)})
	}
	var floor []intent.Option
	for _, id := range e.gs.RoomItems(roomID) {
		floor = append(floor, intent.Option{ID: id, Name: e.items.Name(id)})
	}

	return intent.Context{
		Exits:     e.graph.ExitDirections(roomID),
		Weapons:   weapons,
		RoomItems: floor,
	}
}

func (e *Engine) handleTranscript(ctx context.Context, transcript string) error {
	in, err := e.parser.Parse(ctx, transcript, e.intentContext())
	if err != nil {
		e.logger.Warn("Intent parsing failed", "error", err)
		in = intent.Unknown
	}

	switch in.Action {
	case intent.ActionMove:
		return e.handleMove(ctx, in.Direction)
	case intent.ActionAttack:
		return e.handleAttack(ctx, in.ItemID)
	case intent.ActionPickup:
		return e.handlePickup(ctx, in.ItemID)
	default:
		e.mode = e.restMode()
		e.emit(EventStatus, "You hesitate, unsure what you meant to do.", "")
		return nil
	}
}

func (e *Engine) handleMove(ctx context.Context, direction string) error {
	fromID := e.gs.Player.CurrentRoom
	targetID, ok := e.graph.ResolveDirection(fromID, direction)
	if !ok {
		e.mode = e.restMode()
		e.emit(EventStatus, "There is no way "+direction+" from here.", "")
		return nil
	}
	target, _ := e.graph.Room(targetID)
	from, _ := e.graph.Room(fromID)

	// The final chamber stays sealed while any guardian lives.
	if target.Type == dungeon.RoomExit && !e.allBossesCleared() {
		e.gs.SetLastAction("tried the sealed gate")
		if err := e.persist(ctx); err != nil {
			return err
		}
		e.narrate(ctx, services.Scene{Kind: services.SceneExitBlocked, RoomName: target.Name}, tagExitBlocked)
		return nil
	}

	// Locked rooms open permanently with the right key; the key is
	// consumed.
	if target.Lock != nil && !e.gs.IsUnlocked(targetID) {
		keyID := target.Lock.KeyItemID
		if !e.gs.HasInBag(keyID) {
			e.gs.SetLastAction("pushed at a locked door")
			if err := e.persist(ctx); err != nil {
				return err
			}
			e.narrate(ctx, services.Scene{Kind: services.SceneLocked, RoomName: target.Name}, tagLocked)
			return nil
		}
		e.gs.RemoveFromInventory(keyID)
		e.gs.MarkUnlocked(targetID)
		e.enterRoom(fromID, targetID)
		e.gs.SetLastAction("unlocked the way into " + target.Name)
		if err := e.persist(ctx); err != nil {
			return err
		}
		e.narrate(ctx, services.Scene{
			Kind:     services.SceneUnlocked,
			RoomName: target.Name,
			ItemName: e.items.Name(keyID),
		}, tagUnlocked)
		return nil
	}

	// Moving out of an uncleared boss room is fleeing: the fight ends,
	// the boss keeps its wounds.
	if e.combatSess != nil {
		e.logger.Info("Player fled combat", "boss", e.combatSess.BossID, "direction", direction)
		e.combatSess = nil
	}

	e.enterRoom(fromID, targetID)
	e.gs.SetLastAction("moved " + direction + " from " + from.Name)
	if err := e.persist(ctx); err != nil {
		return err
	}

	switch {
	case target.Type == dungeon.RoomExit:
		e.narrate(ctx, services.Scene{Kind: services.SceneVictory, RoomName: target.Name}, tagVictory)
	case e.combatSess != nil:
		e.narrateBossEntry(ctx)
	default:
		e.narrateRoom(ctx)
	}
	return nil
}

// enterRoom moves the player and opens a combat session when the
// destination holds a living boss.
func (e *Engine) enterRoom(fromID, targetID string) {
	if from, ok := e.graph.Room(fromID); ok {
		e.prevRoom = from.Name
	}
	e.gs.MovePlayer(targetID)

	if bossID, ok := e.graph.BossID(targetID); ok && !e.gs.IsBossCleared(bossID) {
		if b, found := e.bosses.Get(bossID); found {
			e.combatSess = &state.CombatSession{
				BossID: bossID,
				RoomID: targetID,
				BossHP: e.gs.BossHP(bossID, b.MaxHP),
			}
		}
	}
}

func (e *Engine) allBossesCleared() bool {
	for _, roomID := range e.graph.BossRoomIDs() {
		if bossID, ok := e.graph.BossID(roomID); ok && !e.gs.IsBossCleared(bossID) {
			return false
		}
	}
	return true
}

func (e *Engine) handleAttack(ctx context.Context, weaponID string) error {
	if e.combatSess == nil {
		e.mode = e.restMode()
		e.emit(EventStatus, "You swing at the dark. Nothing is there.", "")
		return nil
	}

	weapon, ok := e.items.Get(weaponID)
	if !ok {
		e.mode = e.restMode()
		e.emit(EventStatus, "You fumble for a weapon you do not have.", "")
		return nil
	}
	b, ok := e.bosses.Get(e.combatSess.BossID)
	if !ok {
		return fmt.Errorf("combat session names unknown boss %q", e.combatSess.BossID)
	}

	ex := combat.Resolve(weapon, b, e.gs.TotalDefense(e.items), e.rng)

	bossHP := e.combatSess.BossHP - ex.PlayerDamage
	if bossHP < 0 {
		bossHP = 0
	}
	e.combatSess.BossHP = bossHP
	e.gs.SetBossHP(b.ID, bossHP)
	e.gs.Damage(ex.PlayerLoss)
	e.gs.SetLastAction("struck " + b.Name + " with " + weapon.Name)
	if err := e.persist(ctx); err != nil {
		return err
	}

	e.playSkillStinger(ctx, b.ID, ex.Skill.ID)

	switch combat.Judge(bossHP, e.gs.Player.HP) {
	case combat.Defeated:
		e.gs.MarkBossCleared(b.ID)
		e.combatSess = nil
		if err := e.persist(ctx); err != nil {
			return err
		}
		e.narrate(ctx, services.Scene{Kind: services.SceneBossDefeat, BossName: b.Name}, tagBossDefeat)

	case combat.PlayerDefeated:
		e.logger.Info("Player defeated", "boss", b.ID)
		e.mode = ModeGameOver
		e.emit(EventGameOver, b.Name+" strikes you down. The keep goes silent.", "")
		// Defeat is not the end of the session: the run resets and play
		// resumes from the home room.
		e.combatSess = nil
		e.gs.Reset(e.graph.HomeID(), e.items.SentinelID())
		e.scatterItems()
		if err := e.persist(ctx); err != nil {
			return err
		}
		e.prevRoom = ""
		e.narrateRoom(ctx)
		return nil

	default:
		e.narrate(ctx, services.Scene{
			Kind:         services.SceneCombatRound,
			BossName:     b.Name,
			SkillName:    ex.Skill.Name,
			ItemName:     weapon.Name,
			PlayerDamage: ex.PlayerDamage,
			BossDamage:   ex.PlayerLoss,
			PlayerHP:     e.gs.Player.HP,
			BossHP:       bossHP,
		}, tagCombatRound)
	}
	return nil
}

// playSkillStinger plays the pre-rendered audio cue for a boss skill.
// Missing files were warned about at startup; here they just skip.
func (e *Engine) playSkillStinger(ctx context.Context, bossID, skillID string) {
	if e.opts.BossAudioDir == "" {
		return
	}
	path := e.skillAudioPath(bossID, skillID)
	if _, err := os.Stat(path); err != nil {
		return
	}
	e.player.Stop()
	if err := e.player.Play(ctx, path); err != nil {
		e.logger.Warn("Stinger playback failed", "path", path, "error", err)
	}
}

func (e *Engine) handlePickup(ctx context.Context, itemID string) error {
	roomID := e.gs.Player.CurrentRoom
	it, ok := e.items.Get(itemID)
	if !ok {
		e.mode = e.restMode()
		e.emit(EventStatus, "Your hands close on nothing.", "")
		return nil
	}

	switch it.Kind {
	case item.KindPotion:
		// Potions are drunk on the spot, never carried.
		e.gs.RemoveRoomItem(roomID, itemID)
		gained := e.gs.Heal(it.Heal)
		e.gs.SetLastAction("drank " + it.Name)
		if err := e.persist(ctx); err != nil {
			return err
		}
		e.logger.Debug("Potion consumed", "item", itemID, "healed", gained)

	case item.KindKey:
		if !e.gs.AddToBag(itemID, e.opts.BagCapacity) {
			e.mode = e.restMode()
			e.emit(EventStatus, "Your bag is full.", "")
			return nil
		}
		e.gs.RemoveRoomItem(roomID, itemID)
		e.gs.SetLastAction("pocketed " + it.Name)
		if err := e.persist(ctx); err != nil {
			return err
		}

	default:
		// Weapons and armor equip immediately. A displaced item drops to
		// the floor, except the sentinel weapon, which has no physical
		// form to drop.
		displaced := e.gs.Equip(it.Slot, itemID)
		if displaced != "" && displaced != e.items.SentinelID() {
			e.gs.AddRoomItem(roomID, displaced)
		}
		e.gs.RemoveRoomItem(roomID, itemID)
		e.gs.SetLastAction("equipped " + it.Name)
		if err := e.persist(ctx); err != nil {
			return err
		}
	}

	rm, _ := e.graph.Room(roomID)
	e.narrate(ctx, services.Scene{
		Kind:     services.ScenePickup,
		RoomName: rm.Name,
		ItemName: it.Name,
	}, tagPickup)
	return nil
}

// narrate starts a background narration and moves to ModeNarrating.
// The bridge slot is necessarily free: the engine only narrates from a
// rest mode or when chaining off a finished narration.
func (e *Engine) narrate(ctx context.Context, scene services.Scene, tag string) {
	if _, err := e.bridge.StartNarration(ctx, e.narrator, scene, tag); err != nil {
		e.logger.Error("Narration rejected", "tag", tag, "error", err)
		e.mode = e.restMode()
		return
	}
	e.mode = ModeNarrating
}

func (e *Engine) narrateRoom(ctx context.Context) {
	roomID := e.gs.Player.CurrentRoom
	rm, _ := e.graph.Room(roomID)

	var floor []string
	for _, id := range e.gs.RoomItems(roomID) {
		floor = append(floor, e.items.Name(id))
	}

	e.narrate(ctx, services.Scene{
		Kind:         services.SceneRoom,
		RoomName:     rm.Name,
		RoomHint:     rm.Hint,
		PreviousRoom: e.prevRoom,
		Exits:        e.graph.NamedExits(roomID),
		RoomItems:    floor,
	}, tagRoom)
}

func (e *Engine) narrateBossEntry(ctx context.Context) {
	rm, _ := e.graph.Room(e.combatSess.RoomID)
	b, _ := e.bosses.Get(e.combatSess.BossID)

	e.narrate(ctx, services.Scene{
		Kind:         services.SceneBossEntry,
		RoomName:     rm.Name,
		RoomHint:     rm.Hint,
		PreviousRoom: e.prevRoom,
		BossName:     b.Name,
	}, tagBossEntry)
}

func (e *Engine) handleNarration(ctx context.Context, comp bridge.Completion) error {
	if comp.Err != nil {
		// Narration is presentation: a failed beat never blocks play.
		e.logger.Error("Narration failed", "tag", comp.Tag, "error", comp.Err)
		e.mode = e.restMode()
		e.emit(EventError, "The narrator falls silent for a moment.", "")
		return nil
	}

	switch comp.Tag {
	case tagVictory:
		e.mode = ModeWon
		e.emit(EventNarration, comp.Narration.Text, comp.Narration.AudioPath)
		e.playNarration(ctx, comp.Narration)
		e.emit(EventVictory, "You step out of the keep, into open air.", "")
		// A finished run does not resume.
		if err := e.store.DeleteState(ctx); err != nil {
			e.logger.Warn("Failed to clear finished save", "error", err)
		}
		return nil

	case tagUnlocked:
		// The door beat is done; follow with the room itself.
		e.emit(EventNarration, comp.Narration.Text, comp.Narration.AudioPath)
		e.playNarration(ctx, comp.Narration)
		e.narrateRoom(ctx)
		return nil

	default:
		e.mode = e.restMode()
		e.emit(EventNarration, comp.Narration.Text, comp.Narration.AudioPath)
		e.playNarration(ctx, comp.Narration)
		return nil
	}
}

// playNarration voices a finished beat. A new beat supersedes whatever
// is still sounding.
func (e *Engine) playNarration(ctx context.Context, n *services.Narration) {
	if n.AudioPath == "" {
		return
	}
	e.player.Stop()
	if err := e.player.Play(ctx, n.AudioPath); err != nil {
		e.logger.Warn("Narration playback failed", "path", n.AudioPath, "error", err)
	}
}
