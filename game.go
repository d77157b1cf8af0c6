package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bloxroll/common"
	"github.com/milk9111/bloxroll/cuboid"
	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
	"github.com/milk9111/bloxroll/ecs/entity"
	"github.com/milk9111/bloxroll/ecs/system"
	"github.com/milk9111/bloxroll/levels"
	"github.com/milk9111/bloxroll/prefabs"
)

const tps = 60

var ErrUnknownLevel = errors.New("game: unknown level")

var backgroundColor = color.RGBA{R: 0x1b, G: 0x1d, B: 0x2a, A: 0xff}

type scene int

const (
	sceneMainMenu scene = iota
	sceneLevel
	sceneCredits
)

func (s scene) String() string {
	switch s {
	case sceneMainMenu:
		return "main menu"
	case sceneLevel:
		return "level"
	case sceneCredits:
		return "credits"
	default:
		return "unknown"
	}
}

// Options are the command-line settings the game starts with.
type Options struct {
	Level     int
	Debug     bool
	Grounding string
	Fall      string
	Mute      bool
}

// Game owns the world and every collaborator the systems need. Scenes are
// switched only from Update, after the systems have run.
type Game struct {
	opts   Options
	dt     float64
	frames int

	scene scene
	level int

	world   *ecs.World
	ground  *ecs.GroundWorld
	catalog *levels.Catalog
	tiles   *prefabs.TilesSpec
	tune    func(*cuboid.Config)

	scheduler *ecs.Scheduler
	animator  *system.TileAnimator
	keys      *system.LevelKeysSystem
	render    *system.RenderSystem
	pending   *levels.Entry

	readMove    func() mgl64.Vec2
	justPressed func(ebiten.Key) bool

	mainMenu *ebitenui.UI
	credits  *ebitenui.UI
	watcher  *prefabs.Watcher
	seen     map[string]time.Time
}

func NewGame(opts Options) (*Game, error) {
	g, err := newGame(opts)
	if err != nil {
		return nil, err
	}

	if opts.Debug {
		w, err := prefabs.NewWatcher("prefabs", "levels")
		if err != nil {
			log.Printf("Game: hot reload disabled: %v", err)
		} else {
			g.watcher = w
			g.seen = make(map[string]time.Time)
		}
	}

	if opts.Level > 0 {
		if err := g.LoadLevel(opts.Level); err != nil {
			g.LoadMainMenu()
		}
	} else {
		g.LoadMainMenu()
	}
	return g, nil
}

// newGame loads the collaborators shared by every scene without entering one.
func newGame(opts Options) (*Game, error) {
	grounding, err := cuboid.ParseGroundingPolicy(opts.Grounding)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	fall, err := cuboid.ParseFallMode(opts.Fall)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		opts:  opts,
		dt:    1.0 / tps,
		world: ecs.NewWorld(),
	}
	g.tune = func(cfg *cuboid.Config) {
		if opts.Grounding != "" {
			cfg.Grounding = grounding
		}
		if opts.Fall != "" {
			cfg.Fall = fall
		}
	}
	if err := g.loadData(); err != nil {
		return nil, err
	}
	g.ground = ecs.NewGroundWorld(g.tiles.TileY, g.tiles.Thickness)
	g.keys = system.NewLevelKeysSystemWith(g.keyJustPressed)
	g.render = system.NewRenderSystem()
	g.render.Debug = opts.Debug
	return g, nil
}

func (g *Game) loadData() error {
	catalog, err := levels.LoadCatalog()
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	tiles, err := prefabs.LoadTilesSpec()
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.catalog = catalog
	g.tiles = tiles
	return nil
}

func (g *Game) keyJustPressed(k ebiten.Key) bool {
	if g.justPressed != nil {
		return g.justPressed(k)
	}
	return inpututil.IsKeyJustPressed(k)
}

func (g *Game) CurrentLevel() int { return g.level }

func (g *Game) LoadMainMenu() {
	g.reset(sceneMainMenu)
	g.level = 0
	g.scheduler = ecs.NewScheduler(g.keys)
	log.Println("Game: main menu")
}

func (g *Game) LoadCredits() {
	g.reset(sceneCredits)
	g.scheduler = ecs.NewScheduler(g.keys)
	log.Println("Game: credits")
}

// LoadLevel builds level n and starts its tile animation. The player is
// placed once the animation finishes. An unknown n leaves the current scene
// alone; any other setup failure returns to the main menu.
func (g *Game) LoadLevel(n int) error {
	e, ok := g.catalog.Entry(n)
	if !ok {
		log.Printf("Game: no level %d, ignoring", n)
		return fmt.Errorf("%w: %d", ErrUnknownLevel, n)
	}
	if err := g.buildLevel(e); err != nil {
		log.Printf("Game: failed to load level %d: %v", n, err)
		g.LoadMainMenu()
		return err
	}
	log.Printf("Game: loading level %d (%s)", n, e.Name)
	return nil
}

// Restart reloads the current scene.
func (g *Game) Restart() {
	switch g.scene {
	case sceneLevel:
		_ = g.LoadLevel(g.level)
	case sceneCredits:
		g.LoadCredits()
	default:
		g.LoadMainMenu()
	}
}

func (g *Game) reset(s scene) {
	g.world = ecs.NewWorld()
	g.ground.Clear()
	g.scene = s
	g.animator = nil
	g.pending = nil
}

func (g *Game) buildLevel(e levels.Entry) error {
	m, err := levels.LoadMap(e)
	if err != nil {
		return err
	}
	if err := levels.Check(e, m); err != nil {
		return err
	}

	g.reset(sceneLevel)
	g.level = e.Level

	if _, err := entity.BuildLevel(g.world, g.ground, g.tiles, m, true); err != nil {
		return err
	}
	if _, err := entity.NewCamera(g.world, m.Width, m.Depth); err != nil {
		return err
	}

	if g.opts.Debug {
		g.ground.LogTiles()
	}

	g.animator = system.NewTileAnimator(g.dt)
	g.animator.Start()
	g.pending = &e
	g.scheduler = ecs.NewScheduler(g.animator, g.keys)
	return nil
}

// spawnPlayer places the cuboid on the pending level and schedules gameplay.
func (g *Game) spawnPlayer() error {
	e := *g.pending
	g.pending = nil

	ctx := &entity.BuildContext{
		Ground: g.ground,
		SpawnX: e.Spawn[0],
		SpawnZ: e.Spawn[1],
		Tune:   g.tune,
		Mute:   g.opts.Mute,
	}
	if _, err := entity.NewCuboidAt(g.world, ctx); err != nil {
		return err
	}

	loaded := g.world.CreateEntity()
	if err := ecs.Add(g.world, loaded, component.LevelLoadedComponent, component.LevelLoaded{Level: e.Level}); err != nil {
		return err
	}

	input := system.NewInputSystem()
	if g.readMove != nil {
		input = system.NewInputSystemWith(g.readMove)
	}
	audio := system.NewAudioSystem()
	audio.Muted = g.opts.Mute

	g.scheduler = ecs.NewScheduler(
		input,
		system.NewCuboidSystem(g.dt),
		system.NewPhysicsSystem(g.dt),
		system.NewRespawnSystem(),
		system.NewCrumbleSystem(g.ground),
		system.NewGoalSystem(g.ground, e.Level, g.catalog.Next),
		system.NewCameraSystem(),
		audio,
		g.keys,
	)
	log.Printf("Game: level %d ready", e.Level)
	return nil
}

func (g *Game) Update() error {
	g.frames++
	g.drainWatcher()

	switch g.scene {
	case sceneMainMenu:
		g.mainMenuUI().Update()
	case sceneCredits:
		g.creditsUI().Update()
	}
	g.step()
	return nil
}

// step runs one tick of the current scene's systems and applies any scene
// change they asked for.
func (g *Game) step() {
	g.scheduler.Update(g.world)

	if g.pending != nil && g.animator != nil && g.animator.Finished() {
		if err := g.spawnPlayer(); err != nil {
			log.Printf("Game: failed to spawn player on level %d: %v", g.level, err)
			g.LoadMainMenu()
			return
		}
	}

	g.world.Events().Drain()

	if req, ok := system.TakeLevelChange(g.world); ok {
		g.apply(req)
	}
}

func (g *Game) apply(req component.LevelChangeRequest) {
	switch {
	case req.MainMenu:
		g.LoadMainMenu()
	case req.Credits:
		g.LoadCredits()
	case req.Restart:
		g.Restart()
	default:
		_ = g.LoadLevel(req.Level)
	}
}

// request queues a scene change for the end of the current tick.
func (g *Game) request(req component.LevelChangeRequest) {
	system.RequestLevelChange(g.world, req)
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}

	changed := ""
drain:
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				break drain
			}
			changed = path
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				break drain
			}
			log.Printf("Game: watcher error: %v", err)
		default:
			break drain
		}
	}
	if changed == "" {
		return
	}
	if t, ok := modTime(changed); ok {
		if t.Equal(g.seen[changed]) {
			return
		}
		g.seen[changed] = t
	}

	log.Printf("Game: reloading after change to %s", changed)
	if err := g.loadData(); err != nil {
		log.Printf("Game: reload failed: %v", err)
		return
	}
	if g.scene == sceneLevel {
		g.Restart()
	}
}

// modTime looks a watched path up on disk through the package that owns it.
func modTime(path string) (time.Time, bool) {
	if prefabs.IsPrefabFile(path) {
		return prefabs.ModTime(filepath.Base(path))
	}
	return levels.ModTime(filepath.Base(path))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	switch g.scene {
	case sceneMainMenu:
		g.mainMenuUI().Draw(screen)
	case sceneCredits:
		g.creditsUI().Draw(screen)
	case sceneLevel:
		g.render.Draw(g.world, screen)
	}

	if g.opts.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Scene: %s %d", g.frames, ebiten.ActualFPS(), g.scene, g.level), 4, common.BaseHeight-20)
	}
}

func (g *Game) mainMenuUI() *ebitenui.UI {
	if g.mainMenu == nil {
		g.mainMenu = NewMainMenuUI(g)
	}
	return g.mainMenu
}

func (g *Game) creditsUI() *ebitenui.UI {
	if g.credits == nil {
		g.credits = NewCreditsUI(g)
	}
	return g.credits
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
