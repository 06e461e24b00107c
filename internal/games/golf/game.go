package golf

import (
	"math"

	"github.com/vovakirdan/terragolf/internal/config"
	"github.com/vovakirdan/terragolf/internal/core"
	"github.com/vovakirdan/terragolf/internal/games/golf/levels"
	"github.com/vovakirdan/terragolf/internal/games/golf/sim"
	"github.com/vovakirdan/terragolf/internal/registry"
)

// Game phase constants
const (
	StateAiming   = "aiming"   // Adjusting angle, cycling ball types
	StateCharging = "charging" // Power meter running, waiting for release
	StateFlight   = "flight"   // Ball in the air, terrain reacting
	StateWon      = "won"      // Ball in the hole
	StatePaused   = "paused"   // Game paused
)

// Aim limits in radians. The shot always goes rightward and upward;
// courses are laid out tee-left, hole-right.
const (
	aimMin  = 0.08
	aimMax  = math.Pi/2 - 0.08
	aimStep = math.Pi / 60
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeStandard GameMode = iota // Normal play, terrain destruction on
	ModePractice                 // Craters suppressed, free retries
)

// configPath stores the custom config path set via CLI
var configPath string

// levelID stores the course selected via CLI; empty picks the first
// built-in course.
var levelID string

// levelsDir is scanned for course files before built-ins.
var levelsDir = "levels"

// coursePreset, when set, generates a random course instead of loading
// one by ID.
var coursePreset config.CoursePreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelID selects the course to play.
func SetLevelID(id string) {
	levelID = id
}

// SetLevelsDir sets the directory scanned for course files.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetCoursePreset enables procedural course generation with the given
// difficulty preset. An empty preset disables generation.
func SetCoursePreset(preset string) {
	switch preset {
	case "easy":
		coursePreset = config.CourseEasy
	case "normal":
		coursePreset = config.CourseNormal
	case "hard":
		coursePreset = config.CourseHard
	default:
		coursePreset = ""
	}
}

// Game implements the golf game logic: a ball launched across
// destructible falling-material terrain toward a sunken hole.
type Game struct {
	mode GameMode

	world  *sim.World
	debris *sim.DebrisSystem
	level  levels.Level
	ball   Ball

	ballTypes []BallType
	ballIndex int

	state     string
	prevState string // phase to resume into after pause
	strokes   int
	angle     float64
	charge    float64
	chargeDir float64 // power meter sweep direction, +1 or -1
	tickCount int

	runtime core.RuntimeConfig
	cfg     config.GolfConfig

	courseOverride string // per-instance course, takes priority over the CLI selection
}

// SelectCourse overrides the course for this instance's next Reset.
// Used by hosted sessions where the CLI-level selection is shared
// state and per-player choice has to live on the game.
func (g *Game) SelectCourse(id string) {
	g.courseOverride = id
}

// New creates a new golf game instance.
func New() *Game {
	return &Game{mode: ModeStandard}
}

// NewPractice creates a golf game with terrain damage suppressed.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "golf_practice"
	}
	return "golf"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Terra Golf (Practice)"
	}
	return "Terra Golf"
}

// Level returns the course currently loaded.
func (g *Game) Level() levels.Level {
	return g.level
}

// Strokes returns the number of shots taken this hole.
func (g *Game) Strokes() int {
	return g.strokes
}

// BallTypeName returns the name of the currently selected ball.
func (g *Game) BallTypeName() string {
	return g.ballTypes[g.ballIndex].Name
}

// Practice reports whether this round runs in practice mode.
// Practice rounds do not damage terrain and are not recorded.
func (g *Game) Practice() bool {
	return g.mode == ModePractice
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadGolf(configPath)
	if err != nil {
		cfg = config.DefaultGolfConfig()
	}
	g.cfg = cfg

	g.level = g.resolveLevel()

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = runtime.Seed
	}
	g.world = g.level.BuildWorld(materialsFromConfig(cfg.Materials), seed)
	g.debris = sim.NewDebrisSystem(g.world.Grid)

	g.ballTypes = ballTypesFromConfig(cfg.Balls)
	g.ballIndex = 0

	g.ball = Ball{
		Pos: core.Vec2{X: float64(g.level.TeeX) + 0.5, Y: float64(g.level.TeeY) + 0.5},
	}
	g.ball.Resting = true

	g.state = StateAiming
	g.strokes = 0
	g.angle = math.Pi / 4
	g.charge = 0
	g.chargeDir = 1
	g.tickCount = 0
}

// resolveLevel picks the course for this round: a generated one when a
// preset is active, otherwise the selected or first built-in course.
func (g *Game) resolveLevel() levels.Level {
	if coursePreset != "" {
		lvl, err := levels.Generate(coursePreset, g.runtime.Seed, g.runtime.ScreenW, g.runtime.ScreenH-2)
		if err == nil {
			return lvl
		}
	}

	loader := levels.NewLoader(levelsDir)
	for _, id := range []string{g.courseOverride, levelID} {
		if id == "" {
			continue
		}
		if lvl, err := loader.LoadByID(id); err == nil {
			return lvl
		}
	}
	return levels.Builtin()[0]
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.state == StateWon {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = g.prevState
		} else if g.state != StateWon {
			g.prevState = g.state
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateWon {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := g.runtime.Dt()

	switch g.state {
	case StateAiming:
		g.updateAiming(in)
	case StateCharging:
		g.updateCharging(in, dt)
	}

	g.stepSimulation(dt)

	return core.StepResult{State: g.State()}
}

// updateAiming handles angle adjustment and ball cycling, and starts
// the power meter on a swing press.
func (g *Game) updateAiming(in core.InputFrame) {
	if in.Has(core.ActionUp) || in.Has(core.ActionRight) {
		g.angle = core.ClampF(g.angle+aimStep, aimMin, aimMax)
	}
	if in.Has(core.ActionDown) || in.Has(core.ActionLeft) {
		g.angle = core.ClampF(g.angle-aimStep, aimMin, aimMax)
	}
	if in.Has(core.ActionCycle) {
		g.ballIndex = (g.ballIndex + 1) % len(g.ballTypes)
	}
	if in.Has(core.ActionSwing) {
		g.state = StateCharging
		g.charge = 0
		g.chargeDir = 1
	}
}

// updateCharging sweeps the power meter and launches on the second
// swing press. The meter ping-pongs between empty and full so holding
// out for maximum power is a timing risk, not a wait.
func (g *Game) updateCharging(in core.InputFrame, dt float64) {
	g.charge += g.chargeDir * g.cfg.Physics.ChargeRate * dt
	if g.charge >= 1 {
		g.charge = 1
		g.chargeDir = -1
	}
	if g.charge <= 0 {
		g.charge = 0
		g.chargeDir = 1
	}

	if in.Has(core.ActionSwing) {
		g.launch()
	}
}

// launch fires the ball with the charged power and counts the stroke.
func (g *Game) launch() {
	bt := g.ballTypes[g.ballIndex]
	g.ball.Vel = launchVelocity(g.angle, g.charge, g.cfg.Physics, bt.PowerScale)
	g.ball.Resting = false
	g.strokes++
	g.state = StateFlight
}

// stepSimulation runs one frame of the terrain world. Order matters:
// conversions queued by last frame's impacts are drained first, then
// physics runs and only queues new work, then the material behavior
// pass moves cells, then the ambient pass ages fire and vapor.
func (g *Game) stepSimulation(dt float64) {
	conversions := g.world.DrainConversions()
	if g.cfg.Sim.Debris {
		g.debris.SpawnAll(conversions)
	}

	if g.state == StateFlight {
		g.flightStep(dt)
	}

	g.world.SetBallPosition(g.ball.CellX(), g.ball.CellY(), g.state == StateFlight)
	g.world.Step()
	g.world.UpdateAmbient(dt)
	g.debris.Update(dt)
}

// flightStep advances the ball and feeds its collisions to the impact
// system. Terrain destruction is queued, never applied mid-flight.
func (g *Game) flightStep(dt float64) {
	mods := g.ballTypes[g.ballIndex].Mods
	if g.mode == ModePractice {
		mods.SuppressCraters = true
	}

	contacts, holed := advanceBall(g.world, &g.ball, g.cfg.Physics, dt)
	for _, c := range contacts {
		res := g.world.OnImpact(c, mods)
		if res.Material == sim.Sand {
			g.ball.Vel = g.ball.Vel.Scale(g.cfg.Physics.SandDamping)
		}
	}

	if holed {
		g.state = StateWon
		return
	}
	if g.ball.Resting {
		g.state = StateAiming
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.strokes,
		GameOver: g.state == StateWon,
		Paused:   g.state == StatePaused,
		Won:      g.state == StateWon,
	}
}

// Register the game modes with the registry
func init() {
	registry.Register("golf", func() registry.Game {
		return New()
	})
	registry.Register("golf_practice", func() registry.Game {
		return NewPractice()
	})
}
