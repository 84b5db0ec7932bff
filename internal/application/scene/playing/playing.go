// Package playing provides the demo scene: a ball character driven by the
// movement controller across the level described by the world config.
package playing

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/charmove/internal/application/replay"
	"github.com/younwookim/charmove/internal/application/scene"
	"github.com/younwookim/charmove/internal/application/state"
	"github.com/younwookim/charmove/internal/application/system"
	"github.com/younwookim/charmove/internal/domain/entity"
	"github.com/younwookim/charmove/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorSegment  = color.RGBA{80, 80, 100, 255}
	colorGrounded = color.RGBA{100, 200, 100, 255}
	colorAirborne = color.RGBA{200, 200, 100, 255}
	colorVelocity = color.RGBA{255, 100, 100, 255}
)

// InputSource yields one input frame per physics step. ok is false once
// the source is exhausted.
type InputSource interface {
	NextFrame() (frame entity.InputFrame, ok bool)
}

// liveInput reads the keyboard and gamepad every step
type liveInput struct {
	sys *system.InputSystem
}

func (l liveInput) NextFrame() (entity.InputFrame, bool) {
	return l.sys.GetInput(), true
}

// Playing is the demo scene
type Playing struct {
	world    *config.WorldConfig
	state    state.GameState
	movement *system.MovementSystem
	physics  *system.PhysicsSystem
	input    InputSource
	replay   bool

	screenW int
	screenH int
	ppm     float64
	steps   int

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a demo scene driven by live input.
// If recordPath is not empty, input is recorded.
func New(cfg *config.GameConfig, recordPath string) (*Playing, error) {
	p, err := newPlaying(cfg, liveInput{sys: system.NewInputSystem()})
	if err != nil {
		return nil, err
	}

	p.recordFilename = recordPath
	if recordPath != "" {
		p.recorder = replay.NewRecorder(cfg.World.Name)
		log.Printf("Recording enabled: %s", recordPath)
	}
	return p, nil
}

// NewReplay creates a demo scene driven by recorded input
func NewReplay(cfg *config.GameConfig, r *replay.Replayer) (*Playing, error) {
	if r.World() != "" && r.World() != cfg.World.Name {
		log.Printf("Replay was recorded in world %q, playing in %q", r.World(), cfg.World.Name)
	}
	p, err := newPlaying(cfg, r)
	if err != nil {
		return nil, err
	}
	p.replay = true
	return p, nil
}

// NewWithInput creates a demo scene fed by an arbitrary input source
func NewWithInput(cfg *config.GameConfig, input InputSource) (*Playing, error) {
	return newPlaying(cfg, input)
}

func newPlaying(cfg *config.GameConfig, input InputSource) (*Playing, error) {
	physics := system.NewPhysicsSystem(cfg.World)
	movement, err := system.NewMovementSystem(*cfg.Movement, physics.Body(), physics)
	if err != nil {
		return nil, fmt.Errorf("failed to create movement system: %w", err)
	}
	physics.SetContactSink(movement)

	ppm := cfg.World.Display.PixelsPerMeter
	if ppm <= 0 {
		ppm = 20
	}

	return &Playing{
		world:    cfg.World,
		state:    state.StatePlaying,
		movement: movement,
		physics:  physics,
		input:    input,
		screenW:  cfg.World.Display.ScreenWidth,
		screenH:  cfg.World.Display.ScreenHeight,
		ppm:      ppm,
	}, nil
}

// Update proceeds the scene state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	switch p.state {
	case state.StatePlaying:
		if !p.replay {
			p.handleKeys()
			if p.state != state.StatePlaying {
				return nil, nil
			}
		}
		p.Step(dt)
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.physics.Respawn()
	}
}

// Step runs one fixed step: sample input, run the controller, then the
// physics engine, whose contacts feed the next step. It returns false
// when the input source is exhausted.
func (p *Playing) Step(dt float64) bool {
	frame, ok := p.input.NextFrame()
	if !ok {
		if p.state != state.StateReplayDone {
			p.state = state.StateReplayDone
			log.Printf("Replay finished after %d steps: position %v velocity %v",
				p.steps, p.physics.Position(), p.physics.Body().Velocity())
		}
		return false
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(frame)
	}

	p.movement.Sample(frame)
	p.movement.FixedStep(dt)
	p.physics.Step(dt)
	p.steps++
	return true
}

// Reconfigure applies new movement tuning between steps
func (p *Playing) Reconfigure(cfg config.MovementConfig) {
	p.movement.SetConfig(cfg)
	log.Printf("Movement config reloaded: %+v", p.movement.Config())
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Steps returns the number of physics steps run
func (p *Playing) Steps() int {
	return p.steps
}

// Movement returns the character controller
func (p *Playing) Movement() *system.MovementSystem {
	return p.movement
}

// Physics returns the physics world
func (p *Playing) Physics() *system.PhysicsSystem {
	return p.physics
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// camera returns the world point at the screen center
func (p *Playing) camera() (float64, float64) {
	pos := p.physics.Position()
	return pos.X(), pos.Y()
}

// toScreen maps world meters to screen pixels; world y points up
func (p *Playing) toScreen(x, y, camX, camY float64) (float64, float64) {
	sx := (x-camX)*p.ppm + float64(p.screenW)/2
	sy := float64(p.screenH)/2 - (y-camY)*p.ppm
	return sx, sy
}

// Draw renders the scene
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera()
	p.drawSegments(screen, camX, camY)
	p.drawCharacter(screen, camX, camY)
	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\n\nPress ESC to resume")
	case state.StateReplayDone:
		p.drawOverlay(screen, fmt.Sprintf("REPLAY DONE\n\n%d steps", p.steps))
	}
}

func (p *Playing) drawSegments(screen *ebiten.Image, camX, camY float64) {
	for _, seg := range p.physics.Segments() {
		ax, ay := p.toScreen(seg.A.X, seg.A.Y, camX, camY)
		bx, by := p.toScreen(seg.B.X, seg.B.Y, camX, camY)
		ebitenutil.DrawLine(screen, ax, ay, bx, by, colorSegment)
	}
}

func (p *Playing) drawCharacter(screen *ebiten.Image, camX, camY float64) {
	pos := p.physics.Position()
	x, y := p.toScreen(pos.X(), pos.Y(), camX, camY)

	c := colorAirborne
	if p.movement.OnGround() {
		c = colorGrounded
	}
	ebitenutil.DrawCircle(screen, x, y, p.physics.Radius()*p.ppm, c)

	// velocity, scaled to a tenth of a meter per m/s
	vel := p.physics.Body().Velocity()
	tipX, tipY := p.toScreen(pos.X()+vel.X()*0.1, pos.Y()+vel.Y()*0.1, camX, camY)
	ebitenutil.DrawLine(screen, x, y, tipX, tipY, colorVelocity)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	s := p.movement.State()
	vel := p.physics.Body().Velocity()
	cfg := p.movement.Config()

	status := fmt.Sprintf("v=(%.2f, %.2f) ground=%v jumpPhase=%d\nmaxSpeed=%.1f jumpHeight=%.1f airJumps=%d groundAngle=%.0f",
		vel.X(), vel.Y(), p.movement.OnGround(), s.JumpPhase,
		cfg.MaxSpeed, cfg.JumpHeight, cfg.MaxAirJumps, cfg.MaxGroundAngle)
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-40)

	debugText := "A/D: Move | Space: Jump | R: Respawn | ESC: Pause"
	if p.recorder != nil {
		debugText += " | F5: Save replay"
	}
	if p.replay {
		debugText = "Replaying"
	}
	ebitenutil.DebugPrint(screen, debugText)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	// Semi-transparent overlay
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the scene's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
