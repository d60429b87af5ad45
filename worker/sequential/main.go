package main

import (
	"github.com/rwmorton/raytracer/shared/logging"
	"github.com/rwmorton/raytracer/shared/screen"
	"github.com/rwmorton/raytracer/shared/input"
	"github.com/rwmorton/raytracer/shared/state"
	"github.com/rwmorton/raytracer/shared/film"
	"github.com/rwmorton/raytracer/shared/geom"
	"github.com/rwmorton/raytracer/worker/shared/tracer"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
	"os/signal"
	"context"
	"errors"
	"flag"
	"time"
	"fmt"
	"os"
)

// moveSpeed is how far the camera moves per frame while a movement key is held.
const moveSpeed float64 = 0.05

// options holds the parsed command line.
type options struct {
	configPath string
	width, height int
	headless bool
	frames int
	logLevel string
	development bool
}

// parseOptions parses the command line parameters in args (without the program name).
func parseOptions(args []string) (options, error) {
	var opts options
	flags := flag.NewFlagSet("sequential", flag.ContinueOnError)
	flags.StringVar(&opts.configPath, "config", "", "YAML scene file (default: a sphere bouncing over a floor).")
	flags.IntVar(&opts.width, "width", 0, "Film width in pixels (overrides the scene file).")
	flags.IntVar(&opts.height, "height", 0, "Film height in pixels (overrides the scene file).")
	flags.BoolVar(&opts.headless, "headless", false, "Render without a window.")
	flags.IntVar(&opts.frames, "frames", 1, "Frames to render in headless mode (0 = until interrupted).")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn or error.")
	flags.BoolVar(&opts.development, "dev", false, "Human-readable logs.")
	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	
	// Make sure the numbers make sense.
	if opts.frames < 0 {
		return opts, fmt.Errorf("-frames must not be negative, got %d", opts.frames)
	}
	if opts.width < 0 || opts.height < 0 {
		return opts, fmt.Errorf("-width and -height must not be negative, got %dx%d", opts.width, opts.height)
	}
	return opts, nil
}

// loadConfig reads the scene config and applies the command line overrides.
func loadConfig(opts options) (*state.Config, error) {
	config := state.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if config, err = state.ConfigFromFile(opts.configPath); err != nil {
			return nil, fmt.Errorf("reading scene %q: %w", opts.configPath, err)
		}
	}
	if opts.width != 0 {
		config.Width = opts.width
	}
	if opts.height != 0 {
		config.Height = opts.height
	}
	return config, nil
}

// renderFrame traces one frame and logs how long it took.
func renderFrame(logger *zap.Logger, frame uint, f *film.Film, env *state.Environment) error {
	start := time.Now()
	stats, err := tracer.Render(f, env)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	logger.Debug("frame traced",
		zap.Uint("frame", frame),
		zap.Int("rays", stats.Rays),
		zap.Int("hits", stats.Hits),
		zap.Int("rejected", stats.Rejected),
		zap.Duration("elapsed", elapsed),
	)
	return nil
}

// runHeadless renders frames without a window until the frame count is reached or ctx is cancelled.
func runHeadless(ctx context.Context, logger *zap.Logger, frames int, f *film.Film, env state.Environment) error {
	if frames < 0 {
		return fmt.Errorf("cannot render %d frames", frames)
	}
	for frame := uint(0); frames == 0 || frame < uint(frames); frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := renderFrame(logger, frame, f, &env); err != nil {
			return err
		}
		
		// Publish the next frame's environment.
		var err error
		if env, err = env.Step(); err != nil {
			return err
		}
	}
	return nil
}

// cameraMove converts held movement keys into a displacement in the camera's frame.
func cameraMove(moveDirs uint8, cam state.Camera) geom.Vector {
	var moveVector geom.Vector
	if moveDirs & input.MoveForward != 0 {
		moveVector = moveVector.Add(cam.Forward.Vector())
	}else if moveDirs & input.MoveBackward != 0 {
		moveVector = moveVector.Sub(cam.Forward.Vector())
	}
	if moveDirs & input.MoveLeftward != 0 {
		moveVector = moveVector.Add(cam.Left.Vector())
	}else if moveDirs & input.MoveRightward != 0 {
		moveVector = moveVector.Sub(cam.Left.Vector())
	}
	if moveDirs & input.MoveUpward != 0 {
		moveVector = moveVector.Add(cam.Up.Vector())
	}else if moveDirs & input.MoveDownward != 0 {
		moveVector = moveVector.Sub(cam.Up.Vector())
	}
	
	// Moving diagonally shouldn't be faster.
	if n, err := moveVector.Norm(); err == nil {
		return n.Scale(moveSpeed)
	}
	return geom.Vector{}
}

// runWindow runs the input/update/render loop until the window is closed.
func runWindow(logger *zap.Logger, f *film.Film, env state.Environment) error {
	window, surface, err := screen.StartScreen("Sequential Ray-Tracer", f.Width(), f.Height())
	if err != nil {
		return fmt.Errorf("starting screen: %w", err)
	}
	defer screen.StopScreen(window)
	
	var prevUpdate, currentUpdate uint32
	var frame uint
	paused := false
	for running, moveDirs, togglePause := true, uint8(0), false; running; frame++ {
		prevUpdate = sdl.GetTicks()
		
		// Handle new inputs.
		running, moveDirs, togglePause = input.HandleInputs(moveDirs)
		if togglePause {
			paused = !paused
			logger.Info("animation toggled", zap.Bool("paused", paused))
		}
		
		// If the camera needs to move, move it.
		if move := cameraMove(moveDirs, env.Cam); !move.Zero() {
			env.Cam = env.Cam.Translate(move)
		}
		
		// Draw the screen.
		if err := renderFrame(logger, frame, f, &env); err != nil {
			return err
		}
		if err := screen.Present(window, surface, f); err != nil {
			return fmt.Errorf("presenting frame %d: %w", frame, err)
		}
		
		// Publish the next frame's environment.
		if !paused {
			if env, err = env.Step(); err != nil {
				return err
			}
		}
		
		// If there's still time before the next frame needs to be drawn, wait.
		currentUpdate = sdl.GetTicks()
		if currentUpdate - prevUpdate < screen.MsPerFrame {
			sdl.Delay(screen.MsPerFrame - (currentUpdate - prevUpdate))
		}
	}
	return nil
}

// run sets up the scene described by args and shows it until the viewer is closed.
func run(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	
	logger, err := logging.New(opts.logLevel, opts.development)
	if err != nil {
		return err
	}
	defer logger.Sync()
	
	// Set up the scene.
	config, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("could not load scene: %w", err)
	}
	env, err := config.Build()
	if err != nil {
		return fmt.Errorf("could not build scene: %w", err)
	}
	f, err := film.New(config.Width, config.Height)
	if err != nil {
		return fmt.Errorf("could not create film: %w", err)
	}
	logger.Info("scene ready",
		zap.Int("primitives", env.World.Len()),
		zap.Int("width", f.Width()),
		zap.Int("height", f.Height()),
		zap.Bool("animated", env.Animation != nil),
	)
	
	if opts.headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runHeadless(ctx, logger, opts.frames, f, env); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("headless render failed: %w", err)
		}
		return nil
	}
	
	if err := runWindow(logger, f, env); err != nil {
		return fmt.Errorf("viewer failed: %w", err)
	}
	return nil
}

func main() {
	err := run(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
