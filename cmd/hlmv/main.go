package main

import (
	"os"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/RauliTop/HL-Tools/scene"
	"github.com/RauliTop/HL-Tools/settings"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	opts, err := settings.LoadOptions()
	if err != nil {
		logger.Fatal().Err(err).Msg("reading viewer options")
	}
	if level, err := zerolog.ParseLevel(opts.LogLevel); err == nil {
		logger = logger.Level(level)
	} else {
		logger.Warn().Str("log_level", opts.LogLevel).Msg("unknown log level, keeping info")
	}

	configs, err := settings.LoadConfigList(opts.ConfigPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", opts.ConfigPath).
			Msg("no saved command line configs, starting with an empty list")
		configs = &settings.ConfigList{}
	}

	if err := run(logger, opts, configs); err != nil {
		logger.Fatal().Err(err).Msg("viewer exited with error")
	}
}

func run(logger zerolog.Logger, opts settings.Options, configs *settings.ConfigList) error {
	if err := glfw.Init(); err != nil {
		return eris.Wrap(err, "initializing glfw")
	}
	defer glfw.Terminate()

	window, err := glfw.CreateWindow(opts.WindowWidth, opts.WindowHeight, opts.WindowTitle, nil, nil)
	if err != nil {
		return eris.Wrap(err, "creating window")
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return eris.Wrap(err, "initializing opengl")
	}

	reg := scene.NewRegistry(scene.WithLogger(logger))
	buildScene(reg)

	if active, ok := configs.ActiveConfig(); ok {
		logger.Info().Str("config", active.Name).Msg("active compile config")
	}

	for !window.ShouldClose() {
		scene.UpdateTransforms(reg)

		gl.ClearColor(0.25, 0.25, 0.25, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		// The studio model renderer draws here once a model is loaded.

		window.SwapBuffers()
		glfw.PollEvents()
	}

	if err := configs.Save(opts.ConfigPath); err != nil {
		return err
	}
	return nil
}

// buildScene seeds the viewer scene: a world origin with the model entity
// parented under it, so origin-level adjustments move the model with it.
func buildScene(reg *scene.Registry) (origin, model scene.Entity) {
	origin = reg.Create()
	scene.Add(reg, origin, scene.Translation{})
	scene.Add(reg, origin, scene.NewRotation())
	scene.Add(reg, origin, scene.LocalToWorld{})

	model = reg.Create()
	scene.Add(reg, model, scene.Translation{Value: mgl32.Vec3{0, 0, 0}})
	scene.Add(reg, model, scene.NewRotation())
	scene.Add(reg, model, scene.RotationEulerXYZ{})
	scene.Add(reg, model, scene.NewScale())
	scene.Add(reg, model, scene.LocalToWorld{})
	scene.SetParent(reg, model, origin)

	return origin, model
}
