package main

import "github.com/go-gl/glfw/v3.3/glfw"

const (
	defaultWindowWidth  = 900
	defaultWindowHeight = 600
)

// setupWindow creates the GLFW/OpenGL window, mirroring the teacher's
// cmd/mini-mc/main.go setupWindow: request a core 4.1 context, make it
// current, and enable V-Sync (swap interval 1) to pace frames.
func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(defaultWindowWidth, defaultWindowHeight, "punyworld", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}
