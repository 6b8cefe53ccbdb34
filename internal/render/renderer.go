package render

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"punyworld/internal/catalog"
)

// Renderer is the draw side of the renderer contract (§6): draw_sprite
// and present_frame.
type Renderer interface {
	DrawSprite(sprite catalog.Sprite, destX, destY, width, height int) error
	PresentFrame() error
}

const quadVertexShader = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
uniform mat4 uProjection;
uniform vec2 uDest;
uniform vec2 uSize;
out vec2 vUV;
void main() {
    vec2 pos = uDest + aPos * uSize;
    gl_Position = uProjection * vec4(pos, 0.0, 1.0);
    vUV = aUV;
}
` + "\x00"

const quadFragmentShader = `
#version 410 core
in vec2 vUV;
out vec4 fragColor;
uniform sampler2D uTex;
void main() {
    fragColor = texture(uTex, vUV);
}
` + "\x00"

// GLFWRenderer draws catalog sprites (decoded images from the asset
// package) as textured quads into a GLFW/OpenGL window. Grounded on the
// teacher's internal/graphics/shader.go (compile/link helpers, uniform
// setters) and texture_util.go (decode-to-RGBA-then-upload), simplified
// from the teacher's batched voxel atlas to one quad per sprite since 2D
// tile counts per frame are small relative to the teacher's chunk meshes.
type GLFWRenderer struct {
	program uint32
	vao     uint32
	vbo     uint32

	screenWidth, screenHeight int

	textures map[any]uint32 // keyed by sprite identity (the decoded image)

	present func() error
}

// NewGLFWRenderer compiles the quad shader and builds the unit-quad VBO.
// present is called by PresentFrame to swap buffers and poll events
// (typically window.SwapBuffers paired with glfw.PollEvents); it is
// injected so this package does not need to own window lifecycle.
func NewGLFWRenderer(screenWidth, screenHeight int, present func() error) (*GLFWRenderer, error) {
	program, err := compileProgram(quadVertexShader, quadFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	r := &GLFWRenderer{
		program:      program,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		textures:     make(map[any]uint32),
		present:      present,
	}

	// Unit quad in [0,1]x[0,1], position + UV interleaved.
	vertices := []float32{
		0, 0, 0, 0,
		1, 0, 1, 0,
		1, 1, 1, 1,
		0, 0, 0, 0,
		1, 1, 1, 1,
		0, 1, 0, 1,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return r, nil
}

// Resize updates the orthographic projection used to place sprites.
func (r *GLFWRenderer) Resize(width, height int) {
	r.screenWidth, r.screenHeight = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// DrawSprite implements Renderer.DrawSprite: sprite must be an
// image.Image (as produced by asset.SheetCutter). Textures are uploaded
// once per distinct sprite and reused thereafter.
func (r *GLFWRenderer) DrawSprite(sprite catalog.Sprite, destX, destY, width, height int) error {
	img, ok := sprite.(image.Image)
	if !ok {
		return fmt.Errorf("render: sprite is not an image.Image: %T", sprite)
	}

	tex, err := r.textureFor(img)
	if err != nil {
		return err
	}

	gl.UseProgram(r.program)
	proj := mgl32.Ortho2D(0, float32(r.screenWidth), float32(r.screenHeight), 0)
	gl.UniformMatrix4fv(gl.GetUniformLocation(r.program, gl.Str("uProjection\x00")), 1, false, &proj[0])
	gl.Uniform2f(gl.GetUniformLocation(r.program, gl.Str("uDest\x00")), float32(destX), float32(destY))
	gl.Uniform2f(gl.GetUniformLocation(r.program, gl.Str("uSize\x00")), float32(width), float32(height))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.Uniform1i(gl.GetUniformLocation(r.program, gl.Str("uTex\x00")), 0)

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	return nil
}

func (r *GLFWRenderer) textureFor(img image.Image) (uint32, error) {
	if tex, ok := r.textures[img]; ok {
		return tex, nil
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix),
	)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.textures[img] = tex
	return tex, nil
}

// PresentFrame implements Renderer.PresentFrame.
func (r *GLFWRenderer) PresentFrame() error {
	return r.present()
}

// Close releases the GL objects owned by the renderer.
func (r *GLFWRenderer) Close() {
	for _, tex := range r.textures {
		t := tex
		gl.DeleteTextures(1, &t)
	}
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}
