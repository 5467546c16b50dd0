// Package render holds the OpenGL-facing glue of the tools: texture
// upload/teardown and the studio model renderer's listener hooks.
package render

import (
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/rotisserie/eris"
)

// InvalidTextureID is never a valid texture name; the OpenGL spec reserves 0.
const InvalidTextureID uint32 = 0

// LoadTexture reads a PNG or JPEG from disk and uploads it as a 2D texture
// with linear filtering. A current GL context is required. On failure the
// returned id is InvalidTextureID.
func LoadTexture(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return InvalidTextureID, eris.Wrapf(err, "opening texture %q", path)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return InvalidTextureID, eris.Wrapf(err, "decoding texture %q", path)
	}

	bounds := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	return id, nil
}

// DeleteTexture frees the texture and resets id to InvalidTextureID. Calling
// it with an already-invalid id is a no-op.
func DeleteTexture(id *uint32) {
	if *id == InvalidTextureID {
		return
	}
	gl.DeleteTextures(1, id)
	*id = InvalidTextureID
}
