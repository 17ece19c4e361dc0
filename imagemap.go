package trellis

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageID identifies a registered texture within an ImageMap.
type ImageID uint16

// ImageMap is the texture registry image widgets reference by ID. The core
// never manages texture memory; the map just resolves IDs for the renderer.
type ImageMap struct {
	images []*ebiten.Image
}

// NewImageMap creates an empty image registry.
func NewImageMap() *ImageMap {
	return &ImageMap{}
}

// Add registers an image and returns its ID.
func (m *ImageMap) Add(img *ebiten.Image) ImageID {
	m.images = append(m.images, img)
	return ImageID(len(m.images) - 1)
}

// Image resolves an ID. Unknown IDs return a 1x1 magenta placeholder so a
// bad reference is visible rather than fatal.
func (m *ImageMap) Image(id ImageID) *ebiten.Image {
	if int(id) < len(m.images) && m.images[id] != nil {
		return m.images[id]
	}
	return ensureMagentaImage()
}

// magenta placeholder singleton (no sync.Once — the core is single-threaded)
var magentaImage *ebiten.Image

func ensureMagentaImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}

// --- Sprite sheet regions ---

// LoadSheetRegions parses TexturePacker hash-format JSON and returns the
// named source rectangles within a sheet image. Use the result as the
// SrcRect of ImageState payloads sharing one registered sheet.
func LoadSheetRegions(jsonData []byte) (map[string]image.Rectangle, error) {
	var sheet struct {
		Frames map[string]struct {
			Frame struct {
				X int `json:"x"`
				Y int `json:"y"`
				W int `json:"w"`
				H int `json:"h"`
			} `json:"frame"`
		} `json:"frames"`
	}
	if err := json.Unmarshal(jsonData, &sheet); err != nil {
		return nil, fmt.Errorf("parse sheet JSON: %w", err)
	}
	if sheet.Frames == nil {
		return nil, fmt.Errorf("parse sheet JSON: no \"frames\" key")
	}
	regions := make(map[string]image.Rectangle, len(sheet.Frames))
	for name, f := range sheet.Frames {
		regions[name] = image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+f.Frame.W, f.Frame.Y+f.Frame.H)
	}
	return regions, nil
}
