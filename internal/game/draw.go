package game

import (
	"maze3d/internal/components"
	"maze3d/internal/config"
	"maze3d/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const overlayMargin = 10

var (
	overlayShadow = rl.NewColor(0, 0, 0, 255)
	overlayFill   = rl.NewColor(255, 255, 255, 255)
)

// Draw renders one frame. drawableSize is the framebuffer in pixels and sets
// the camera aspect; screenSize is the window in screen coordinates, which
// is what 2D text and raygui are laid out in. Must be called between
// rl.BeginDrawing and rl.EndDrawing.
func (p *PlayMode) Draw(drawableSize, screenSize Size) {
	p.camera.SetAspect(drawableSize.Width, drawableSize.Height)
	p.Renderer.Draw(p.camera, engine.FindComponents[*components.MeshRenderer](p.scene))

	p.drawOverlay(screenSize)
	if p.won {
		p.drawWinBanner(screenSize)
	}
}

// overlayOrigin is the top-left of the controls hint: bottom-left corner,
// inset by a margin.
func overlayOrigin(screen Size, o config.Overlay) (x, y int32) {
	return overlayMargin, screen.Height - o.FontSize - overlayMargin
}

// drawOverlay prints the controls hint once dark and once light on top, so
// it reads on any background.
func (p *PlayMode) drawOverlay(screen Size) {
	o := p.overlay
	x, y := overlayOrigin(screen, o)

	rl.DrawText(o.Text, x, y, o.FontSize, overlayShadow)
	rl.DrawText(o.Text, x+o.ShadowOffset, y-o.ShadowOffset, o.FontSize, overlayFill)
}

// bannerBounds centers a label of textWidth on the screen.
func bannerBounds(screen Size, textWidth, fontSize int32) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(screen.Width-textWidth) / 2,
		Y:      float32(screen.Height)/2 - float32(fontSize),
		Width:  float32(textWidth),
		Height: float32(fontSize) * 2,
	}
}

func (p *PlayMode) drawWinBanner(screen Size) {
	fontSize := p.overlay.FontSize * 2
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, gui.PropertyValue(fontSize))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(rl.Gold))

	width := rl.MeasureText(p.overlay.WinText, fontSize)
	gui.Label(bannerBounds(screen, width, fontSize), p.overlay.WinText)
}
