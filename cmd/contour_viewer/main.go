// contour_viewer - 精灵轮廓查看工具
//
// 把清单中每个资源的轮廓画在窗口里，用于检查轮廓文件和碰撞效果。
// 按住鼠标左键拖动选中的轮廓，与其他轮廓相交时两者都会变红。
//
// 按键：
//   - Tab: 切换选中的资源
//   - B: 显示/隐藏半边长包围盒
//   - V: 显示/隐藏顶点
//   - +/-: 缩放
//   - R: 重置位置
//   - Esc: 退出
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/decker502/spirits/internal/contour"
	"github.com/decker502/spirits/pkg/config"
	"github.com/decker502/spirits/pkg/settings"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	screenWidth  = 1024
	screenHeight = 640
	zoomStep     = 1.25
	appName      = "spirits_contour_viewer"
)

var (
	dirFlag     = flag.String("dir", ".", "directory containing <stem>_contour files")
	configFlag  = flag.String("config", "", "YAML asset manifest (default: built-in asset table)")
	verboseFlag = flag.Bool("verbose", false, "enable verbose logging")
)

var (
	colorBackground = color.RGBA{24, 24, 32, 255}
	colorContour    = color.RGBA{120, 220, 120, 255}
	colorSelected   = color.RGBA{255, 230, 120, 255}
	colorHit        = color.RGBA{240, 70, 70, 255}
	colorBounds     = color.RGBA{90, 90, 140, 255}
	colorVertex     = color.RGBA{200, 200, 255, 255}
)

// ViewerGame 轮廓查看器
type ViewerGame struct {
	assets   []config.AssetDescriptor
	contours []contour.ObjectContour
	homes    []contour.Vector // 布局位置
	centers  []contour.Vector // 当前位置（可拖动）
	hits     []bool

	settings *settings.Manager
	cam      camera
}

// NewViewerGame 加载清单和所有轮廓文件
func NewViewerGame(manifest *config.Manifest, dir string, sm *settings.Manager) (*ViewerGame, error) {
	g := &ViewerGame{
		assets:   manifest.Assets,
		settings: sm,
	}

	for _, asset := range manifest.Assets {
		pairs, err := contour.LoadPairs(asset.ContourFile(dir))
		if err != nil {
			return nil, fmt.Errorf("failed to load contour for '%s': %w", asset.ID, err)
		}
		c := contour.Build(pairs, asset.Width, asset.Height, asset.Scale)
		g.contours = append(g.contours, c)
		log.Printf("[Viewer] Loaded %s: %d vertices", asset.ID, len(c.Vertices))
	}

	g.homes = layoutCenters(g.contours)
	g.resetPositions()
	sm.SetSelected(sm.Settings().Selected, len(g.assets))
	g.cam = g.fitCamera(sm.Settings().Zoom)

	return g, nil
}

func (g *ViewerGame) resetPositions() {
	g.centers = append(g.centers[:0], g.homes...)
	g.hits = collisions(g.contours, g.centers)
}

// Update 处理输入并更新碰撞状态
func (g *ViewerGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.saveSettings()
		return ebiten.Termination
	}

	s := g.settings.Settings()
	changed := false

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.settings.SetSelected(s.Selected+1, len(g.assets))
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.settings.ToggleBounds()
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.settings.ToggleVertices()
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.settings.SetZoom(s.Zoom * zoomStep)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.settings.SetZoom(s.Zoom / zoomStep)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetPositions()
	}
	if changed {
		g.saveSettings()
	}

	g.cam = g.fitCamera(s.Zoom)

	if len(g.assets) > 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.centers[s.Selected] = g.cam.toWorld(float64(x), float64(y))
		g.hits = collisions(g.contours, g.centers)
	}

	return nil
}

// fitCamera 让整行布局在屏幕中居中
func (g *ViewerGame) fitCamera(zoom float64) camera {
	w, h := layoutSize(g.contours)
	return camera{
		zoom: zoom,
		offset: contour.Vector{
			X: (screenWidth - w*zoom) / 2,
			Y: (screenHeight - h*zoom) / 2,
		},
	}
}

func (g *ViewerGame) saveSettings() {
	if err := g.settings.Save(); err != nil {
		log.Printf("[Viewer] Warning: %v", err)
	}
}

// Draw 绘制所有轮廓
func (g *ViewerGame) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	s := g.settings.Settings()

	for i, c := range g.contours {
		center := g.centers[i]

		if s.ShowBounds {
			g.drawBounds(screen, c, center)
		}

		clr := colorContour
		switch {
		case g.hits[i]:
			clr = colorHit
		case i == s.Selected:
			clr = colorSelected
		}
		g.drawContour(screen, c, center, clr)

		if s.ShowVertices {
			g.drawVertices(screen, c, center)
		}

		lx, ly := g.cam.toScreen(center.Sub(c.HalfOfSides))
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s (%d)", g.assets[i].ID, len(c.Vertices)), int(lx), int(ly)-16)
	}

	help := fmt.Sprintf("Tab: select  B: bounds  V: vertices  +/-: zoom (%.2fx)  R: reset  Esc: quit", s.Zoom)
	ebitenutil.DebugPrintAt(screen, help, 10, screenHeight-20)
}

func (g *ViewerGame) drawContour(screen *ebiten.Image, c contour.ObjectContour, center contour.Vector, clr color.Color) {
	n := len(c.Vertices)
	for i := 0; i < n; i++ {
		x0, y0 := g.cam.toScreen(center.Add(c.Vertices[i]))
		x1, y1 := g.cam.toScreen(center.Add(c.Vertices[(i+1)%n]))
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, true)
	}
}

func (g *ViewerGame) drawBounds(screen *ebiten.Image, c contour.ObjectContour, center contour.Vector) {
	x, y := g.cam.toScreen(center.Sub(c.HalfOfSides))
	w := float32(2 * c.HalfOfSides.X * g.cam.zoom)
	h := float32(2 * c.HalfOfSides.Y * g.cam.zoom)
	vector.StrokeRect(screen, x, y, w, h, 1, colorBounds, false)
}

func (g *ViewerGame) drawVertices(screen *ebiten.Image, c contour.ObjectContour, center contour.Vector) {
	const size = 4
	for _, v := range c.Vertices {
		x, y := g.cam.toScreen(center.Add(v))
		vector.StrokeRect(screen, x-size/2, y-size/2, size, size, 1, colorVertex, false)
	}
}

// Layout 返回逻辑屏幕尺寸
func (g *ViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	log.Println("=== Spirits Contour Viewer ===")

	manifest, err := config.LoadManifestOrDefault(*configFlag)
	if err != nil {
		fatalf("Failed to load manifest: %v", err)
	}

	game, err := NewViewerGame(manifest, *dirFlag, settings.Open(appName))
	if err != nil {
		fatalf("Failed to initialize viewer: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Spirits Contour Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		fatalf("%v", err)
	}

	log.Println("Contour viewer closed")
}

// fatalf 即使在静默模式下也输出错误
func fatalf(format string, args ...any) {
	log.SetOutput(os.Stderr)
	log.Fatalf(format, args...)
}
