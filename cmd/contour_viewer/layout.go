// cmd/contour_viewer/layout.go
// 布局与坐标换算 - 不依赖 ebiten，便于单元测试

package main

import (
	"github.com/decker502/spirits/internal/contour"
)

// cellPadding 相邻资源之间的间距（轮廓单位）
const cellPadding = 20.0

// layoutCenters 把所有轮廓排成一行，返回每个轮廓中心的世界坐标
//
// 每个单元宽度为 2*HalfOfSides.X，单元之间以及左侧留 cellPadding；
// 所有中心位于同一水平线，高度取最高轮廓的半边长。
func layoutCenters(contours []contour.ObjectContour) []contour.Vector {
	maxHalfY := 0.0
	for _, c := range contours {
		if c.HalfOfSides.Y > maxHalfY {
			maxHalfY = c.HalfOfSides.Y
		}
	}

	centers := make([]contour.Vector, len(contours))
	x := cellPadding
	for i, c := range contours {
		centers[i] = contour.Vector{X: x + c.HalfOfSides.X, Y: cellPadding + maxHalfY}
		x += 2*c.HalfOfSides.X + cellPadding
	}
	return centers
}

// layoutSize 返回整行布局占用的世界尺寸
func layoutSize(contours []contour.ObjectContour) (width, height float64) {
	width = cellPadding
	maxHalfY := 0.0
	for _, c := range contours {
		width += 2*c.HalfOfSides.X + cellPadding
		if c.HalfOfSides.Y > maxHalfY {
			maxHalfY = c.HalfOfSides.Y
		}
	}
	return width, 2*maxHalfY + 2*cellPadding
}

// camera 世界坐标与屏幕坐标的换算
type camera struct {
	zoom   float64
	offset contour.Vector // 世界原点在屏幕上的位置
}

// toScreen 世界坐标 → 屏幕坐标
func (c camera) toScreen(p contour.Vector) (float32, float32) {
	return float32(p.X*c.zoom + c.offset.X), float32(p.Y*c.zoom + c.offset.Y)
}

// toWorld 屏幕坐标 → 世界坐标
func (c camera) toWorld(x, y float64) contour.Vector {
	return contour.Vector{X: (x - c.offset.X) / c.zoom, Y: (y - c.offset.Y) / c.zoom}
}

// collisions 返回每个轮廓是否与任意其他轮廓相交
func collisions(contours []contour.ObjectContour, centers []contour.Vector) []bool {
	hits := make([]bool, len(contours))
	for i := range contours {
		for j := i + 1; j < len(contours); j++ {
			if contour.Intersect(contours[i], contours[j], centers[i], centers[j]) {
				hits[i] = true
				hits[j] = true
			}
		}
	}
	return hits
}
