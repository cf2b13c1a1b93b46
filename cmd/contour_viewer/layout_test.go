package main

import (
	"testing"

	"github.com/decker502/spirits/internal/contour"
)

func box(hx, hy float64) contour.ObjectContour {
	return contour.ObjectContour{
		Vertices:    []contour.Vector{{X: -hx, Y: -hy}, {X: hx, Y: -hy}, {X: hx, Y: hy}, {X: -hx, Y: hy}},
		HalfOfSides: contour.Vector{X: hx, Y: hy},
	}
}

func TestLayoutCenters(t *testing.T) {
	contours := []contour.ObjectContour{box(10, 5), box(30, 40), box(5, 5)}
	centers := layoutCenters(contours)

	want := []contour.Vector{
		{X: 30, Y: 60},
		{X: 90, Y: 60},
		{X: 145, Y: 60},
	}
	for i := range want {
		if centers[i] != want[i] {
			t.Errorf("center %d = %+v, want %+v", i, centers[i], want[i])
		}
	}

	// 布局后互不相交
	for i, hit := range collisions(contours, centers) {
		if hit {
			t.Errorf("contour %d should not collide in the default layout", i)
		}
	}
}

func TestLayoutSize(t *testing.T) {
	w, h := layoutSize([]contour.ObjectContour{box(10, 5), box(30, 40)})
	if w != 140 || h != 120 {
		t.Errorf("layoutSize = (%v, %v), want (140, 120)", w, h)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	cam := camera{zoom: 2, offset: contour.Vector{X: 100, Y: 50}}

	x, y := cam.toScreen(contour.Vector{X: 10, Y: -5})
	if x != 120 || y != 40 {
		t.Errorf("toScreen = (%v, %v), want (120, 40)", x, y)
	}

	p := cam.toWorld(120, 40)
	if p != (contour.Vector{X: 10, Y: -5}) {
		t.Errorf("toWorld = %+v, want {10 -5}", p)
	}
}

func TestCollisions(t *testing.T) {
	contours := []contour.ObjectContour{box(10, 10), box(10, 10), box(10, 10)}
	centers := []contour.Vector{{X: 0}, {X: 15, Y: 5}, {X: 100}}

	hits := collisions(contours, centers)
	want := []bool{true, true, false}
	for i := range want {
		if hits[i] != want[i] {
			t.Errorf("hits[%d] = %v, want %v", i, hits[i], want[i])
		}
	}
}
