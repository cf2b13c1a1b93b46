package settings

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata 存储
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试默认设置
func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Zoom != 2.0 {
		t.Errorf("Zoom: got %v, want 2.0", s.Zoom)
	}
	if !s.ShowBounds {
		t.Error("ShowBounds: got false, want true")
	}
	if s.ShowVertices {
		t.Error("ShowVertices: got true, want false")
	}
	if s.Selected != 0 {
		t.Errorf("Selected: got %d, want 0", s.Selected)
	}
}

// TestSettingsLoadSave 测试保存后重新加载
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_contour_viewer_load_save")

	m1 := NewManager(gdataManager)
	m1.SetZoom(3.5)
	m1.ToggleBounds()
	m1.ToggleVertices()
	m1.SetSelected(2, 3)

	if err := m1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	m2 := NewManager(gdataManager)
	s := m2.Settings()

	if s.Zoom != 3.5 {
		t.Errorf("Loaded Zoom: got %v, want 3.5", s.Zoom)
	}
	if s.ShowBounds {
		t.Error("Loaded ShowBounds: got true, want false")
	}
	if !s.ShowVertices {
		t.Error("Loaded ShowVertices: got false, want true")
	}
	if s.Selected != 2 {
		t.Errorf("Loaded Selected: got %d, want 2", s.Selected)
	}
}

// TestLoadCorruptSettings 测试损坏的存储数据回退为默认设置
func TestLoadCorruptSettings(t *testing.T) {
	gdataManager := openTestGdata(t, "test_contour_viewer_corrupt")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("zoom: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	m := &Manager{gdataManager: gdataManager, settings: DefaultSettings()}
	if err := m.Load(); err == nil {
		t.Error("Load() should fail on corrupt data")
	}
	if m.Settings().Zoom != DefaultSettings().Zoom {
		t.Errorf("Zoom after failed load: got %v, want default", m.Settings().Zoom)
	}
}

// TestLoadClampsStoredValues 测试加载时修正越界数值
func TestLoadClampsStoredValues(t *testing.T) {
	gdataManager := openTestGdata(t, "test_contour_viewer_clamp")

	data := []byte("zoom: 100\nselected: -4\n")
	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	s := NewManager(gdataManager).Settings()
	if s.Zoom != MaxZoom {
		t.Errorf("Zoom: got %v, want %v", s.Zoom, MaxZoom)
	}
	if s.Selected != 0 {
		t.Errorf("Selected: got %d, want 0", s.Selected)
	}
	// 未保存的字段保持默认值
	if !s.ShowBounds {
		t.Error("ShowBounds: got false, want default true")
	}
}

// TestNilGdataManager 测试降级模式
func TestNilGdataManager(t *testing.T) {
	m := NewManager(nil)

	m.SetZoom(4)
	if err := m.Save(); err != nil {
		t.Errorf("Save() with nil gdata should not fail: %v", err)
	}
	if err := m.Load(); err != nil {
		t.Errorf("Load() with nil gdata should not fail: %v", err)
	}
	if m.Settings().Zoom != DefaultSettings().Zoom {
		t.Errorf("Load() with nil gdata should reset to defaults, got zoom %v", m.Settings().Zoom)
	}
}

func TestSetSelected(t *testing.T) {
	m := NewManager(nil)

	tests := []struct {
		index, count int
		expected     int
	}{
		{0, 3, 0},
		{2, 3, 2},
		{3, 3, 0},  // 回绕
		{-1, 3, 2}, // 反向回绕
		{5, 0, 0},  // 无资源
	}

	for _, tt := range tests {
		m.SetSelected(tt.index, tt.count)
		if got := m.Settings().Selected; got != tt.expected {
			t.Errorf("SetSelected(%d, %d): got %d, want %d", tt.index, tt.count, got, tt.expected)
		}
	}
}

func TestClampZoom(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{1.0, 1.0},
		{MinZoom, MinZoom},
		{MaxZoom, MaxZoom},
		{0.1, MinZoom},
		{-3, MinZoom},
		{20, MaxZoom},
	}

	for _, tt := range tests {
		if got := ClampZoom(tt.input); got != tt.expected {
			t.Errorf("ClampZoom(%v): got %v, want %v", tt.input, got, tt.expected)
		}
	}
}
