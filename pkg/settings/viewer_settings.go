// Package settings 轮廓查看器的持久化设置
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 缩放范围
const (
	MinZoom = 0.25
	MaxZoom = 8.0
)

// ViewerSettings 查看器设置
type ViewerSettings struct {
	Zoom         float64 `yaml:"zoom"`         // 显示缩放倍数
	ShowBounds   bool    `yaml:"showBounds"`   // 是否绘制半边长包围盒
	ShowVertices bool    `yaml:"showVertices"` // 是否绘制顶点标记
	Selected     int     `yaml:"selected"`     // 当前选中的资源索引
}

// DefaultSettings 返回默认设置
func DefaultSettings() *ViewerSettings {
	return &ViewerSettings{
		Zoom:         2.0,
		ShowBounds:   true,
		ShowVertices: false,
		Selected:     0,
	}
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "viewer"
)

// Manager 设置管理器
// 负责查看器设置的加载、保存和内存管理
type Manager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存设置）
	settings     *ViewerSettings
}

// NewManager 创建设置管理器并尝试加载已保存的设置
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil
//
// 加载失败不是致命错误，会记录日志并使用默认设置。
func NewManager(gdataManager *gdata.Manager) *Manager {
	m := &Manager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := m.Load(); err != nil {
		log.Printf("[Settings] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return m
}

// Open 打开指定应用名的 gdata 存储并创建设置管理器
//
// 存储不可用时退化为仅内存模式。
func Open(appName string) *Manager {
	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Settings] Warning: gdata unavailable: %v (settings will not persist)", err)
		return NewManager(nil)
	}
	return NewManager(gdataManager)
}

// Load 从 gdata 加载设置
//
// gdataManager 为 nil 或尚未保存过设置时使用默认设置。
func (m *Manager) Load() error {
	if m.gdataManager == nil {
		m.settings = DefaultSettings()
		return nil
	}

	if !m.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		m.settings = DefaultSettings()
		return nil
	}

	data, err := m.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		m.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.Zoom = ClampZoom(loaded.Zoom)
	if loaded.Selected < 0 {
		loaded.Selected = 0
	}

	m.settings = loaded
	log.Printf("[Settings] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// gdataManager 为 nil 时直接返回 nil。
func (m *Manager) Save() error {
	if m.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := m.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[Settings] Settings saved successfully")
	return nil
}

// Settings 获取当前设置
func (m *Manager) Settings() *ViewerSettings {
	return m.settings
}

// SetZoom 设置缩放倍数，超出范围时截断
// 仅修改内存中的设置，需调用 Save() 持久化
func (m *Manager) SetZoom(zoom float64) {
	m.settings.Zoom = ClampZoom(zoom)
}

// ToggleBounds 切换包围盒显示
func (m *Manager) ToggleBounds() {
	m.settings.ShowBounds = !m.settings.ShowBounds
}

// ToggleVertices 切换顶点标记显示
func (m *Manager) ToggleVertices() {
	m.settings.ShowVertices = !m.settings.ShowVertices
}

// SetSelected 设置选中的资源索引
//
// 参数：
//   - index: 资源索引，按 count 取模
//   - count: 资源数量，<= 0 时选中 0
func (m *Manager) SetSelected(index, count int) {
	if count <= 0 {
		m.settings.Selected = 0
		return
	}
	m.settings.Selected = ((index % count) + count) % count
}

// ClampZoom 将缩放倍数限制在 MinZoom ~ MaxZoom 范围内
func ClampZoom(zoom float64) float64 {
	if zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}
