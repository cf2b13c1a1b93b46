package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/decker502/spirits/internal/contour"
	"gopkg.in/yaml.v3"
)

// AssetDescriptor 单个精灵资源的描述
//
// 每个资源对应一对文件：assets/<stem>.png（图片）和 <stem>_contour（轮廓点列表）。
// Width/Height 是图片的参考尺寸（像素），用于把轮廓坐标平移到图片中心；
// Scale 把像素坐标换算成游戏内单位。
type AssetDescriptor struct {
	// Stem 资源文件名主干（不含扩展名），如 "rocket"
	Stem string `yaml:"stem"`

	// ID 生成代码中的成员名，如 "controller"
	ID string `yaml:"id"`

	// Width 参考宽度（像素）
	Width float64 `yaml:"width"`

	// Height 参考高度（像素）
	Height float64 `yaml:"height"`

	// Scale 缩放系数
	Scale float64 `yaml:"scale"`
}

// Manifest 资源清单
//
// 资源按列表顺序生成，不排序、不去重。
//
// 配置文件示例:
//
//	assets:
//	  - stem: rocket
//	    id: controller
//	    width: 128
//	    height: 224
//	    scale: 0.5
type Manifest struct {
	Assets []AssetDescriptor `yaml:"assets"`
}

// DefaultAssets 返回内置的资源表
//
// 顺序固定：controller、asteroid、bullet。
func DefaultAssets() []AssetDescriptor {
	return []AssetDescriptor{
		{Stem: "rocket", ID: "controller", Width: 128, Height: 224, Scale: 0.5},
		{Stem: "asteroid_small", ID: "asteroid", Width: 1000, Height: 877, Scale: 0.1},
		{Stem: "bullet", ID: "bullet", Width: 102, Height: 571, Scale: 0.25},
	}
}

// DefaultManifest 返回只包含内置资源表的清单
func DefaultManifest() *Manifest {
	return &Manifest{Assets: DefaultAssets()}
}

// LoadManifest 加载资源清单
//
// 从指定路径加载 YAML 格式的资源清单并验证。
//
// 参数:
//   - path: 清单文件路径（如 "data/spirits.yaml"）
//
// 返回:
//   - *Manifest: 加载成功后的清单
//   - error: 读取、解析或验证失败时返回错误
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset manifest: %w", err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse asset manifest: %w", err)
	}

	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("invalid asset manifest: %w", err)
	}

	return &manifest, nil
}

// LoadManifestOrDefault 路径为空时返回内置清单，否则加载文件
func LoadManifestOrDefault(path string) (*Manifest, error) {
	if path == "" {
		return DefaultManifest(), nil
	}
	return LoadManifest(path)
}

// Validate 验证清单有效性
//
// 检查内容：
//   - 至少包含一个资源
//   - stem 非空且不含路径分隔符
//   - id 是合法的 C 标识符且不重复
//   - width、height、scale 为正的有限数
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (m *Manifest) Validate() error {
	if len(m.Assets) == 0 {
		return fmt.Errorf("no assets defined")
	}

	seen := make(map[string]int, len(m.Assets))
	for i, a := range m.Assets {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("asset #%d: %w", i+1, err)
		}
		if prev, ok := seen[a.ID]; ok {
			return fmt.Errorf("asset #%d: duplicate id '%s' (first used by asset #%d)", i+1, a.ID, prev)
		}
		seen[a.ID] = i + 1
	}

	return nil
}

// Validate 验证单个资源描述
func (a AssetDescriptor) Validate() error {
	if a.Stem == "" {
		return fmt.Errorf("stem is empty")
	}
	if strings.ContainsAny(a.Stem, `/\`) {
		return fmt.Errorf("stem '%s' must not contain path separators", a.Stem)
	}
	if !isIdentifier(a.ID) {
		return fmt.Errorf("id '%s' is not a valid identifier", a.ID)
	}
	if !isPositive(a.Width) {
		return fmt.Errorf("width for '%s' should be > 0, got %v", a.ID, a.Width)
	}
	if !isPositive(a.Height) {
		return fmt.Errorf("height for '%s' should be > 0, got %v", a.ID, a.Height)
	}
	if !isPositive(a.Scale) {
		return fmt.Errorf("scale for '%s' should be > 0, got %v", a.ID, a.Scale)
	}
	return nil
}

// ContourFile 返回资源的轮廓文件路径
//
// 示例:
//
//	AssetDescriptor{Stem: "rocket"}.ContourFile(".") = "rocket_contour"
func (a AssetDescriptor) ContourFile(dir string) string {
	return contour.ContourPath(dir, a.Stem)
}

// ImagePath 返回生成代码中引用的图片路径（始终使用正斜杠）
func (a AssetDescriptor) ImagePath() string {
	return "assets/" + a.Stem + ".png"
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// isIdentifier 检查 s 是否为 C/C++ 标识符（ASCII 字母、数字、下划线，不以数字开头）
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
