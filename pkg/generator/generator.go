// Package generator 生成精灵轮廓数据表（C++ 头文件）
//
// 输出结构：
//
//	头部注释 → #pragma once / #include → SpiritData 定义 → struct Spirits {
//	  每个资源一条 SpiritData 记录（按清单顺序）
//	};
//
// 输出按记录流式写入：某个资源加载失败时，之前的记录已经写出，
// 失败资源的记录不会写出任何字节。
package generator

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/decker502/spirits/internal/contour"
	"github.com/decker502/spirits/pkg/config"
)

// DefaultGeneratedBy 头部注释中标注的生成工具名
//
// 与仓库中已提交的 spirits.hpp 保持一致，重新生成时不会产生差异。
const DefaultGeneratedBy = "contour_parse.py"

// Options 生成器选项
type Options struct {
	// ContourDir 轮廓文件所在目录，空字符串表示当前目录
	ContourDir string

	// GeneratedBy 头部注释中的工具名，空字符串使用 DefaultGeneratedBy
	GeneratedBy string
}

// Generator 轮廓表生成器
type Generator struct {
	w    io.Writer
	opts Options
}

// New 创建生成器
//
// 参数:
//   - w: 输出目标（通常是 os.Stdout）
//   - opts: 生成器选项
func New(w io.Writer, opts Options) *Generator {
	if opts.ContourDir == "" {
		opts.ContourDir = "."
	}
	if opts.GeneratedBy == "" {
		opts.GeneratedBy = DefaultGeneratedBy
	}
	return &Generator{w: w, opts: opts}
}

// Run 依次输出头部、每个资源的记录和结尾
//
// 遇到第一个错误即停止并返回，已写出的内容保留。
func (g *Generator) Run(assets []config.AssetDescriptor) error {
	if err := g.WriteHeader(); err != nil {
		return err
	}

	for _, asset := range assets {
		if err := g.WriteAsset(asset); err != nil {
			return err
		}
	}

	return g.WriteFooter()
}

// WriteHeader 输出头部注释和类型定义，并打开 Spirits 结构体
func (g *Generator) WriteHeader() error {
	var buf bytes.Buffer
	buf.WriteString("/*\n")
	fmt.Fprintf(&buf, " * This file is auto-generated by `%s` (from this repo)\n", g.opts.GeneratedBy)
	buf.WriteString(" */\n")
	buf.WriteString("\n")
	buf.WriteString("#pragma once\n")
	buf.WriteString("#include \"math.hpp\"\n")
	buf.WriteString("\n")
	buf.WriteString("struct SpiritData {\n")
	buf.WriteString("    const wchar_t* filename;\n")
	buf.WriteString("    ObjectContour contour;\n")
	buf.WriteString("    float scale;\n")
	buf.WriteString("};\n")
	buf.WriteString("\n")
	buf.WriteString("struct Spirits {\n")

	return g.write(buf.Bytes())
}

// WriteAsset 加载一个资源的轮廓文件并输出其记录
//
// 轮廓文件完整读取并解析成功后才会写出记录。
func (g *Generator) WriteAsset(asset config.AssetDescriptor) error {
	path := asset.ContourFile(g.opts.ContourDir)
	pairs, err := contour.LoadPairs(path)
	if err != nil {
		return fmt.Errorf("failed to load contour for '%s': %w", asset.ID, err)
	}

	c := contour.Build(pairs, asset.Width, asset.Height, asset.Scale)
	log.Printf("[Generator] %s: %d vertices from %s", asset.ID, len(c.Vertices), path)

	return g.write([]byte(RenderRecord(asset, c)))
}

// WriteFooter 关闭 Spirits 结构体
func (g *Generator) WriteFooter() error {
	return g.write([]byte("};\n"))
}

func (g *Generator) write(p []byte) error {
	if _, err := g.w.Write(p); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// RenderRecord 渲染单个 SpiritData 记录（含结尾空行）
func RenderRecord(asset config.AssetDescriptor, c contour.ObjectContour) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "    SpiritData %s {\n", asset.ID)
	fmt.Fprintf(&buf, "        .filename = L\"%s\",\n", asset.ImagePath())
	buf.WriteString("        .contour = {\n")
	buf.WriteString("            .vertices = {\n")
	for _, v := range c.Vertices {
		fmt.Fprintf(&buf, "                { %s, %s },\n", floatLiteral(v.X), floatLiteral(v.Y))
	}
	buf.WriteString("            },\n")
	fmt.Fprintf(&buf, "            .half_of_sides = { %s, %s },\n",
		floatLiteral(c.HalfOfSides.X), floatLiteral(c.HalfOfSides.Y))
	buf.WriteString("        },\n")
	fmt.Fprintf(&buf, "        .scale = %s,\n", floatLiteral(asset.Scale))
	buf.WriteString("    };\n")
	buf.WriteString("\n")

	return buf.String()
}
