// spirits - 精灵轮廓数据表生成器
//
// 读取每个资源的 <stem>_contour 文件，输出供游戏使用的 C++ 头文件。
// 通常用法：
//
//	go run . > include/spirits.hpp
//	go run . -dir contours -config data/spirits.yaml -o include/spirits.hpp
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/spirits/pkg/config"
	"github.com/decker502/spirits/pkg/generator"
)

var (
	dirFlag     = flag.String("dir", ".", "directory containing <stem>_contour files")
	configFlag  = flag.String("config", "", "YAML asset manifest (default: built-in asset table)")
	outputFlag  = flag.String("o", "", "output file (default: stdout)")
	verboseFlag = flag.Bool("verbose", false, "log progress to stderr")
)

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	manifest, err := config.LoadManifestOrDefault(*configFlag)
	if err != nil {
		fatal(err)
	}

	out := os.Stdout
	if *outputFlag != "" {
		f, err := os.Create(*outputFlag)
		if err != nil {
			fatal(err)
		}
		out = f
	}

	log.Printf("[Generator] Generating %d assets from %s", len(manifest.Assets), *dirFlag)
	if err := generate(out, *dirFlag, manifest.Assets); err != nil {
		fatal(err)
	}
	log.Printf("[Generator] Done")
}

// generate 生成轮廓表并关闭输出文件（stdout 不关闭）
//
// 直接写入文件，不做缓冲：失败时已完成的记录仍然保留在输出中。
func generate(out *os.File, dir string, assets []config.AssetDescriptor) error {
	g := generator.New(out, generator.Options{ContourDir: dir})
	runErr := g.Run(assets)

	if out == os.Stdout {
		return runErr
	}
	if err := out.Close(); err != nil && runErr == nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return runErr
}

// fatal 输出诊断信息并以非零状态退出（不受 -verbose 影响）
func fatal(err error) {
	log.SetOutput(os.Stderr)
	log.Fatalf("spirits: %v", err)
}
