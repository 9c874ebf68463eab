package converter

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format 一种 3D 模型源格式的转换定义
// Passthrough 格式无需转换，直接存放；其余格式通过外部转换器转为 glb
type Format struct {
	Ext         string   // 含点的小写扩展名
	Passthrough bool     // 引擎原生格式，仅复制
	Exe         string   // 转换器可执行文件，相对转换器根目录
	Args        []string // 参数模板，{in} / {out} 为占位符
}

// registry 支持的源格式表，按扩展名索引
var registry = map[string]Format{
	".glb":     {Ext: ".glb", Passthrough: true},
	".gltf":    {Ext: ".gltf", Passthrough: true},
	".babylon": {Ext: ".babylon", Passthrough: true},
	".fbx": {
		Ext:  ".fbx",
		Exe:  filepath.Join("FbxExporter", "FBX2glTF-windows-x64.exe"),
		Args: []string{"--input", "{in}", "--output", "{out}"},
	},
	".dae": {
		Ext:  ".dae",
		Exe:  filepath.Join("COLLADA2GLTF", "COLLADA2GLTF-bin.exe"),
		Args: []string{"--input", "{in}", "--output", "{out}"},
	},
	".rvm": {
		Ext:  ".rvm",
		Exe:  filepath.Join("rvmparser", "rvmparser.exe"),
		Args: []string{"--output-gltf={out}", "--tolerance=0.01", "{in}"},
	},
	".ifc": {
		Ext:  ".ifc",
		Exe:  filepath.Join("IfcConvert", "IfcConvert.exe"),
		Args: []string{"{in}", "{out}"},
	},
	".iges": {
		Ext:  ".iges",
		Exe:  filepath.Join("mayo", "mayo.exe"),
		Args: []string{"--export", "{out}", "{in}"},
	},
	".igs": {
		Ext:  ".igs",
		Exe:  filepath.Join("mayo", "mayo.exe"),
		Args: []string{"--export", "{out}", "{in}"},
	},
}

// Lookup 根据文件名查找格式定义，扩展名大小写不敏感
func Lookup(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	f, ok := registry[ext]
	if !ok {
		return Format{}, fmt.Errorf("unsupported model format %q", ext)
	}
	return f, nil
}

// Supported 判断文件名是否为受支持的源格式
func Supported(filename string) bool {
	_, err := Lookup(filename)
	return err == nil
}

// OutputName 转换后的落盘文件名：passthrough 保留原名，其余为主干 + .glb
func OutputName(filename string) string {
	base := filepath.Base(filename)
	f, err := Lookup(base)
	if err != nil || f.Passthrough {
		return base
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + ".glb"
}
