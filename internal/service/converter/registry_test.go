package converter

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		wantErr     bool
		passthrough bool
	}{
		{name: "glb is passthrough", filename: "pump.glb", passthrough: true},
		{name: "gltf is passthrough", filename: "pump.gltf", passthrough: true},
		{name: "babylon is passthrough", filename: "scene.babylon", passthrough: true},
		{name: "fbx needs conversion", filename: "rig.fbx"},
		{name: "rvm needs conversion", filename: "plant.rvm"},
		{name: "ifc needs conversion", filename: "building.ifc"},
		{name: "dae needs conversion", filename: "mesh.dae"},
		{name: "iges needs conversion", filename: "part.iges"},
		{name: "igs needs conversion", filename: "part.igs"},
		{name: "uppercase extension", filename: "PUMP.GLB", passthrough: true},
		{name: "unknown format", filename: "model.obj", wantErr: true},
		{name: "no extension", filename: "model", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Lookup(tt.filename)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Lookup(%q) expected error, got %+v", tt.filename, f)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", tt.filename, err)
			}
			if f.Passthrough != tt.passthrough {
				t.Errorf("Lookup(%q).Passthrough = %v, want %v", tt.filename, f.Passthrough, tt.passthrough)
			}
			if !f.Passthrough && f.Exe == "" {
				t.Errorf("Lookup(%q) conversion format has no converter", tt.filename)
			}
		})
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"pump.glb", "pump.glb"},
		{"scene.babylon", "scene.babylon"},
		{"rig.fbx", "rig.glb"},
		{"plant.rvm", "plant.glb"},
		{"part.iges", "part.glb"},
		{"dir/sub/mesh.dae", "mesh.glb"},
	}

	for _, tt := range tests {
		if got := OutputName(tt.filename); got != tt.want {
			t.Errorf("OutputName(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestSupported(t *testing.T) {
	if !Supported("valve.rvm") {
		t.Error("rvm should be supported")
	}
	if Supported("model.stl") {
		t.Error("stl should not be supported")
	}
}
