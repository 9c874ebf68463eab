package tag

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Navii02/pods-pidBackend/internal/config"
	"github.com/Navii02/pods-pidBackend/internal/model"
	"github.com/Navii02/pods-pidBackend/internal/repository"
	"github.com/Navii02/pods-pidBackend/internal/service/storage"
)

func newTestService(t *testing.T) (*Service, *repository.Repositories) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(model.AllModels...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	repos := repository.NewRepositories(db)
	layout := storage.NewLayout(config.StorageConfig{
		Root:          t.TempDir(),
		DocumentsDir:  "documents",
		ModelsDir:     "models",
		UnassignedDir: "unassignedModels",
		TagsDir:       "tags",
		ConvertersDir: "converters",
	})
	return NewService(repos, layout), repos
}

func TestAddTag(t *testing.T) {
	svc, repos := newTestService(t)
	ctx := context.Background()

	tag, err := svc.AddTag(ctx, &AddTagRequest{
		ProjectID: "PRJ111aaa",
		Number:    "20-L-0001",
		Name:      "main line",
		Type:      "Line",
	})
	if err != nil {
		t.Fatalf("AddTag failed: %v", err)
	}
	if tag.Type != "line" {
		t.Errorf("type = %q, want normalized line", tag.Type)
	}
	if len(tag.TagID) != len("TAG-")+6 {
		t.Errorf("tagId = %q, unexpected length", tag.TagID)
	}

	// TagInfo 和管线明细行同步建立
	info, err := repos.Tag.GetInfo(ctx, tag.TagID)
	if err != nil {
		t.Fatalf("tag info missing: %v", err)
	}
	if info.Tag == nil || *info.Tag != "20-L-0001" {
		t.Errorf("info tag = %v", info.Tag)
	}
	line, err := repos.Tag.GetLine(ctx, tag.TagID)
	if err != nil {
		t.Fatalf("line row missing: %v", err)
	}
	if line.Tag != "20-L-0001" {
		t.Errorf("line tag = %q", line.Tag)
	}
}

func TestAddTagDuplicateNumber(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := &AddTagRequest{ProjectID: "PRJ111aaa", Number: "20-L-0002", Name: "a", Type: "line"}
	if _, err := svc.AddTag(ctx, req); err != nil {
		t.Fatal(err)
	}

	// 标签号全局唯一，换项目也不行
	req2 := &AddTagRequest{ProjectID: "PRJ222bbb", Number: "20-L-0002", Name: "b", Type: "valve"}
	if _, err := svc.AddTag(ctx, req2); !errors.Is(err, ErrDuplicateNumber) {
		t.Fatalf("expected ErrDuplicateNumber, got %v", err)
	}
}

func TestAddTagOtherTypeHasNoDetail(t *testing.T) {
	svc, repos := newTestService(t)
	ctx := context.Background()

	tag, err := svc.AddTag(ctx, &AddTagRequest{
		ProjectID: "PRJ111aaa",
		Number:    "MISC-01",
		Name:      "misc",
		Type:      "structure",
	})
	if err != nil {
		t.Fatal(err)
	}
	if tag.Type != "other" {
		t.Errorf("unknown type should normalize to other, got %q", tag.Type)
	}
	if _, err := repos.Tag.GetLine(ctx, tag.TagID); err == nil {
		t.Error("other type should not create a line row")
	}
}

func TestUpdateTagTypeChange(t *testing.T) {
	svc, repos := newTestService(t)
	ctx := context.Background()

	tag, err := svc.AddTag(ctx, &AddTagRequest{
		ProjectID: "PRJ111aaa",
		Number:    "V-2001",
		Name:      "isolation valve",
		Type:      "valve",
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := repos.Tag.GetValve(ctx, tag.TagID); err != nil {
		t.Fatalf("valve row missing: %v", err)
	}

	newType := "equipment"
	updated, err := svc.UpdateTag(ctx, tag.TagID, &UpdateTagRequest{Type: &newType})
	if err != nil {
		t.Fatalf("UpdateTag failed: %v", err)
	}
	if updated.Type != "equipment" {
		t.Errorf("type = %q", updated.Type)
	}

	// 阀门明细删除，设备明细建立
	if _, err := repos.Tag.GetValve(ctx, tag.TagID); err == nil {
		t.Error("valve row should be gone")
	}
	if _, err := repos.Tag.GetEquipment(ctx, tag.TagID); err != nil {
		t.Errorf("equipment row missing: %v", err)
	}

	info, err := repos.Tag.GetInfo(ctx, tag.TagID)
	if err != nil {
		t.Fatal(err)
	}
	if info.Type == nil || *info.Type != "equipment" {
		t.Errorf("info type = %v", info.Type)
	}
}

func TestUpdateTagNumberSyncsTree(t *testing.T) {
	svc, repos := newTestService(t)
	ctx := context.Background()
	projectID := "PRJ111aaa"

	tag, err := svc.AddTag(ctx, &AddTagRequest{
		ProjectID: projectID,
		Number:    "E-3001",
		Name:      "pump",
		Type:      "equipment",
	})
	if err != nil {
		t.Fatal(err)
	}

	area, disc, sys, number := "A1", "D1", "S1", tag.Number
	node := &model.TreeNode{Area: &area, Disc: &disc, Sys: &sys, Tag: &number, ProjectID: projectID}
	if err := repos.Tree.CreateNode(ctx, node); err != nil {
		t.Fatal(err)
	}

	newNumber := "E-3001A"
	if _, err := svc.UpdateTag(ctx, tag.TagID, &UpdateTagRequest{Number: &newNumber}); err != nil {
		t.Fatalf("UpdateTag failed: %v", err)
	}

	nodes, err := repos.Tree.ListNodesByProject(ctx, projectID)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 1 || nodes[0].Tag == nil || *nodes[0].Tag != newNumber {
		t.Errorf("tree node not synced: %+v", nodes)
	}
}

func TestDeleteTagCascades(t *testing.T) {
	svc, repos := newTestService(t)
	ctx := context.Background()
	projectID := "PRJ111aaa"

	tag, err := svc.AddTag(ctx, &AddTagRequest{
		ProjectID: projectID,
		Number:    "20-L-0003",
		Name:      "line",
		Type:      "line",
	})
	if err != nil {
		t.Fatal(err)
	}

	number := tag.Number
	node := &model.TreeNode{Tag: &number, ProjectID: projectID}
	if err := repos.Tree.CreateNode(ctx, node); err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteTag(ctx, tag.TagID); err != nil {
		t.Fatalf("DeleteTag failed: %v", err)
	}

	if _, err := repos.Tag.GetByTagID(ctx, tag.TagID); err == nil {
		t.Error("tag should be gone")
	}
	if _, err := repos.Tag.GetInfo(ctx, tag.TagID); err == nil {
		t.Error("tag info should be gone")
	}
	if _, err := repos.Tag.GetLine(ctx, tag.TagID); err == nil {
		t.Error("line row should be gone")
	}
	nodes, err := repos.Tree.ListNodesByProject(ctx, projectID)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 0 {
		t.Errorf("tree nodes remain: %d", len(nodes))
	}
}

func TestSaveUpdatedFiles(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	projectID := "PRJ111aaa"

	dir := svc.layout.TagsDir(projectID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pump.glb"), []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	results := svc.SaveUpdatedFiles(ctx, projectID, []FileUpdate{
		{Name: "pump.glb", Data: model.ByteArray("v2")},
		{Name: "ghost.glb", Data: model.ByteArray("x")},
	})
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Status != "updated" {
		t.Errorf("pump.glb: %+v", results[0])
	}
	// 只覆盖已有文件，不存在的文件跳过
	if results[1].Status != "skipped" || results[1].Error != "file does not exist" {
		t.Errorf("ghost.glb: %+v", results[1])
	}

	data, err := os.ReadFile(filepath.Join(dir, "pump.glb"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "v2" {
		t.Errorf("content = %q, want v2", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "ghost.glb")); !os.IsNotExist(err) {
		t.Error("skipped file should not be created")
	}
}

func TestGetDetailChecksProject(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	projectID := "PRJ111aaa"

	tag, err := svc.AddTag(ctx, &AddTagRequest{
		ProjectID: projectID,
		Number:    "V-2002",
		Name:      "valve",
		Type:      "valve",
	})
	if err != nil {
		t.Fatal(err)
	}

	row, err := svc.GetValveDetail(ctx, projectID, tag.TagID)
	if err != nil {
		t.Fatalf("GetValveDetail failed: %v", err)
	}
	if row.Tag != "V-2002" {
		t.Errorf("valve tag = %q", row.Tag)
	}

	// 别的项目查不到这条明细
	if _, err := svc.GetValveDetail(ctx, "PRJ999zzz", tag.TagID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestClearDetailByNumber(t *testing.T) {
	svc, repos := newTestService(t)
	ctx := context.Background()
	projectID := "PRJ111aaa"

	tag, err := svc.AddTag(ctx, &AddTagRequest{
		ProjectID: projectID,
		Number:    "V-2003",
		Name:      "valve",
		Type:      "valve",
	})
	if err != nil {
		t.Fatal(err)
	}

	// 项目不匹配时按号清空必须失败
	if err := svc.ClearDetailByNumber(ctx, "PRJ999zzz", "V-2003"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
	if err := svc.ClearDetailByNumber(ctx, projectID, "V-2003"); err != nil {
		t.Fatalf("ClearDetailByNumber failed: %v", err)
	}
	if _, err := repos.Tag.GetValve(ctx, tag.TagID); err != nil {
		t.Errorf("valve row should survive clearing: %v", err)
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.00 KB"},
		{5 << 20, "5.00 MB"},
		{3 << 30, "3.00 GB"},
	}
	for _, tt := range tests {
		if got := formatFileSize(tt.size); got != tt.want {
			t.Errorf("formatFileSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}
