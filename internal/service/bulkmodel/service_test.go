package bulkmodel

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Navii02/pods-pidBackend/internal/config"
	"github.com/Navii02/pods-pidBackend/internal/model"
	"github.com/Navii02/pods-pidBackend/internal/repository"
	"github.com/Navii02/pods-pidBackend/internal/service/converter"
	"github.com/Navii02/pods-pidBackend/internal/service/storage"
)

func newTestService(t *testing.T) (*Service, *repository.Repositories, *storage.Layout) {
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
	// 内存库按连接隔离，单连接保证事务可见性
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
	invoker := converter.NewInvoker(layout.ConvertersDir())
	return NewService(repos, layout, invoker), repos, layout
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestImportBatch(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "pump.glb"), "glb-data")
	writeFile(t, filepath.Join(tmp, "rig.fbx"), "fbx-data")

	results := svc.ImportBatch(ctx, "PRJaaa111", []UploadedFile{
		{Name: "pump.glb", Path: filepath.Join(tmp, "pump.glb")},
		{Name: "rig.fbx", Path: filepath.Join(tmp, "rig.fbx")},
	})

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	converted, failed := 0, 0
	for _, r := range results {
		switch r.Status {
		case "converted":
			converted++
		case "failed":
			failed++
		default:
			t.Errorf("unexpected status %q", r.Status)
		}
	}
	if converted+failed != len(results) {
		t.Errorf("converted %d + failed %d != %d", converted, failed, len(results))
	}
	// passthrough 成功，fbx 转换器不存在必然失败
	if converted != 1 || failed != 1 {
		t.Errorf("converted = %d, failed = %d, want 1 and 1", converted, failed)
	}
}

func TestSaveBatch(t *testing.T) {
	svc, repos, layout := newTestService(t)
	ctx := context.Background()
	projectID := "PRJbbb222"

	writeFile(t, filepath.Join(layout.ModelsDir(projectID), "pump.glb"), "glb")

	results := svc.SaveBatch(ctx, []SaveItem{
		{ProjectID: projectID, Name: "pump.glb"},
		{ProjectID: projectID, Name: "ghost.glb"},
	})
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Status != "saved" || results[0].Number == "" {
		t.Errorf("pump.glb: %+v", results[0])
	}
	if results[1].Status != "failed" {
		t.Errorf("ghost.glb should fail: %+v", results[1])
	}

	// 文件进了未分配目录，库里有记录
	if _, err := os.Stat(filepath.Join(layout.UnassignedDir(projectID), "pump.glb")); err != nil {
		t.Errorf("file not in unassigned dir: %v", err)
	}
	models, err := repos.Unassigned.ListByProject(ctx, projectID)
	if err != nil {
		t.Fatal(err)
	}
	if len(models) != 1 {
		t.Fatalf("got %d unassigned rows, want 1", len(models))
	}

	// projectId 缺失的条目单独失败，不影响其它条目
	bad := svc.SaveBatch(ctx, []SaveItem{{Name: "pump.glb"}})
	if bad[0].Status != "failed" {
		t.Errorf("item without projectId should fail: %+v", bad[0])
	}
}

func seedUnassigned(t *testing.T, svc *Service, layout *storage.Layout, projectID, fileName string) string {
	t.Helper()
	writeFile(t, filepath.Join(layout.ModelsDir(projectID), fileName), "glb")
	saved := svc.SaveBatch(context.Background(), []SaveItem{{ProjectID: projectID, Name: fileName}})
	if saved[0].Status != "saved" {
		t.Fatalf("fixture save failed: %+v", saved[0])
	}
	return saved[0].Number
}

func TestSaveChangedFiles(t *testing.T) {
	svc, repos, layout := newTestService(t)
	ctx := context.Background()
	projectID := "PRJggg777"

	results := svc.SaveChangedFiles(ctx, projectID, []ChangedFile{
		{Name: "pump.glb", Data: model.ByteArray("glb-v1")},
		{Name: "", Data: model.ByteArray("x")},
	})
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Status != "saved" {
		t.Errorf("pump.glb: %+v", results[0])
	}
	if results[1].Status != "failed" {
		t.Errorf("nameless entry should fail: %+v", results[1])
	}

	data, err := os.ReadFile(filepath.Join(layout.UnassignedDir(projectID), "pump.glb"))
	if err != nil {
		t.Fatalf("file not written: %v", err)
	}
	if string(data) != "glb-v1" {
		t.Errorf("content = %q", data)
	}

	// 再传同名文件：覆盖内容，不重复插行
	again := svc.SaveChangedFiles(ctx, projectID, []ChangedFile{
		{Name: "pump.glb", Data: model.ByteArray("glb-v2")},
	})
	if again[0].Status != "saved" {
		t.Fatalf("overwrite: %+v", again[0])
	}
	data, err = os.ReadFile(filepath.Join(layout.UnassignedDir(projectID), "pump.glb"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "glb-v2" {
		t.Errorf("content after overwrite = %q", data)
	}
	rows, err := repos.Unassigned.ListByProject(ctx, projectID)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d unassigned rows, want 1", len(rows))
	}
}

func TestAssignTagsCreate(t *testing.T) {
	svc, repos, layout := newTestService(t)
	ctx := context.Background()
	projectID := "PRJccc333"

	number := seedUnassigned(t, svc, layout, projectID, "pump01.glb")

	results, partial, err := svc.AssignTags(ctx, []AssignItem{
		{ProjectID: projectID, TagID: "TAG-abc123", TagName: "P-101", TagType: "Valve", FileName: "pump01.glb"},
	})
	if err != nil {
		t.Fatalf("AssignTags failed: %v", err)
	}
	if partial {
		t.Fatal("expected full success")
	}
	if results[0].Status != "created" {
		t.Fatalf("result: %+v", results[0])
	}

	// 新建了标签、通用信息和阀门明细行，未分配记录删除，文件移到 tags 目录
	tag, err := repos.Tag.GetByTagID(ctx, "TAG-abc123")
	if err != nil {
		t.Fatal(err)
	}
	if tag.Number != "P-101" || tag.Type != string(model.TagTypeValve) {
		t.Errorf("tag = %+v", tag)
	}
	if tag.Filename == nil || *tag.Filename != "pump01.glb" {
		t.Errorf("tag filename = %v", tag.Filename)
	}
	if _, err := repos.Tag.GetInfo(ctx, "TAG-abc123"); err != nil {
		t.Errorf("taginfo missing: %v", err)
	}
	valve, err := repos.Tag.GetValve(ctx, "TAG-abc123")
	if err != nil {
		t.Fatalf("valve detail missing: %v", err)
	}
	if valve.Tag != "P-101" {
		t.Errorf("valve tag = %q", valve.Tag)
	}
	if _, err := repos.Unassigned.GetByNumber(ctx, number); err == nil {
		t.Error("unassigned row should be gone")
	}
	if _, err := os.Stat(filepath.Join(layout.TagsDir(projectID), "pump01.glb")); err != nil {
		t.Errorf("file not in tags dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(layout.UnassignedDir(projectID), "pump01.glb")); !os.IsNotExist(err) {
		t.Error("file should be gone from unassigned dir")
	}
}

func TestAssignTagsUpdateSwapsDetail(t *testing.T) {
	svc, repos, layout := newTestService(t)
	ctx := context.Background()
	projectID := "PRJccc334"

	seedUnassigned(t, svc, layout, projectID, "pump01.glb")
	if _, _, err := svc.AssignTags(ctx, []AssignItem{
		{ProjectID: projectID, TagID: "TAG-abc123", TagName: "P-101", TagType: "Valve", FileName: "pump01.glb"},
	}); err != nil {
		t.Fatal(err)
	}

	// 同一标签号重新分配成设备类型：走更新，换明细表
	seedUnassigned(t, svc, layout, projectID, "pump02.glb")
	results, partial, err := svc.AssignTags(ctx, []AssignItem{
		{ProjectID: projectID, TagID: "TAG-abc123", TagName: "P-101", TagType: "Equipment", FileName: "pump02.glb"},
	})
	if err != nil {
		t.Fatalf("AssignTags failed: %v", err)
	}
	if partial {
		t.Fatal("expected full success")
	}
	if results[0].Status != "updated" {
		t.Fatalf("result: %+v", results[0])
	}

	tag, err := repos.Tag.GetByTagID(ctx, "TAG-abc123")
	if err != nil {
		t.Fatal(err)
	}
	if tag.Type != string(model.TagTypeEquipment) {
		t.Errorf("tag type = %q", tag.Type)
	}
	if tag.Filename == nil || *tag.Filename != "pump02.glb" {
		t.Errorf("tag filename = %v", tag.Filename)
	}
	if _, err := repos.Tag.GetValve(ctx, "TAG-abc123"); err == nil {
		t.Error("valve detail should be deleted after type change")
	}
	equip, err := repos.Tag.GetEquipment(ctx, "TAG-abc123")
	if err != nil {
		t.Fatalf("equipment detail missing: %v", err)
	}
	if equip.Tag != "P-101" {
		t.Errorf("equipment tag = %q", equip.Tag)
	}
}

func TestAssignTagsRollback(t *testing.T) {
	svc, repos, layout := newTestService(t)
	ctx := context.Background()
	projectID := "PRJddd444"

	number := seedUnassigned(t, svc, layout, projectID, "pump01.glb")

	// 第二条缺少必填字段，整批必须回滚
	results, partial, err := svc.AssignTags(ctx, []AssignItem{
		{ProjectID: projectID, TagID: "TAG-abc123", TagName: "P-101", TagType: "Valve", FileName: "pump01.glb"},
		{ProjectID: projectID, TagID: "TAG-def456", TagName: "P-102", TagType: "", FileName: "ghost.glb"},
	})
	if err != nil {
		t.Fatalf("AssignTags failed: %v", err)
	}
	if !partial {
		t.Fatal("expected partial failure")
	}
	// 回滚不改写单条结果：成功过的条目保留自己的状态
	if results[0].Status != "created" {
		t.Errorf("first item should keep its own result: %+v", results[0])
	}
	if results[1].Status != "failed" {
		t.Errorf("second item should report failed: %+v", results[1])
	}

	// 回滚后：没建任何标签，未分配记录还在，文件没动
	if _, err := repos.Tag.GetByTagID(ctx, "TAG-abc123"); err == nil {
		t.Error("tag row should not survive rollback")
	}
	if _, err := repos.Unassigned.GetByNumber(ctx, number); err != nil {
		t.Errorf("unassigned row should survive rollback: %v", err)
	}
	if _, err := os.Stat(filepath.Join(layout.UnassignedDir(projectID), "pump01.glb")); err != nil {
		t.Errorf("file should remain in unassigned dir: %v", err)
	}
}

func TestDeleteUnassigned(t *testing.T) {
	svc, _, layout := newTestService(t)
	ctx := context.Background()
	projectID := "PRJeee555"

	writeFile(t, filepath.Join(layout.ModelsDir(projectID), "pump.glb"), "glb")
	saved := svc.SaveBatch(ctx, []SaveItem{{ProjectID: projectID, Name: "pump.glb"}})
	number := saved[0].Number

	if err := svc.DeleteUnassigned(ctx, number); err != nil {
		t.Fatalf("DeleteUnassigned failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(layout.UnassignedDir(projectID), "pump.glb")); !os.IsNotExist(err) {
		t.Error("file should be deleted")
	}

	// 同一条再删一次应报 not found
	if err := svc.DeleteUnassigned(ctx, number); err == nil {
		t.Error("second delete should fail")
	}
}

func TestDeleteAllUnassigned(t *testing.T) {
	svc, repos, layout := newTestService(t)
	ctx := context.Background()
	projectID := "PRJfff666"

	writeFile(t, filepath.Join(layout.ModelsDir(projectID), "a.glb"), "glb")
	writeFile(t, filepath.Join(layout.ModelsDir(projectID), "b.glb"), "glb")
	svc.SaveBatch(ctx, []SaveItem{
		{ProjectID: projectID, Name: "a.glb"},
		{ProjectID: projectID, Name: "b.glb"},
	})

	count, err := svc.DeleteAllUnassigned(ctx, projectID)
	if err != nil {
		t.Fatalf("DeleteAllUnassigned failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	models, err := repos.Unassigned.ListByProject(ctx, projectID)
	if err != nil {
		t.Fatal(err)
	}
	if len(models) != 0 {
		t.Errorf("rows remain: %d", len(models))
	}
}
