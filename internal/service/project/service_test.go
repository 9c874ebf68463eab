package project

import (
	"context"
	"strings"
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

func TestCreateProject(t *testing.T) {
	svc, repos := newTestService(t)
	ctx := context.Background()

	number := "P-100"
	project, err := svc.CreateProject(ctx, &CreateProjectRequest{
		ProjectNumber: &number,
		ProjectName:   "North Sea Platform",
	})
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	if !strings.HasPrefix(project.ProjectID, "PRJ") {
		t.Errorf("projectId = %q, want PRJ prefix", project.ProjectID)
	}
	if len(project.ProjectID) != len("PRJ")+6 {
		t.Errorf("projectId = %q, unexpected length", project.ProjectID)
	}

	// 默认批注状态 open / closed
	statuses, err := repos.Comment.ListStatusesByProject(ctx, project.ProjectID)
	if err != nil {
		t.Fatal(err)
	}
	if len(statuses) != 2 {
		t.Fatalf("got %d comment statuses, want 2", len(statuses))
	}
	byName := map[string]string{}
	for _, s := range statuses {
		byName[s.StatusName] = s.Color
	}
	if byName["open"] != "#ff0000" || byName["closed"] != "#00ff00" {
		t.Errorf("seeded statuses wrong: %v", byName)
	}

	// 50 个默认字段单位
	units, err := repos.Tag.ListFieldUnits(ctx, project.ProjectID)
	if err != nil {
		t.Fatal(err)
	}
	if len(units) != model.TagInfoFieldCount {
		t.Fatalf("got %d field units, want %d", len(units), model.TagInfoFieldCount)
	}
	if units[0].Field != "Taginfo1" || units[0].Unit != "Taginfounit1" || units[0].StatusCheck != "checked" {
		t.Errorf("first unit: %+v", units[0])
	}
}

func TestGetProjectNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.GetProject(context.Background(), "PRJnothere"); err == nil {
		t.Fatal("expected not found error")
	}
}

func TestUpdateProject(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, &CreateProjectRequest{ProjectName: "old name"})
	if err != nil {
		t.Fatal(err)
	}

	newName := "new name"
	desc := "offshore module"
	updated, err := svc.UpdateProject(ctx, project.ProjectID, &UpdateProjectRequest{
		ProjectName:        &newName,
		ProjectDescription: &desc,
	})
	if err != nil {
		t.Fatalf("UpdateProject failed: %v", err)
	}
	if updated.Name != newName {
		t.Errorf("name = %q", updated.Name)
	}
	if updated.Description == nil || *updated.Description != desc {
		t.Errorf("description = %v", updated.Description)
	}
}

func TestDeleteProject(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, &CreateProjectRequest{ProjectName: "temp"})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteProject(ctx, project.ProjectID); err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}
	if _, err := svc.GetProject(ctx, project.ProjectID); err == nil {
		t.Error("project should be gone")
	}
	// 再删一次应报 not found
	if err := svc.DeleteProject(ctx, project.ProjectID); err == nil {
		t.Error("second delete should fail")
	}
}
