package tree

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Navii02/pods-pidBackend/internal/model"
	"github.com/Navii02/pods-pidBackend/internal/repository"
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
	return NewService(repos), repos
}

func TestAddAreaDuplicate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := &AddEntityRequest{ProjectID: "PRJ111aaa", Code: "A10", Name: "process area"}
	area, err := svc.AddArea(ctx, req)
	if err != nil {
		t.Fatalf("AddArea failed: %v", err)
	}
	if area.AreaID == "" || area.AreaID[:2] != "A-" {
		t.Errorf("areaId = %q, want A- prefix", area.AreaID)
	}

	if _, err := svc.AddArea(ctx, req); !errors.Is(err, ErrDuplicateCode) {
		t.Fatalf("expected ErrDuplicateCode, got %v", err)
	}
}

func TestUpdateAreaSyncsNodes(t *testing.T) {
	svc, repos := newTestService(t)
	ctx := context.Background()
	projectID := "PRJ111aaa"

	area, err := svc.AddArea(ctx, &AddEntityRequest{ProjectID: projectID, Code: "A10", Name: "area"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddNode(ctx, &AddNodeRequest{ProjectID: projectID, Area: &area.Area}); err != nil {
		t.Fatal(err)
	}

	newCode := "A20"
	if _, err := svc.UpdateArea(ctx, area.AreaID, &UpdateEntityRequest{Code: &newCode}); err != nil {
		t.Fatalf("UpdateArea failed: %v", err)
	}

	nodes, err := repos.Tree.ListNodesByProject(ctx, projectID)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 1 || nodes[0].Area == nil || *nodes[0].Area != newCode {
		t.Errorf("tree node not synced: %+v", nodes)
	}
}

func TestAddNodeDeduplicates(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	area, disc := "A10", "D20"
	req := &AddNodeRequest{ProjectID: "PRJ111aaa", Area: &area, Disc: &disc}
	if _, err := svc.AddNode(ctx, req); err != nil {
		t.Fatalf("AddNode failed: %v", err)
	}
	if _, err := svc.AddNode(ctx, req); !errors.Is(err, ErrDuplicateNode) {
		t.Fatalf("expected ErrDuplicateNode, got %v", err)
	}

	// 更深的路径不算重复
	sys := "S30"
	deeper := &AddNodeRequest{ProjectID: "PRJ111aaa", Area: &area, Disc: &disc, Sys: &sys}
	if _, err := svc.AddNode(ctx, deeper); err != nil {
		t.Fatalf("deeper node should not collide: %v", err)
	}
}

func TestDeleteBranch(t *testing.T) {
	svc, repos := newTestService(t)
	ctx := context.Background()
	projectID := "PRJ111aaa"

	area, disc1, disc2 := "A10", "D20", "D21"
	mustAdd := func(req *AddNodeRequest) {
		t.Helper()
		if _, err := svc.AddNode(ctx, req); err != nil {
			t.Fatal(err)
		}
	}
	mustAdd(&AddNodeRequest{ProjectID: projectID, Area: &area})
	mustAdd(&AddNodeRequest{ProjectID: projectID, Area: &area, Disc: &disc1})
	mustAdd(&AddNodeRequest{ProjectID: projectID, Area: &area, Disc: &disc2})

	// 只删 A10/D20 分支
	if err := svc.DeleteBranch(ctx, projectID, "A10__D20"); err != nil {
		t.Fatalf("DeleteBranch failed: %v", err)
	}

	nodes, err := repos.Tree.ListNodesByProject(ctx, projectID)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	for _, n := range nodes {
		if n.Disc != nil && *n.Disc == disc1 {
			t.Errorf("D20 branch should be gone: %+v", n)
		}
	}
}

func TestDeleteBranchInvalidCode(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.DeleteBranch(context.Background(), "PRJ111aaa", "a__b__c__d"); err == nil {
		t.Fatal("expected invalid code error")
	}
}
