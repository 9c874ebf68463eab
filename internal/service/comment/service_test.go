package comment

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Navii02/pods-pidBackend/internal/model"
	"github.com/Navii02/pods-pidBackend/internal/repository"
)

func newTestService(t *testing.T) *Service {
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
	return NewService(repository.NewRepositories(db))
}

func TestAddCommentDefaultAuthor(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	text := "check nozzle orientation"
	comment, err := svc.AddComment(ctx, &AddCommentRequest{
		ProjectID: "PRJ111aaa",
		Comment:   &text,
	})
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if comment.Number == "" || comment.Number[0] != 'C' {
		t.Errorf("number = %q, want C prefix", comment.Number)
	}
	if comment.CreatedBy == nil || *comment.CreatedBy != defaultAuthor {
		t.Errorf("createdby = %v, want default author", comment.CreatedBy)
	}
}

func TestCloseCommentSetsClosedFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	text := "missing support"
	comment, err := svc.AddComment(ctx, &AddCommentRequest{ProjectID: "PRJ111aaa", Comment: &text})
	if err != nil {
		t.Fatal(err)
	}

	status := "closed"
	closer := "reviewer@example.com"
	updated, err := svc.UpdateComment(ctx, comment.Number, &UpdateCommentRequest{
		Status:   &status,
		ClosedBy: &closer,
	})
	if err != nil {
		t.Fatalf("UpdateComment failed: %v", err)
	}
	if updated.ClosedBy == nil || *updated.ClosedBy != closer {
		t.Errorf("closedBy = %v", updated.ClosedBy)
	}
	if updated.ClosedDate == nil {
		t.Error("closedDate should be set")
	}

	// 重新打开清掉关闭信息
	reopen := "open"
	updated, err = svc.UpdateComment(ctx, comment.Number, &UpdateCommentRequest{Status: &reopen})
	if err != nil {
		t.Fatal(err)
	}
	if updated.ClosedBy != nil || updated.ClosedDate != nil {
		t.Error("reopening should clear closed fields")
	}
}

func TestDeleteAllComments(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, text := range []string{"first", "second"} {
		text := text
		if _, err := svc.AddComment(ctx, &AddCommentRequest{ProjectID: "PRJ111aaa", Comment: &text}); err != nil {
			t.Fatal(err)
		}
	}
	other := "other project"
	if _, err := svc.AddComment(ctx, &AddCommentRequest{ProjectID: "PRJ222bbb", Comment: &other}); err != nil {
		t.Fatal(err)
	}

	count, err := svc.DeleteAllComments(ctx, "PRJ111aaa")
	if err != nil {
		t.Fatalf("DeleteAllComments failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	comments, err := svc.ListComments(ctx, "PRJ111aaa")
	if err != nil {
		t.Fatal(err)
	}
	if len(comments) != 0 {
		t.Errorf("comments remain: %d", len(comments))
	}
	// 别的项目不受影响
	comments, err = svc.ListComments(ctx, "PRJ222bbb")
	if err != nil {
		t.Fatal(err)
	}
	if len(comments) != 1 {
		t.Errorf("got %d comments, want 1", len(comments))
	}
}

func TestBuiltinStatusCannotBeDeleted(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	open, err := svc.AddStatus(ctx, &AddStatusRequest{ProjectID: "PRJ111aaa", StatusName: "open", Color: "#ff0000"})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteStatus(ctx, open.Number); err == nil {
		t.Error("open status should not be deletable")
	}

	custom, err := svc.AddStatus(ctx, &AddStatusRequest{ProjectID: "PRJ111aaa", StatusName: "on hold", Color: "#ffaa00"})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteStatus(ctx, custom.Number); err != nil {
		t.Errorf("custom status should be deletable: %v", err)
	}
}
