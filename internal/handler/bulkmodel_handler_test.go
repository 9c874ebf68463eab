package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Navii02/pods-pidBackend/internal/config"
	"github.com/Navii02/pods-pidBackend/internal/model"
	"github.com/Navii02/pods-pidBackend/internal/repository"
	svcbulk "github.com/Navii02/pods-pidBackend/internal/service/bulkmodel"
	"github.com/Navii02/pods-pidBackend/internal/service/converter"
	"github.com/Navii02/pods-pidBackend/internal/service/storage"
)

func newBulkHandler(t *testing.T) (*BulkModelHandler, *storage.Layout) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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
	svc := svcbulk.NewService(repos, layout, invoker)
	return NewBulkModelHandler(svc, layout), layout
}

func postJSON(t *testing.T, handle gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.POST(path, handle)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSaveBulkImportArrayBody(t *testing.T) {
	h, layout := newBulkHandler(t)
	projectID := "PRJ001"

	dir := layout.ModelsDir(projectID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pump01.glb"), []byte("glb"), 0o644); err != nil {
		t.Fatal(err)
	}

	// 请求体是顶层数组，每条自带 projectId
	w := postJSON(t, h.SaveBulkImport, "/save-bulkimport", `[{"projectId":"PRJ001","name":"pump01.glb"}]`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool                 `json:"success"`
		Data    []svcbulk.SaveResult `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || len(resp.Data) != 1 || resp.Data[0].Status != "saved" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestAssignModelTagsEnvelope(t *testing.T) {
	h, layout := newBulkHandler(t)
	projectID := "PRJ002"

	seed := func(name string) {
		dir := layout.ModelsDir(projectID)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte("glb"), 0o644); err != nil {
			t.Fatal(err)
		}
		w := postJSON(t, h.SaveBulkImport, "/save-bulkimport",
			`[{"projectId":"`+projectID+`","name":"`+name+`"}]`)
		if w.Code != http.StatusCreated {
			t.Fatalf("fixture save failed: %s", w.Body.String())
		}
	}
	seed("pump01.glb")

	// 请求体是顶层数组，每条自带 projectId
	w := postJSON(t, h.AssignModelTags, "/assign-model-tags",
		`[{"projectId":"`+projectID+`","tagId":"TAG-abc123","tagName":"P-101","tagType":"Valve","fileName":"pump01.glb"}]`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			RolledBack bool                   `json:"rolledBack"`
			Counts     map[string]int         `json:"counts"`
			Results    []svcbulk.AssignResult `json:"results"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data.RolledBack {
		t.Error("rolledBack should be false on full success")
	}
	if resp.Data.Counts["created"] != 1 || resp.Data.Counts["failed"] != 0 {
		t.Errorf("counts = %v", resp.Data.Counts)
	}

	// 有失败条目：整批回滚返回 207，成功过的条目保留自己的结果
	seed("pump02.glb")
	w = postJSON(t, h.AssignModelTags, "/assign-model-tags",
		`[{"projectId":"`+projectID+`","tagId":"TAG-def456","tagName":"P-102","tagType":"Valve","fileName":"pump02.glb"},`+
			`{"projectId":"`+projectID+`","tagId":"TAG-ghi789","tagName":"P-103","tagType":"","fileName":"ghost.glb"}]`)
	if w.Code != http.StatusMultiStatus {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Data.RolledBack {
		t.Error("rolledBack should be true")
	}
	if len(resp.Data.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(resp.Data.Results))
	}
	if resp.Data.Results[0].Status != "created" {
		t.Errorf("first item should keep its own result: %+v", resp.Data.Results[0])
	}
	if resp.Data.Results[1].Status != "failed" {
		t.Errorf("second item should report failed: %+v", resp.Data.Results[1])
	}
	if resp.Data.Counts["created"] != 1 || resp.Data.Counts["failed"] != 1 {
		t.Errorf("counts = %v", resp.Data.Counts)
	}
}

func TestStageBulkUploadsDuplicateNames(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, content := range []string{"first", "second"} {
		fw, err := mw.CreateFormFile("files", "pump.glb")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload-bulk-files", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req

	form, err := c.MultipartForm()
	if err != nil {
		t.Fatal(err)
	}
	uploads, err := stageBulkUploads(c, t.TempDir(), form.File["files"])
	if err != nil {
		t.Fatal(err)
	}
	if len(uploads) != 2 {
		t.Fatalf("got %d uploads, want 2", len(uploads))
	}

	// 同名文件各占一个子目录，内容互不覆盖
	if uploads[0].Path == uploads[1].Path {
		t.Fatalf("staged paths collide: %s", uploads[0].Path)
	}
	for i, want := range []string{"first", "second"} {
		data, err := os.ReadFile(uploads[i].Path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != want {
			t.Errorf("upload %d content = %q, want %q", i, data, want)
		}
	}
}
