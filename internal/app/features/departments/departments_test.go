package departments

import (
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/testutil"
)

func newTestHandler(t *testing.T) (*Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewHandler(db, zap.NewNop()), testutil.NewFixtures(t, db)
}

func ensureNameIndex(t *testing.T, fx *testutil.Fixtures) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	_, err := fx.DB().Collection("departments").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name_ci", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		t.Fatalf("create name index: %v", err)
	}
}

func TestHandleCreateDepartment(t *testing.T) {
	h, fx := newTestHandler(t)
	ensureNameIndex(t, fx)

	t.Run("success", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleCreate(rec, testutil.NewJSONRequest(t, "POST", "/api/departments", map[string]string{
			"name": " Computer Science ",
			"code": "cse",
		}))
		if rec.Code != 201 {
			t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
		}
		var dept models.Department
		testutil.DecodeData(t, rec, &dept)
		if dept.Name != "Computer Science" {
			t.Errorf("name = %q, want trimmed", dept.Name)
		}
		if dept.Code != "CSE" {
			t.Errorf("code = %q, want uppercased", dept.Code)
		}
		if dept.Status != models.StatusActive {
			t.Errorf("status = %q, want ACTIVE", dept.Status)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleCreate(rec, testutil.NewJSONRequest(t, "POST", "/api/departments", map[string]string{
			"name": "computer science", // case-insensitive collision
			"code": "CS2",
		}))
		if rec.Code != 409 {
			t.Fatalf("status = %d, want 409; body %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("missing code", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleCreate(rec, testutil.NewJSONRequest(t, "POST", "/api/departments", map[string]string{
			"name": "No Code",
		}))
		if rec.Code != 400 {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestHandleDepartmentList(t *testing.T) {
	h, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateDepartment(ctx, "Mathematics", "MATH")
	fx.CreateDepartment(ctx, "Mechanical Engineering", "ME")
	fx.CreateDepartment(ctx, "Physics", "PHYS")

	rec := httptest.NewRecorder()
	h.HandleList(rec, testutil.NewRequest("GET", "/api/departments?keyword=me"))
	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var envelope struct {
		Data []models.Department `json:"data"`
		Meta struct {
			TotalElements int64 `json:"totalElements"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if envelope.Meta.TotalElements != 1 || len(envelope.Data) != 1 {
		t.Fatalf("got %d rows, want only the Me* prefix match", len(envelope.Data))
	}
	if envelope.Data[0].Code != "ME" {
		t.Errorf("matched %q, want Mechanical Engineering", envelope.Data[0].Name)
	}
}

func TestHandleDepartmentStatus(t *testing.T) {
	h, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	dept := fx.CreateDepartment(ctx, "History", "HIST")
	id := strconv.FormatInt(dept.DepartmentID, 10)

	rec := httptest.NewRecorder()
	req := testutil.NewJSONRequest(t, "PATCH", "/api/departments/"+id+"/status", map[string]string{"status": "inactive"})
	req = testutil.WithChiURLParam(req, "id", id)
	h.HandleStatus(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	var updated models.Department
	testutil.DecodeData(t, rec, &updated)
	if updated.Status != models.StatusInactive {
		t.Errorf("department status = %q, want INACTIVE", updated.Status)
	}
}

func TestHandleDepartmentDelete(t *testing.T) {
	h, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	dept := fx.CreateDepartment(ctx, "Doomed", "DOOM")
	id := strconv.FormatInt(dept.DepartmentID, 10)

	t.Run("blocked by majors", func(t *testing.T) {
		if _, err := fx.DB().Collection("majors").InsertOne(ctx, bson.M{
			"major_id":      int64(9001),
			"department_id": dept.DepartmentID,
			"name":          "Applied Doom",
			"name_ci":       "applied doom",
			"status":        models.StatusActive,
		}); err != nil {
			t.Fatalf("insert major: %v", err)
		}

		rec := httptest.NewRecorder()
		req := testutil.WithChiURLParam(testutil.NewRequest("DELETE", "/api/departments/"+id), "id", id)
		h.HandleDelete(rec, req)
		if rec.Code != 409 {
			t.Fatalf("status = %d, want 409 while majors exist", rec.Code)
		}
	})

	t.Run("deletes once empty", func(t *testing.T) {
		if _, err := fx.DB().Collection("majors").DeleteMany(ctx, bson.M{"department_id": dept.DepartmentID}); err != nil {
			t.Fatalf("clear majors: %v", err)
		}

		rec := httptest.NewRecorder()
		req := testutil.WithChiURLParam(testutil.NewRequest("DELETE", "/api/departments/"+id), "id", id)
		h.HandleDelete(rec, req)
		if rec.Code != 204 {
			t.Fatalf("status = %d, want 204", rec.Code)
		}

		rec = httptest.NewRecorder()
		req = testutil.WithChiURLParam(testutil.NewRequest("GET", "/api/departments/"+id), "id", id)
		h.HandleGet(rec, req)
		if rec.Code != 404 {
			t.Fatalf("status after delete = %d, want 404", rec.Code)
		}
	})
}
