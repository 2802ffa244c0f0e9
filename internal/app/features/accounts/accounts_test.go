package accounts

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

// ensureLoginIndex creates the unique login index that duplicate detection
// relies on. In production this comes from schema setup at boot.
func ensureLoginIndex(t *testing.T, fx *testutil.Fixtures) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	_, err := fx.DB().Collection("accounts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "login_id_ci", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		t.Fatalf("create login index: %v", err)
	}
}

func TestHandleCreate(t *testing.T) {
	h, fx := newTestHandler(t)
	ensureLoginIndex(t, fx)

	t.Run("success", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := testutil.NewJSONRequest(t, "POST", "/api/accounts", map[string]any{
			"loginId":  "STU2026042",
			"name":     "  New Student ",
			"password": "long-enough",
			"role":     "student",
		})
		h.HandleCreate(rec, req)

		if rec.Code != 201 {
			t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
		}
		var acct models.Account
		testutil.DecodeData(t, rec, &acct)
		if acct.LoginID != "stu2026042" {
			t.Errorf("loginId = %q, want lowercased", acct.LoginID)
		}
		if acct.FullName != "New Student" {
			t.Errorf("name = %q, want trimmed", acct.FullName)
		}
		if acct.Role != models.RoleStudent {
			t.Errorf("role = %q, want %q", acct.Role, models.RoleStudent)
		}
		if acct.Status != models.AccountActive {
			t.Errorf("status = %q, want %q", acct.Status, models.AccountActive)
		}
		if acct.AccountID == 0 {
			t.Error("expected an allocated numeric id")
		}
	})

	t.Run("duplicate login id", func(t *testing.T) {
		body := map[string]any{
			"loginId":  "dup001",
			"name":     "First",
			"password": "long-enough",
			"role":     "STUDENT",
		}
		rec := httptest.NewRecorder()
		h.HandleCreate(rec, testutil.NewJSONRequest(t, "POST", "/api/accounts", body))
		if rec.Code != 201 {
			t.Fatalf("first create: status = %d, want 201", rec.Code)
		}

		// Same login id with different case must still collide.
		body["loginId"] = "DUP001"
		rec = httptest.NewRecorder()
		h.HandleCreate(rec, testutil.NewJSONRequest(t, "POST", "/api/accounts", body))
		if rec.Code != 409 {
			t.Fatalf("second create: status = %d, want 409", rec.Code)
		}
	})

	t.Run("short password", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleCreate(rec, testutil.NewJSONRequest(t, "POST", "/api/accounts", map[string]any{
			"loginId":  "short1",
			"name":     "Short",
			"password": "tiny",
			"role":     "STUDENT",
		}))
		if rec.Code != 400 {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleCreate(rec, testutil.NewJSONRequest(t, "POST", "/api/accounts", map[string]any{
			"loginId":  "badrole1",
			"name":     "Bad Role",
			"password": "long-enough",
			"role":     "WIZARD",
		}))
		if rec.Code != 400 {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestHandleList(t *testing.T) {
	h, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateAccount(ctx, "listA1", "Kim Minji", models.RoleStudent)
	fx.CreateAccount(ctx, "listA2", "Kim Sejun", models.RoleStudent)
	fx.CreateAccount(ctx, "listB1", "Park Jisoo", models.RoleStaff)

	decodeList := func(t *testing.T, rec *httptest.ResponseRecorder) ([]models.Account, int64) {
		t.Helper()
		var envelope struct {
			Data []models.Account `json:"data"`
			Meta struct {
				TotalElements int64 `json:"totalElements"`
				TotalPages    int   `json:"totalPages"`
			} `json:"meta"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("decode list: %v (body %q)", err, rec.Body.String())
		}
		return envelope.Data, envelope.Meta.TotalElements
	}

	t.Run("all", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleList(rec, testutil.NewRequest("GET", "/api/accounts"))
		if rec.Code != 200 {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		rows, total := decodeList(t, rec)
		if total != 3 || len(rows) != 3 {
			t.Fatalf("got %d rows, total %d, want 3/3", len(rows), total)
		}
		// Newest accounts first.
		if rows[0].AccountID < rows[1].AccountID {
			t.Error("expected id-descending sort")
		}
	})

	t.Run("keyword prefix", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleList(rec, testutil.NewRequest("GET", "/api/accounts?keyword=kim"))
		if rec.Code != 200 {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		rows, total := decodeList(t, rec)
		if total != 2 || len(rows) != 2 {
			t.Fatalf("got %d rows, total %d, want 2/2", len(rows), total)
		}
	})

	t.Run("role filter", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleList(rec, testutil.NewRequest("GET", "/api/accounts?role=staff"))
		rows, _ := decodeList(t, rec)
		if len(rows) != 1 || rows[0].Role != models.RoleStaff {
			t.Fatalf("rows = %+v, want one staff account", rows)
		}
	})

	t.Run("paging", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleList(rec, testutil.NewRequest("GET", "/api/accounts?page=2&size=2"))
		rows, total := decodeList(t, rec)
		if total != 3 || len(rows) != 1 {
			t.Fatalf("got %d rows, total %d, want 1 row on page 2 of 3", len(rows), total)
		}
	})
}

func TestHandleStatus(t *testing.T) {
	h, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	acct := fx.CreateAccount(ctx, "toggle1", "Toggle Target", models.RoleStudent)

	t.Run("suspend", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := testutil.NewJSONRequest(t, "PATCH", "/api/accounts/1/status", map[string]string{"status": "suspended"})
		req = testutil.WithChiURLParam(req, "id", strconv.FormatInt(acct.AccountID, 10))
		h.HandleStatus(rec, req)

		if rec.Code != 200 {
			t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
		}
		var updated models.Account
		testutil.DecodeData(t, rec, &updated)
		if updated.Status != models.AccountSuspended {
			t.Errorf("account status = %q, want SUSPENDED", updated.Status)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := testutil.NewJSONRequest(t, "PATCH", "/api/accounts/1/status", map[string]string{"status": "DELETED"})
		req = testutil.WithChiURLParam(req, "id", strconv.FormatInt(acct.AccountID, 10))
		h.HandleStatus(rec, req)
		if rec.Code != 400 {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := testutil.NewJSONRequest(t, "PATCH", "/api/accounts/999999/status", map[string]string{"status": "ACTIVE"})
		req = testutil.WithChiURLParam(req, "id", "999999")
		h.HandleStatus(rec, req)
		if rec.Code != 404 {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}
