package login

import (
	"net/http/httptest"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/ratelimit"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/testutil"
)

func newTestHandler(t *testing.T) (*Handler, *testutil.Fixtures) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	tokens, err := auth.NewTokenIssuer("test-secret-test-secret-test1234", time.Hour, "lms-test")
	if err != nil {
		t.Fatalf("new token issuer: %v", err)
	}
	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "lms_test_session", "", false, tokens, logger)
	if err != nil {
		t.Fatalf("new session manager: %v", err)
	}

	h := NewHandler(db, sm, tokens, ratelimit.NewLoginLimiter(ratelimit.Config{}), logger)
	return h, testutil.NewFixtures(t, db)
}

func setPassword(t *testing.T, fx *testutil.Fixtures, acct models.Account, password string) {
	t.Helper()

	ctx, cancel := testutil.TestContext()
	defer cancel()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	_, err = fx.DB().Collection("accounts").UpdateOne(ctx,
		bson.M{"account_id": acct.AccountID},
		bson.M{"$set": bson.M{"password_hash": hash}})
	if err != nil {
		t.Fatalf("set password: %v", err)
	}
}

func TestHandleLogin(t *testing.T) {
	h, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	acct := fx.CreateAccount(ctx, "stu2026001", "Test Student", models.RoleStudent)
	setPassword(t, fx, acct, "correct-horse")

	t.Run("success", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := testutil.NewJSONRequest(t, "POST", "/api/auth/login", map[string]string{
			"loginId":  "STU2026001", // normalized to lowercase
			"password": "correct-horse",
		})
		h.HandleLogin(rec, req)

		if rec.Code != 200 {
			t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
		}
		var resp loginResponse
		testutil.DecodeData(t, rec, &resp)
		if resp.Token == "" {
			t.Error("expected a bearer token")
		}
		if resp.User.AccountID != acct.AccountID {
			t.Errorf("user id = %d, want %d", resp.User.AccountID, acct.AccountID)
		}
		if resp.User.Role != models.RoleStudent {
			t.Errorf("role = %q, want %q", resp.User.Role, models.RoleStudent)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := testutil.NewJSONRequest(t, "POST", "/api/auth/login", map[string]string{
			"loginId":  "stu2026001",
			"password": "wrong",
		})
		h.HandleLogin(rec, req)

		if rec.Code != 401 {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("unknown login id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := testutil.NewJSONRequest(t, "POST", "/api/auth/login", map[string]string{
			"loginId":  "nobody",
			"password": "whatever",
		})
		h.HandleLogin(rec, req)

		if rec.Code != 401 {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("suspended account", func(t *testing.T) {
		suspended := fx.CreateAccount(ctx, "suspended1", "Suspended User", models.RoleStudent)
		setPassword(t, fx, suspended, "correct-horse")
		if _, err := fx.DB().Collection("accounts").UpdateOne(ctx,
			bson.M{"account_id": suspended.AccountID},
			bson.M{"$set": bson.M{"status": models.AccountSuspended}}); err != nil {
			t.Fatalf("suspend account: %v", err)
		}

		rec := httptest.NewRecorder()
		req := testutil.NewJSONRequest(t, "POST", "/api/auth/login", map[string]string{
			"loginId":  "suspended1",
			"password": "correct-horse",
		})
		h.HandleLogin(rec, req)

		if rec.Code != 403 {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := testutil.NewJSONRequest(t, "POST", "/api/auth/login", map[string]string{})
		h.HandleLogin(rec, req)

		if rec.Code != 400 {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestHandleLoginRateLimited(t *testing.T) {
	h, fx := newTestHandler(t)
	h.Limiter = ratelimit.NewLoginLimiter(ratelimit.Config{
		IPLimit: 1000, IPWindow: time.Minute,
		LoginLimit: 2, LoginWindow: time.Minute,
	})

	ctx, cancel := testutil.TestContext()
	defer cancel()

	acct := fx.CreateAccount(ctx, "limited1", "Limited User", models.RoleStudent)
	setPassword(t, fx, acct, "correct-horse")

	body := map[string]string{"loginId": "limited1", "password": "wrong"}
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.HandleLogin(rec, testutil.NewJSONRequest(t, "POST", "/api/auth/login", body))
		if rec.Code != 401 {
			t.Fatalf("attempt %d: status = %d, want 401", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	h.HandleLogin(rec, testutil.NewJSONRequest(t, "POST", "/api/auth/login", body))
	if rec.Code != 429 {
		t.Fatalf("status = %d, want 429 after limit", rec.Code)
	}
}
