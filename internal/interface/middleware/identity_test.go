package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uptask/uptask-server/pkg/helpers"
)

func identityProbe(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ResolveIdentity(jwt))
	r.GET("/whoami", func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok, "user_id": id.UserID, "email": id.Email})
	})
	return r
}

func whoami(t *testing.T, r *gin.Engine, authHeader string) map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("probe status = %d, want 200", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal probe body: %v", err)
	}
	return body
}

func TestResolveIdentity_NoHeaderIsAnonymous(t *testing.T) {
	r := identityProbe(helpers.NewJWTManager("secret", time.Hour))

	body := whoami(t, r, "")
	if body["authenticated"] != false {
		t.Fatalf("expected anonymous, got %v", body)
	}
}

func TestResolveIdentity_BadTokenIsAnonymous(t *testing.T) {
	r := identityProbe(helpers.NewJWTManager("secret", time.Hour))

	// a bad token is treated identically to no token at all
	body := whoami(t, r, "Bearer garbage")
	if body["authenticated"] != false {
		t.Fatalf("expected anonymous for bad token, got %v", body)
	}
}

func TestResolveIdentity_ExpiredTokenIsAnonymous(t *testing.T) {
	expired := helpers.NewJWTManager("secret", -time.Minute)
	tok, _, err := expired.Issue("u1", "a@x.com", "A")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	r := identityProbe(helpers.NewJWTManager("secret", time.Hour))
	body := whoami(t, r, "Bearer "+tok)
	if body["authenticated"] != false {
		t.Fatalf("expected anonymous for expired token, got %v", body)
	}
}

func TestResolveIdentity_ValidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	tok, _, err := jwt.Issue("u1", "a@x.com", "A")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	r := identityProbe(jwt)
	body := whoami(t, r, "Bearer "+tok)
	if body["authenticated"] != true || body["user_id"] != "u1" || body["email"] != "a@x.com" {
		t.Fatalf("unexpected identity: %v", body)
	}
}
