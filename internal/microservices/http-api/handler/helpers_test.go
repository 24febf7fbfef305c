package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storerating/internal/logger"
	"storerating/internal/microservices/http-api/dto"
	"storerating/internal/microservices/http-api/middleware"
	"storerating/internal/microservices/http-api/models"
	"storerating/internal/microservices/http-api/policy"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	userA  = policy.Principal{UserID: 1, Email: "a@example.com", Role: models.RoleUser}
	userB  = policy.Principal{UserID: 2, Email: "b@example.com", Role: models.RoleUser}
	owner  = policy.Principal{UserID: 3, Email: "owner@example.com", Role: models.RoleStoreOwner}
	adminP = policy.Principal{UserID: 4, Email: "admin@example.com", Role: models.RoleAdmin}
	nopLog = logger.Nop()
)

func init() {
	gin.SetMode(gin.TestMode)
	dto.RegisterValidators()
}

// asPrincipal stands in for AuthMiddleware. The caller is taken from the
// X-Test-User header so a single router can serve several users.
func asPrincipal(users ...policy.Principal) gin.HandlerFunc {
	byEmail := make(map[string]policy.Principal, len(users))
	for _, u := range users {
		byEmail[u.Email] = u
	}
	return func(c *gin.Context) {
		if p, ok := byEmail[c.GetHeader("X-Test-User")]; ok {
			c.Set(middleware.PrincipalKey, p)
		}
		c.Next()
	}
}

func do(t *testing.T, r http.Handler, method, path string, as *policy.Principal, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if as != nil {
		req.Header.Set("X-Test-User", as.Email)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}
