package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cine-estrella/box-office/internal/model"
	"github.com/cine-estrella/box-office/internal/utils"
)

const testSecret = "middleware-test-secret"

// invoke runs the middleware chain against a recording handler that notes
// whether it was reached and what identity the context carried.
func invoke(t *testing.T, mw []echo.MiddlewareFunc, header string) (*httptest.ResponseRecorder, bool, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	h := func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	}
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	require.NoError(t, h(c))
	return rec, reached, c
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	tok, err := utils.NewAccessToken(testSecret, 7, role, 15)
	require.NoError(t, err)
	return "Bearer " + tok.Token
}

func TestJWTAuth_ValidToken(t *testing.T) {
	mw := []echo.MiddlewareFunc{JWTAuth(testSecret)}
	rec, reached, c := invoke(t, mw, bearer(t, model.RoleCustomer))

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.RoleCustomer, c.Get("role"))
	assert.Equal(t, float64(7), c.Get("user_id"), "numeric claims decode as float64")
}

func TestJWTAuth_Rejections(t *testing.T) {
	mw := []echo.MiddlewareFunc{JWTAuth(testSecret)}

	foreign, err := utils.NewAccessToken("other-secret", 7, model.RoleCustomer, 15)
	require.NoError(t, err)
	expired, err := utils.NewAccessToken(testSecret, 7, model.RoleCustomer, -1)
	require.NoError(t, err)

	cases := map[string]string{
		"no header":     "",
		"not bearer":    "Basic abc123",
		"garbage token": "Bearer not.a.jwt",
		"wrong secret":  "Bearer " + foreign.Token,
		"expired":       "Bearer " + expired.Token,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			rec, reached, _ := invoke(t, mw, header)
			assert.False(t, reached)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	adminOnly := []echo.MiddlewareFunc{JWTAuth(testSecret), RequireRole(model.RoleAdmin)}

	rec, reached, _ := invoke(t, adminOnly, bearer(t, model.RoleAdmin))
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, reached, _ = invoke(t, adminOnly, bearer(t, model.RoleCustomer))
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// without JWTAuth there is no role in the context at all
	rec, reached, _ = invoke(t, []echo.MiddlewareFunc{RequireRole(model.RoleAdmin)}, "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
