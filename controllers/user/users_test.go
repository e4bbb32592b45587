package userControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performJSON(handler gin.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Handle(method, path, func(c *gin.Context) {
		c.Set("user_id", "u-1")
		handler(c)
	})

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Input checks run before any database work; the nil DB here would panic
// otherwise.
func TestUpdateProfileRejectsShortPassword(t *testing.T) {
	w := performJSON(UpdateProfile(nil), http.MethodPut, "/users/profile", `{"password": "short"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "at least 8 characters")
}

func TestUpdateProfileRejectsBadJSON(t *testing.T) {
	w := performJSON(UpdateProfile(nil), http.MethodPut, "/users/profile", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUserAdminRejectsBadJSON(t *testing.T) {
	w := performJSON(UpdateUserAdmin(nil), http.MethodPut, "/admin/users/u-2", `{"is_admin": "yes"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid input")
}
