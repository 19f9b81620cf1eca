package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"

	"polymesh/internal/adapter/http/middleware"
	"polymesh/internal/domain/entities"
	"polymesh/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

type stubParser map[string]*auth.Claims

func (s stubParser) Parse(token string) (*auth.Claims, error) {
	if c, ok := s[token]; ok {
		return c, nil
	}
	return nil, errors.New("bad token")
}

var tokens = stubParser{
	"user-1": {UserID: "user-1", Role: entities.RoleCustomer},
	"user-2": {UserID: "user-2", Role: entities.RoleCustomer},
	"admin":  {UserID: "admin-1", Role: entities.RoleAdmin},
}

func authed() gin.HandlerFunc { return middleware.Auth(tokens) }

func do(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
