package controllers

import (
	"bistro-boss/middleware"
	"bistro-boss/utils"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

type request struct {
	method string
	target string
	body   string
	vars   map[string]string
	email  string // authenticated identity; empty means none
}

func do(h http.HandlerFunc, req request) *httptest.ResponseRecorder {
	r := httptest.NewRequest(req.method, req.target, strings.NewReader(req.body))
	if req.vars != nil {
		r = mux.SetURLVars(r, req.vars)
	}
	if req.email != "" {
		ctx := context.WithValue(r.Context(), middleware.UserContextKey, &utils.Claims{Email: req.email})
		r = r.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	h(rec, r)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
