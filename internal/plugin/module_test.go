package plugin

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Loader, *Discovery) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	l, _ := newTestLoader(t)
	d := newTestDiscovery(t)
	loadRoutes(engine, l, d)
	return engine, l, d
}

func TestListPluginsRoute(t *testing.T) {
	engine, _, d := newTestRouter(t)
	writeManifest(t, d, &Manifest{Id: "GoodPlugin", Name: "Good Plugin", Author: "tester", Version: "1.0.0"})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/plugins", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `"HeightMap"`)
	assert.Contains(t, body, `"GCodeViewer"`)
	assert.Contains(t, body, `"GoodPlugin"`)
}

func TestLoadPluginsRoute(t *testing.T) {
	engine, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plugins/load", strings.NewReader(`{"id":["HeightMap","Unknown"]}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `"loaded":true`)
	assert.Contains(t, body, "plugins/HeightMap/index.js")
	assert.Contains(t, body, `"loaded":false`)
}

func TestLoadPluginsRouteBadRequest(t *testing.T) {
	engine, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plugins/load", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
