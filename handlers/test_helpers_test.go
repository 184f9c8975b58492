package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteforms/services"
	"quoteforms/testhelpers"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newTestEngines loads the pricing engines against a seeded test app.
func newTestEngines(t *testing.T, app *pocketbase.PocketBase) map[string]*services.Engine {
	t.Helper()

	engines, err := services.LoadEngines(app)
	if err != nil {
		t.Fatalf("failed to load pricing engines: %v", err)
	}
	return engines
}

// newSeededEngines bootstraps a test app and its engines in one call for
// handlers that never touch the app directly.
func newSeededEngines(t *testing.T) (*pocketbase.PocketBase, map[string]*services.Engine) {
	t.Helper()

	app := testhelpers.NewTestApp(t)
	return app, newTestEngines(t, app)
}
