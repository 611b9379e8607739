package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"takesell/editor"
	"takesell/services"
	"takesell/store"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newTestEditor wires an editor to a real fabric store and starts its
// subscription. The subscription is torn down when the test finishes.
func newTestEditor(t *testing.T, app *pocketbase.PocketBase) *editor.Editor {
	t.Helper()

	s := store.New(app)
	ed := editor.New(s)

	ctx, cancel := context.WithCancel(context.Background())
	if err := ed.Start(ctx); err != nil {
		t.Fatalf("editor start failed: %v", err)
	}
	t.Cleanup(func() {
		cancel()
		<-ed.Done()
	})

	waitForEditor(t, ed, func(v editor.View) bool { return v.Loaded })
	return ed
}

// waitForEditor polls the editor view until cond holds. Snapshots arrive
// through the subscription goroutine, so state changes driven by record
// hooks are not immediately visible.
func waitForEditor(t *testing.T, ed *editor.Editor, cond func(editor.View) bool) editor.View {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for {
		v := ed.View()
		if cond(v) {
			return v
		}
		if time.Now().After(deadline) {
			t.Fatalf("editor never reached expected state, last view: %+v", v)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// formRequest builds a form-encoded request the way htmx submits modals.
func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func testPrices(retail, wholesale float64) services.PriceTable {
	return services.PriceTable{
		"sofa":  {Retail: retail, Wholesale: wholesale},
		"chair": {Retail: retail / 2, Wholesale: wholesale / 2},
	}
}
