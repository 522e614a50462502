package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/imposter/internal/factory"
	"github.com/mcoot/imposter/internal/services/round"
	"github.com/mcoot/imposter/internal/testutil"
	"github.com/mcoot/imposter/internal/web"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
	cookies *cookieJar
}

// newWebTestServer creates a new test server with all dependencies wired.
// The food category draws Pizza and, for three players, player 3 is the
// imposter unless the test queues other random values.
func newWebTestServer(t *testing.T, opts ...round.Option) *webTestServer {
	t.Helper()

	app := factory.NewTestApp(opts...)
	require.NoError(t, app.LoadTestWordBank())

	router := web.NewRouter(web.RouterConfig{
		Logger:  testutil.NopLogger(),
		Table:   app.Table,
		BaseURL: "http://imposter.local:8080/",
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
		cookies: newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	ts.cookies.extract(rr)

	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil)
}

// post makes a POST request with form data
func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form)
}

// followRedirect follows a redirect and returns the response
func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	ts.t.Helper()
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect")
	location := rr.Header().Get("Location")
	require.NotEmpty(ts.t, location, "Expected Location header for redirect")
	return ts.get(location)
}

// page follows a redirect and parses the page it lands on
func (ts *webTestServer) page(rr *httptest.ResponseRecorder) *goquery.Document {
	ts.t.Helper()
	rr = ts.followRedirect(rr)
	require.Equal(ts.t, http.StatusOK, rr.Code)
	return parseHTML(rr.Body)
}

// home fetches and parses the home page
func (ts *webTestServer) home() *goquery.Document {
	ts.t.Helper()
	rr := ts.get("/")
	require.Equal(ts.t, http.StatusOK, rr.Code)
	return parseHTML(rr.Body)
}

// startRound submits the setup form and expects it to succeed
func (ts *webTestServer) startRound(players, imposters, category string) string {
	ts.t.Helper()
	rr := ts.post("/start", url.Values{
		"player_count":   {players},
		"imposter_count": {imposters},
		"category":       {category},
	})
	require.Equal(ts.t, http.StatusSeeOther, rr.Code)
	require.Equal(ts.t, "/", rr.Header().Get("Location"), "Expected a clean redirect after starting")
	return ts.app.Engine.RoundID()
}

// roundAction posts one of the round forms with the given round ID
func (ts *webTestServer) roundAction(action, roundID string) *httptest.ResponseRecorder {
	return ts.post(action, url.Values{"round_id": {roundID}})
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

// addTo adds all cookies to the request
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

// extract extracts Set-Cookie headers from response
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// Assertion helpers

// assertContainsElement asserts that the document contains an element matching the selector
func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

// assertNotContainsElement asserts that the document does not contain an element matching the selector
func assertNotContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() > 0 {
		t.Errorf("Expected NOT to find element matching %q, but found %d", selector, doc.Find(selector).Length())
	}
}

// assertContainsText asserts that the element matching the selector contains the text
func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}

// assertAttr asserts the value of an attribute on the first matching element
func assertAttr(t *testing.T, doc *goquery.Document, selector, attr, want string) {
	t.Helper()
	got, ok := doc.Find(selector).First().Attr(attr)
	if !ok {
		t.Errorf("Expected element %q to have attribute %q", selector, attr)
		return
	}
	if got != want {
		t.Errorf("Expected %s of %q to be %q, got %q", attr, selector, want, got)
	}
}
