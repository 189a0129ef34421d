package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/alexedwards/scs/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"opina/internal/i18n"
	"opina/internal/prefs"
	"opina/models"
)

type fakeSubmitter struct {
	err   error
	calls int
	last  models.Testimonial
}

func (f *fakeSubmitter) Submit(ctx context.Context, t models.Testimonial) error {
	f.calls++
	f.last = t
	return f.err
}

var testDBCounter atomic.Int64

func newTestStore(t *testing.T) (*prefs.Store, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:handlers%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(&models.Preference{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	store, err := prefs.NewStore(db)
	if err != nil {
		t.Fatalf("failed to build preference store: %v", err)
	}
	return store, db
}

// widgetEnv drives the handlers through the session middleware while
// carrying the session cookie across requests, the way a browser would.
type widgetEnv struct {
	handler   http.Handler
	submitter *fakeSubmitter
	store     *prefs.Store
	db        *gorm.DB
	cookies   []*http.Cookie
}

func newWidgetEnv(t *testing.T) *widgetEnv {
	t.Helper()

	store, db := newTestStore(t)
	submitter := &fakeSubmitter{}

	sessionManager := scs.New()
	Configure(sessionManager, store, submitter)
	t.Cleanup(func() {
		Configure(nil, nil, nil)
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/widget/submit", SubmitTestimonial)
	mux.HandleFunc("/widget/rate", SelectStar)
	mux.HandleFunc("/widget/cancel", CancelTestimonial)
	mux.HandleFunc("/preferences/theme", ToggleTheme)
	mux.HandleFunc("/preferences/language", ToggleLanguage)
	mux.HandleFunc("/", Widget)

	return &widgetEnv{
		handler:   sessionManager.LoadAndSave(mux),
		submitter: submitter,
		store:     store,
		db:        db,
	}
}

func (e *widgetEnv) do(t *testing.T, method, target string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	for _, cookie := range e.cookies {
		req.AddCookie(cookie)
	}

	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)

	if cookies := rr.Result().Cookies(); len(cookies) > 0 {
		e.cookies = cookies
	}
	return rr
}

func validForm() url.Values {
	form := url.Values{}
	form.Set("name", "Jo")
	form.Set("opinion", "Great service, loved it!")
	form.Set("rating", "5")
	return form
}

func TestWidgetRendersLocalizedForm(t *testing.T) {
	env := newWidgetEnv(t)

	rr := env.do(t, http.MethodGet, "/", nil, false)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	body := rr.Body.String()
	dict := i18n.Lookup(i18n.Spanish)
	for _, want := range []string{dict.Title, dict.NameLabel, dict.SubmitLabel} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in widget page", want)
		}
	}
}

func TestSubmitRejectsNonPost(t *testing.T) {
	env := newWidgetEnv(t)

	rr := env.do(t, http.MethodGet, "/widget/submit", nil, false)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rr.Code)
	}
	if env.submitter.calls != 0 {
		t.Fatal("expected no submission")
	}
}

func TestSubmitBlocksShortName(t *testing.T) {
	env := newWidgetEnv(t)

	form := validForm()
	form.Set("name", "J")
	rr := env.do(t, http.MethodPost, "/widget/submit", form, true)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if env.submitter.calls != 0 {
		t.Fatalf("expected no network call, got %d", env.submitter.calls)
	}

	body := rr.Body.String()
	dict := i18n.Lookup(i18n.Spanish)
	if !strings.Contains(body, dict.NameTooShort) {
		t.Fatal("expected inline name validation message")
	}
	if strings.Contains(body, "alertdialog") {
		t.Fatal("expected no dialog on validation failure")
	}
	// Typed values survive the failed attempt.
	if !strings.Contains(body, `value="J"`) {
		t.Fatal("expected typed name to be retained")
	}
}

func TestSubmitBlocksShortOpinion(t *testing.T) {
	env := newWidgetEnv(t)

	form := validForm()
	form.Set("opinion", "too short")
	rr := env.do(t, http.MethodPost, "/widget/submit", form, true)

	if env.submitter.calls != 0 {
		t.Fatal("expected no network call")
	}
	if !strings.Contains(rr.Body.String(), i18n.Lookup(i18n.Spanish).OpinionOutOfRange) {
		t.Fatal("expected inline opinion validation message")
	}
}

func TestSubmitBlocksMissingRating(t *testing.T) {
	env := newWidgetEnv(t)

	form := validForm()
	form.Set("rating", "0")
	rr := env.do(t, http.MethodPost, "/widget/submit", form, true)

	if env.submitter.calls != 0 {
		t.Fatal("expected no network call")
	}
	if !strings.Contains(rr.Body.String(), i18n.Lookup(i18n.Spanish).RatingOutOfRange) {
		t.Fatal("expected inline rating validation message")
	}
}

func TestSubmitSuccessClearsDraftAndShowsDialogOnce(t *testing.T) {
	env := newWidgetEnv(t)
	dict := i18n.Lookup(i18n.Spanish)

	rr := env.do(t, http.MethodPost, "/widget/submit", validForm(), true)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if env.submitter.calls != 1 {
		t.Fatalf("expected exactly one submission, got %d", env.submitter.calls)
	}

	want := models.Testimonial{Name: "Jo", Opinion: "Great service, loved it!", Rating: 5}
	if env.submitter.last != want {
		t.Fatalf("forwarded draft = %+v, want %+v", env.submitter.last, want)
	}

	body := rr.Body.String()
	if !strings.Contains(body, dict.SuccessTitle) {
		t.Fatal("expected success dialog")
	}
	if !strings.Contains(body, "widget-exit") {
		t.Fatal("expected exit transition on success")
	}
	if strings.Contains(body, `value="Jo"`) {
		t.Fatal("expected draft to be cleared after success")
	}

	// The dialog is a one-shot flash; the next render must not repeat it.
	next := env.do(t, http.MethodGet, "/", nil, false)
	if strings.Contains(next.Body.String(), "alertdialog") {
		t.Fatal("expected dialog to be shown exactly once")
	}
}

func TestSubmitFailureKeepsDraftAndRecovers(t *testing.T) {
	env := newWidgetEnv(t)
	env.submitter.err = errors.New("status 500")
	dict := i18n.Lookup(i18n.Spanish)

	rr := env.do(t, http.MethodPost, "/widget/submit", validForm(), true)
	if env.submitter.calls != 1 {
		t.Fatalf("expected one attempt, got %d", env.submitter.calls)
	}

	body := rr.Body.String()
	if !strings.Contains(body, dict.ErrorTitle) {
		t.Fatal("expected error dialog")
	}
	if !strings.Contains(body, `value="Jo"`) {
		t.Fatal("expected draft to be retained after failure")
	}

	// Draft survives in the session for the next page load.
	next := env.do(t, http.MethodGet, "/", nil, false)
	if !strings.Contains(next.Body.String(), `value="Jo"`) {
		t.Fatal("expected retained draft on subsequent render")
	}
	if strings.Contains(next.Body.String(), "alertdialog") {
		t.Fatal("expected error dialog to be shown exactly once")
	}

	// The busy guard was released: a retry goes through.
	env.submitter.err = nil
	retry := env.do(t, http.MethodPost, "/widget/submit", validForm(), true)
	if env.submitter.calls != 2 {
		t.Fatalf("expected retry to submit, got %d calls", env.submitter.calls)
	}
	if !strings.Contains(retry.Body.String(), dict.SuccessTitle) {
		t.Fatal("expected success dialog on retry")
	}
}

func TestSelectStarSetsExactRating(t *testing.T) {
	env := newWidgetEnv(t)

	for star := 1; star <= 5; star++ {
		form := url.Values{}
		form.Set("name", "Jo")
		form.Set("opinion", "partial text")
		form.Set("star", fmt.Sprintf("%d", star))
		rr := env.do(t, http.MethodPost, "/widget/rate", form, true)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rr.Code)
		}
		body := rr.Body.String()
		if !strings.Contains(body, fmt.Sprintf(`name="rating" value="%d"`, star)) {
			t.Fatalf("expected rating %d to be selected", star)
		}
		if got := strings.Count(body, "★"); got != star {
			t.Fatalf("expected %d filled stars, got %d", star, got)
		}
	}

	if env.submitter.calls != 0 {
		t.Fatal("expected star selection to issue no network call")
	}
}

func TestSelectStarRedirectsWithoutHTMX(t *testing.T) {
	env := newWidgetEnv(t)

	form := url.Values{}
	form.Set("star", "3")
	rr := env.do(t, http.MethodPost, "/widget/rate", form, false)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rr.Code)
	}

	next := env.do(t, http.MethodGet, "/", nil, false)
	if !strings.Contains(next.Body.String(), `name="rating" value="3"`) {
		t.Fatal("expected rating to persist in the session draft")
	}
}

func TestCancelClearsDraftWithoutSubmitting(t *testing.T) {
	env := newWidgetEnv(t)

	// Seed a draft through a star selection.
	form := validForm()
	form.Set("star", "4")
	env.do(t, http.MethodPost, "/widget/rate", form, true)

	rr := env.do(t, http.MethodPost, "/widget/cancel", nil, true)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "widget-exit") {
		t.Fatal("expected exit transition on cancel")
	}
	if strings.Contains(body, `value="Jo"`) {
		t.Fatal("expected draft to be cleared on cancel")
	}
	if env.submitter.calls != 0 {
		t.Fatal("expected no network call on cancel")
	}

	next := env.do(t, http.MethodGet, "/", nil, false)
	if strings.Contains(next.Body.String(), `value="Jo"`) {
		t.Fatal("expected cleared draft on subsequent render")
	}
}
