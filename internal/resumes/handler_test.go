package resumes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"resume-builder-backend/internal/bootstrap"
	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/config"
)

var datePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}, \d{2}:\d{2}$`)

func newTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := bootstrap.Build(config.Config{
		Env:        "dev",
		BcryptCost: bcrypt.MinCost,
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func doJSON(t *testing.T, app *bootstrap.App, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	return resp
}

func ownerCookie(id string) *http.Cookie {
	return &http.Cookie{Name: "userId", Value: id}
}

func resumeCookie(id string) *http.Cookie {
	return &http.Cookie{Name: "resumeId", Value: id}
}

func createResume(t *testing.T, app *bootstrap.App, ownerID string) string {
	t.Helper()
	resp := doJSON(t, app, "/editor/", "", ownerCookie(ownerID))
	if resp.Code != http.StatusCreated {
		t.Fatalf("editor: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == "resumeId" && cookie.Value != "" {
			return cookie.Value
		}
	}
	t.Fatalf("editor did not set resumeId cookie")
	return ""
}

func listResumes(t *testing.T, app *bootstrap.App, ownerID string) []resumes.Resume {
	t.Helper()
	resp := doJSON(t, app, "/dashboard/", "", ownerCookie(ownerID))
	if resp.Code != http.StatusCreated {
		t.Fatalf("dashboard: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var list []resumes.Resume
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode dashboard response: %v", err)
	}
	return list
}

func TestEditorCreatesResumeWithDefaults(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "/editor/", "", ownerCookie("owner-1"))
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	var message string
	if err := json.NewDecoder(resp.Body).Decode(&message); err != nil {
		t.Fatalf("decode editor response: %v", err)
	}
	if message != "Резюме создано" {
		t.Fatalf("editor message: got %q", message)
	}

	list := listResumes(t, app, "owner-1")
	if len(list) != 1 {
		t.Fatalf("expected 1 resume, got %d", len(list))
	}
	got := list[0]
	if got.Base.Title != "Название резюме" {
		t.Fatalf("default title: got %q", got.Base.Title)
	}
	if got.Data.Jobs == nil || len(got.Data.Jobs) != 0 {
		t.Fatalf("default jobs should be empty sequence: %#v", got.Data.Jobs)
	}
	if !datePattern.MatchString(got.Base.Date) {
		t.Fatalf("date %q does not match DD-MM-YYYY, HH:MM", got.Base.Date)
	}
}

func TestDashboardIsScopedToClaimedOwner(t *testing.T) {
	app := newTestApp(t)
	createResume(t, app, "owner-1")

	list := listResumes(t, app, "owner-2")
	if len(list) != 0 {
		t.Fatalf("owner-2 should see no resumes, got %d", len(list))
	}
}

func TestSaveRoundTrip(t *testing.T) {
	app := newTestApp(t)
	resumeID := createResume(t, app, "owner-1")

	body := `{"params":{"resumeBase":{"title":"Backend developer","template":"base","date":"stale","additionalSections":{"courses":true,"recommendations":false,"languages":false,"hobbies":false}},"resumeData":{"name":"Ivan","surname":"Petrov","jobs":[{"position":"engineer","place":"acme"}],"education":[],"links":[],"skills":[],"courses":[],"recommendations":[],"languages":[]}}}`
	resp := doJSON(t, app, "/save/", body, ownerCookie("owner-1"), resumeCookie(resumeID))
	if resp.Code != http.StatusCreated {
		t.Fatalf("save: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var message string
	if err := json.NewDecoder(resp.Body).Decode(&message); err != nil {
		t.Fatalf("decode save response: %v", err)
	}
	if message != "Резюме сохранено" {
		t.Fatalf("save message: got %q", message)
	}

	list := listResumes(t, app, "owner-1")
	got := list[0]
	if got.Base.Title != "Backend developer" {
		t.Fatalf("title not saved: %q", got.Base.Title)
	}
	if !got.Base.AdditionalSections.Courses {
		t.Fatalf("additionalSections not saved")
	}
	if got.Data.Name != "Ivan" || len(got.Data.Jobs) != 1 {
		t.Fatalf("data not saved: %#v", got.Data)
	}
	if !datePattern.MatchString(got.Base.Date) {
		t.Fatalf("date %q does not match DD-MM-YYYY, HH:MM", got.Base.Date)
	}
	if got.Base.Date == "stale" {
		t.Fatalf("client-supplied date was not restamped")
	}
}

func TestSaveWithForeignOwnerReportsSuccessButChangesNothing(t *testing.T) {
	app := newTestApp(t)
	resumeID := createResume(t, app, "owner-1")

	body := `{"params":{"resumeBase":{"title":"hijacked"},"resumeData":{}}}`
	resp := doJSON(t, app, "/save/", body, ownerCookie("attacker"), resumeCookie(resumeID))
	if resp.Code != http.StatusCreated {
		t.Fatalf("save miss should still report success, got %d", resp.Code)
	}

	list := listResumes(t, app, "owner-1")
	if list[0].Base.Title != "Название резюме" {
		t.Fatalf("resume modified by non-owner: %q", list[0].Base.Title)
	}
}

func TestDeleteRemovesResumeAndIsIdempotent(t *testing.T) {
	app := newTestApp(t)
	resumeID := createResume(t, app, "owner-1")

	body := `{"params":{"userId":"owner-1","resumeId":"` + resumeID + `"}}`
	resp := doJSON(t, app, "/delete/", body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("delete: expected 201, got %d", resp.Code)
	}
	var message string
	if err := json.NewDecoder(resp.Body).Decode(&message); err != nil {
		t.Fatalf("decode delete response: %v", err)
	}
	if message != "Резюме удалено" {
		t.Fatalf("delete message: got %q", message)
	}

	if list := listResumes(t, app, "owner-1"); len(list) != 0 {
		t.Fatalf("resume still listed after delete")
	}

	resp = doJSON(t, app, "/delete/", body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("repeat delete should succeed, got %d", resp.Code)
	}
}
