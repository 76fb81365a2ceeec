package ui

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrdash/app"
	"hrdash/domain/employee"
	"hrdash/internal"
	"hrdash/internal/testkit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newTestService() *app.DashboardService {
	opts := app.DefaultServiceOptions()
	opts.Logger = internal.NewLoggerTo(&bytes.Buffer{}, internal.LogLevelError)
	return app.NewDashboardServiceFromTable(testkit.ScenarioTable(), opts)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s, err := NewServer(newTestService())
	require.NoError(t, err)
	return s
}

// stringList decodes a JSON string array; encoders escape '&' as \u0026
func stringList(r gjson.Result) []string {
	out := []string{}
	for _, v := range r.Array() {
		out = append(out, v.String())
	}
	return out
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	h.ServeHTTP(w, req)
	return w
}

func TestServer_DashboardJSON(t *testing.T) {
	s := newTestServer(t)

	w := get(s.Handler(), "/api/dashboard?department=Sales")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Equal(t, int64(2), gjson.Get(body, "metrics.total_employees").Int())
	assert.Equal(t, "$4,500", gjson.Get(body, "metrics.mean_income_label").String())
	assert.Equal(t, "E2", gjson.Get(body, "records.0.emp_id").String())
	assert.Equal(t, int64(2), gjson.Get(body, "income_by_age.#").Int())
	assert.False(t, gjson.Get(body, "correlation").Exists())
	assert.NotEmpty(t, gjson.Get(body, "render_id").String())

	_, err := uuid.Parse(w.Header().Get(HeaderRequestID))
	assert.NoError(t, err)
}

func TestServer_DashboardJSON_CascadingReset(t *testing.T) {
	s := newTestServer(t)

	w := get(s.Handler(), "/api/dashboard?department=R%26D&job_role=Manager")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Equal(t, "R&D", gjson.Get(body, "selection.department").String())
	assert.Equal(t, "All", gjson.Get(body, "selection.job_role").String())
	assert.Equal(t, int64(1), gjson.Get(body, "metrics.total_employees").Int())
}

func TestServer_DashboardJSON_Heatmap(t *testing.T) {
	s := newTestServer(t)

	w := get(s.Handler(), "/api/dashboard?heatmap=true")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Equal(t, int64(5), gjson.Get(body, "correlation.columns.#").Int())
	assert.InDelta(t, 1.0, gjson.Get(body, "correlation.values.0.0").Float(), 1e-9)
	assert.InDelta(t, -0.9449, gjson.Get(body, "correlation.values.0.4").Float(), 1e-3)
}

func TestServer_DashboardJSON_EmptyView(t *testing.T) {
	s := newTestServer(t)

	w := get(s.Handler(), "/api/dashboard?department=Legal&heatmap=1")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Equal(t, int64(0), gjson.Get(body, "metrics.total_employees").Int())
	assert.Equal(t, "no data", gjson.Get(body, "metrics.mean_income_label").String())
	assert.Equal(t, gjson.Null, gjson.Get(body, "metrics.mean_income").Type)
	assert.Equal(t, gjson.Null, gjson.Get(body, "correlation.values.0.0").Type)
	assert.Equal(t, int64(0), gjson.Get(body, "records.#").Int())
}

func TestServer_DashboardJSON_InvalidInput(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name  string
		query string
	}{
		{"non-numeric age_min", "age_min=abc"},
		{"fractional age_max", "age_max=40.5"},
		{"bad heatmap flag", "heatmap=maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(s.Handler(), "/api/dashboard?"+tt.query)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "INVALID_INPUT", gjson.Get(w.Body.String(), "error").String())
			assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
		})
	}
}

func TestServer_Options(t *testing.T) {
	s := newTestServer(t)

	w := get(s.Handler(), "/api/options?department=Sales")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Equal(t, []string{"All", "R&D", "Sales"}, stringList(gjson.Get(body, "departments")))
	assert.Equal(t, []string{"All", "Manager", "Rep"}, stringList(gjson.Get(body, "job_roles")))
	assert.Equal(t, int64(30), gjson.Get(body, "age_bounds.min").Int())
	assert.Equal(t, int64(45), gjson.Get(body, "age_bounds.max").Int())

	w = get(s.Handler(), "/api/options")
	assert.Equal(t, []string{"All", "Manager", "Rep", "Scientist"}, stringList(gjson.Get(w.Body.String(), "job_roles")))
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	w := get(s.Handler(), "/healthz")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", gjson.Get(w.Body.String(), "status").String())
	assert.Equal(t, int64(3), gjson.Get(w.Body.String(), "employees").Int())
}

func TestServer_RequestIDPropagation(t *testing.T) {
	s := newTestServer(t)
	incoming := uuid.NewString()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(HeaderRequestID, incoming)
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(HeaderRequestID))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(HeaderRequestID, "not a uuid")
	s.Handler().ServeHTTP(w, req)
	assert.NotEqual(t, "not a uuid", w.Header().Get(HeaderRequestID))
}

func TestServer_IndexHTML(t *testing.T) {
	s := newTestServer(t)

	w := get(s.Handler(), "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	html := w.Body.String()
	assert.Contains(t, html, "HR Analytics Dashboard")
	assert.Contains(t, html, "Select Department")
	assert.Contains(t, html, "$4,666")
	assert.Contains(t, html, "Employee Records")
	assert.NotContains(t, html, "Correlation Heatmap")
}

func TestServer_IndexHTML_HeatmapAndNotice(t *testing.T) {
	s := newTestServer(t)

	w := get(s.Handler(), "/?heatmap=on&age_min=young")
	require.Equal(t, http.StatusOK, w.Code)

	html := w.Body.String()
	assert.Contains(t, html, "Correlation Heatmap of Satisfaction Levels")
	assert.Contains(t, html, "-0.94")
	assert.Contains(t, html, "age_min must be an integer")
}

func TestServer_IndexHTML_EmptyView(t *testing.T) {
	s := newTestServer(t)

	w := get(s.Handler(), "/?department=Legal")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No employees match the current filters.")
	assert.Contains(t, w.Body.String(), "no data")
}

func TestServer_MetricsCountSectionWarnings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	partial := employee.NewTable("partial", testkit.ScenarioRecords(), employee.RequiredColumns)
	opts := app.DefaultServiceOptions()
	opts.Logger = internal.NewLoggerTo(&bytes.Buffer{}, internal.LogLevelError)
	s, err := NewServer(app.NewDashboardServiceFromTable(partial, opts))
	require.NoError(t, err)

	w := get(s.Handler(), "/api/dashboard")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "One or more columns for the table are missing.",
		gjson.Get(w.Body.String(), `warnings.#(section=="records").message`).String())

	w = get(s.Handler(), "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `hrdash_dashboard_section_warnings_total{section="records"}`)
	assert.Contains(t, w.Body.String(), `hrdash_http_requests_total{result="2xx",route="/api/dashboard",surface="server"}`)
}
