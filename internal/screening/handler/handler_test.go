package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"precheck/internal/check"
	"precheck/internal/ingest"
	"precheck/internal/screening"
	"precheck/pkg/requestcontext"
	"precheck/pkg/testutil"
)

// newRouter wires the handler over real pipeline components; handler tests
// validate HTTP concerns, not check semantics.
func newRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc := screening.New(
		ingest.New(ingest.IgnoreUnknownSources),
		check.NewRunner(check.Default(), false),
		nil, logger, nil,
	)

	r := chi.NewRouter()
	New(svc, logger).Register(r)
	return r
}

func pinRequest(t *testing.T, req *http.Request) *http.Request {
	t.Helper()
	ctx := requestcontext.WithTime(req.Context(), testutil.MustParseTime(t, "2020-06-01T00:00:00Z"))
	return req.WithContext(ctx)
}

func TestHandleCheck(t *testing.T) {
	router := newRouter(t)

	t.Run("valid payload returns ordered results", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/applications/check", map[string]any{
			"application": map[string]any{"applied_at": "2020-01-01T00:00:00"},
			"information": map[string]any{"applicant": map[string]any{"dob": "2000-01-01"}},
		})

		rr := testutil.DoRequest(router, pinRequest(t, req))
		testutil.AssertStatus(t, rr, http.StatusOK)

		type result struct {
			Label   string `json:"check_label"`
			Result  string `json:"check_result"`
			RunAt   string `json:"check_run_at"`
		}
		body := testutil.UnmarshalResponse[struct {
			CheckResultList []result `json:"check_result_list"`
		}](t, rr)

		require.Len(t, body.CheckResultList, 2)
		assert.Equal(t, "application_not_expired", body.CheckResultList[0].Label)
		assert.Equal(t, "pass", body.CheckResultList[0].Result)
		assert.Equal(t, "2020-06-01T00:00:00Z", body.CheckResultList[0].RunAt)
		assert.Equal(t, "applicant_is_18_plus", body.CheckResultList[1].Label)
	})

	t.Run("invalid JSON returns 400", func(t *testing.T) {
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/applications/check", "not valid json")
		rr := testutil.DoRequest(router, pinRequest(t, req))

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		testutil.AssertErrorCode(t, rr, "bad_request")
	})

	t.Run("missing application block returns 422", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/applications/check", map[string]any{
			"information": map[string]any{},
		})
		rr := testutil.DoRequest(router, pinRequest(t, req))

		testutil.AssertStatus(t, rr, http.StatusUnprocessableEntity)
		testutil.AssertErrorCode(t, rr, "validation_error")
	})

	t.Run("malformed date returns 422 naming the field", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/applications/check", map[string]any{
			"application": map[string]any{"applied_at": "not-a-date"},
			"information": map[string]any{"applicant": map[string]any{"dob": "2000-01-01"}},
		})
		rr := testutil.DoRequest(router, pinRequest(t, req))

		testutil.AssertStatus(t, rr, http.StatusUnprocessableEntity)
		env := testutil.UnmarshalErrorResponse(t, rr)
		assert.Equal(t, "application.applied_at", env["field"])
	})

	t.Run("unknown top-level keys are ignored", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/applications/check", map[string]any{
			"application": map[string]any{"applied_at": "2020-01-01T00:00:00"},
			"information": map[string]any{"applicant": map[string]any{"dob": "2000-01-01"}},
			"channel":     "mobile",
		})
		rr := testutil.DoRequest(router, pinRequest(t, req))
		testutil.AssertStatus(t, rr, http.StatusOK)
	})
}
