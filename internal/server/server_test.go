package server

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	calc "github.com/rpgo/retirement-savings/internal/calculation"
	"github.com/rpgo/retirement-savings/internal/domain"
)

type mockProjector struct {
	mock.Mock
}

func (m *mockProjector) Run(ctx context.Context, in *domain.ProjectionInput) (*domain.ProjectionResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectionResult), args.Error(1)
}

const referenceJSON = `{
	"current_age": 35,
	"retirement_age": 66,
	"life_expectancy": 95,
	"current_savings": 30000,
	"monthly_contribution": 500,
	"monthly_expense": 3000,
	"pre_retirement_return": 6,
	"post_retirement_return": 5,
	"annual_inflation": 3,
	"annual_income_increase": 2
}`

func newTestServer(t *testing.T, projector Projector) *httptest.Server {
	t.Helper()
	router := ConfigureRouter(Config{
		Addr:            ":0",
		ShutdownTimeout: time.Second,
		Dependencies: Dependencies{
			Projector: projector,
			Solver:    calc.NewContributionSolver(),
			Logger:    zerolog.New(zerolog.NewTestWriter(t)),
		},
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func TestWebAPI_Health(t *testing.T) {
	srv := newTestServer(t, calc.NewProjectionEngine())

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, map[string]string{"status": "ok"}, decodeBody[map[string]string](t, resp))
}

func TestWebAPI_ExampleInput(t *testing.T) {
	srv := newTestServer(t, calc.NewProjectionEngine())

	resp, err := http.Get(srv.URL + "/api/v1/projections/example")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	in := decodeBody[domain.ProjectionInput](t, resp)
	assert.Equal(t, 35, in.CurrentAge)
	assert.Equal(t, 67, in.RetirementAge)
	assert.Equal(t, 95, in.LifeExpectancy)
	assert.Equal(t, "30000", in.CurrentSavings.String())
}

func TestWebAPI_CreateProjectionJSON(t *testing.T) {
	srv := newTestServer(t, calc.NewProjectionEngine())

	resp, err := http.Post(srv.URL+"/api/v1/projections", "application/json", strings.NewReader(referenceJSON))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "864636.63", result["future_savings"])
	assert.Equal(t, "1988853.22", result["required_savings"])
	assert.Equal(t, float64(77), result["savings_depletion_age"])
	assert.Len(t, result["savings_series"], 60)
}

func TestWebAPI_CreateProjectionForm(t *testing.T) {
	srv := newTestServer(t, calc.NewProjectionEngine())

	form := url.Values{
		"currentAge":           {"35"},
		"retirementAgeInput":   {"66"},
		"lifeExpectancy":       {"95"},
		"currentSavings":       {"$30,000"},
		"monthlyContribution":  {"$500"},
		"monthlyExpense":       {"$3,000.00"},
		"preRetirementReturn":  {"6%"},
		"postRetirementReturn": {"5%"},
		"annualInflation":      {"3%"},
		"annualIncomeIncrease": {"2%"},
	}
	resp, err := http.PostForm(srv.URL+"/api/v1/projections", form)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "864636.63", result["future_savings"])
	assert.Equal(t, "1335.46", result["required_monthly_contribution"])
}

func TestWebAPI_CreateProjectionErrors(t *testing.T) {
	tests := []struct {
		name           string
		contentType    string
		body           string
		setupMock      func(*mockProjector)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "malformed JSON",
			contentType:    "application/json",
			body:           `{"current_age":`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "malformed JSON body",
		},
		{
			name:           "retirement before current age",
			contentType:    "application/json",
			body:           `{"current_age":40,"retirement_age":30,"life_expectancy":90}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "retirement age (30) must be greater than current age (40)",
		},
		{
			name:           "form field not numeric",
			contentType:    "application/x-www-form-urlencoded",
			body:           "currentAge=abc&retirementAge=66&lifeExpectancy=95",
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "currentAge must be a whole number of years",
		},
		{
			name:        "solver did not converge",
			contentType: "application/json",
			body:        referenceJSON,
			setupMock: func(m *mockProjector) {
				m.On("Run", mock.Anything, mock.Anything).Return(nil, calc.ErrDidNotConverge)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "did not converge",
		},
		{
			name:        "unexpected failure",
			contentType: "application/json",
			body:        referenceJSON,
			setupMock: func(m *mockProjector) {
				m.On("Run", mock.Anything, mock.Anything).Return(nil, io.ErrUnexpectedEOF)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projector := new(mockProjector)
			if tt.setupMock != nil {
				tt.setupMock(projector)
			}
			srv := newTestServer(t, projector)

			resp, err := http.Post(srv.URL+"/api/v1/projections", tt.contentType, strings.NewReader(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			body := decodeBody[errorResponse](t, resp)
			assert.Equal(t, tt.expectedStatus, body.Status)
			assert.Contains(t, body.Message, tt.expectedMsg)
			projector.AssertExpectations(t)
		})
	}
}

func TestWebAPI_SolveContribution(t *testing.T) {
	srv := newTestServer(t, calc.NewProjectionEngine())

	body := []byte(`{"current_savings":0,"goal":100000,"current_age":30,"retirement_age":31,"annual_return":0,"annual_income_increase":0}`)
	resp, err := http.Post(srv.URL+"/api/v1/contributions", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	sol := decodeBody[calc.ContributionSolution](t, resp)
	assert.InDelta(t, 8333.333333333334, sol.MonthlyContribution, 1e-6)
	assert.InDelta(t, 100000, sol.Shortfall, 1e-6)

	rejected := []struct {
		body string
		msg  string
	}{
		{`{"current_savings":0,"goal":1000,"current_age":40,"retirement_age":30}`, "cannot be less than current age"},
		{`{"current_age":30,"retirement_age":1000000,"annual_return":0.0001,"annual_income_increase":0.0001,"goal":1000000}`, "retirement age must be at most 150"},
		{`{"current_age":30,"retirement_age":768614336404564651,"goal":1000000}`, "retirement age must be at most 150"},
		{`{"current_age":30,"retirement_age":60,"annual_return":-2,"goal":1000000}`, "annual return cannot be negative"},
		{`{"current_age":30,"retirement_age":60,"annual_income_increase":-1,"goal":1000000}`, "annual income increase cannot be negative"},
	}
	for _, tc := range rejected {
		resp, err = http.Post(srv.URL+"/api/v1/contributions", "application/json", strings.NewReader(tc.body))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, tc.body)
		body := decodeBody[errorResponse](t, resp)
		assert.Contains(t, body.Message, tc.msg)
	}
}

func TestNewWebAPIDefaults(t *testing.T) {
	api := NewWebAPI(Config{Addr: "127.0.0.1:0", Dependencies: Dependencies{Projector: new(mockProjector)}})
	assert.Equal(t, defaultShutdownTimeout, api.shutdownTimeout)
	assert.Equal(t, "127.0.0.1:0", api.server.Addr)
	assert.NotNil(t, api.Handler())
}
