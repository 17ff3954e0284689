package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks LookupService,HistoryStore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"lookupdesk/internal/card"
	"lookupdesk/internal/lookup/handler/mocks"
	"lookupdesk/internal/lookup/models"
	"lookupdesk/internal/lookup/ports"
	"lookupdesk/internal/lookup/view"
	"lookupdesk/internal/platform/logger"
	"lookupdesk/internal/platform/metrics"
	dErrors "lookupdesk/pkg/domain-errors"
	"lookupdesk/pkg/testutil"
)

// =============================================================================
// Lookup Handler Test Suite
// =============================================================================
// Verifies request parsing, the response envelope, and the mapping from
// domain error codes to HTTP statuses.

type HandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	lookups *mocks.MockLookupService
	history *mocks.MockHistoryStore
	router  chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.lookups = mocks.NewMockLookupService(s.ctrl)
	s.history = mocks.NewMockHistoryStore(s.ctrl)
	s.router = s.newRouter()
}

func (s *HandlerSuite) newRouter(opts ...Option) chi.Router {
	h := New(s.lookups, s.history, logger.Discard(), metrics.NewWithRegisterer(prometheus.NewRegistry()), opts...)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// =============================================================================
// POST /lookups/{domain}
// =============================================================================

func (s *HandlerSuite) TestLookupResult() {
	payload := json.RawMessage(`{"success":true,"data":{"name":"Asha","phone":"1234567890"}}`)
	s.lookups.EXPECT().
		Lookup(gomock.Any(), models.DomainPhone, "123-456-7890", gomock.Any()).
		DoAndReturn(func(_ context.Context, d models.Domain, _ string, p ports.Presenter) (*models.Result, error) {
			p.RenderLoading(d)
			p.RenderResult(d, payload)
			return &models.Result{Domain: d, Key: "1234567890", Payload: payload}, nil
		})

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/lookups/phone", map[string]string{"value": "123-456-7890"}))

	s.Equal(http.StatusOK, rr.Code)
	s.NotEmpty(rr.Header().Get("X-Request-ID"))
	body := testutil.UnmarshalResponse[lookupResponse](s.T(), rr)
	s.Equal("result", body.State)
	s.Equal("1234567890", body.Key)
	s.False(body.Cached)
	s.JSONEq(string(payload), string(body.Payload))
	s.Equal([]view.Row{{Label: "Phone", Value: "1234567890"}, {Label: "Name", Value: "Asha"}}, body.Rows)
}

func (s *HandlerSuite) TestLookupCardRows() {
	raw, err := json.Marshal(card.Analyze("4539578763621486"))
	s.Require().NoError(err)
	s.lookups.EXPECT().
		Lookup(gomock.Any(), models.DomainCard, "4539578763621486", gomock.Any()).
		Return(&models.Result{Domain: models.DomainCard, Key: "4539578763621486", Payload: raw, Cached: true}, nil)

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/lookups/card", map[string]string{"value": "4539578763621486"}))

	s.Equal(http.StatusOK, rr.Code)
	body := testutil.UnmarshalResponse[lookupResponse](s.T(), rr)
	s.True(body.Cached)
	s.Len(body.Rows, 7)
}

func (s *HandlerSuite) TestLookupErrorStatuses() {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", dErrors.New(dErrors.CodeValidation, "Please enter a phone number"), http.StatusBadRequest, "validation_error"},
		{"not found", dErrors.New(dErrors.CodeNotFound, "Phone number not found"), http.StatusNotFound, "not_found"},
		{"network", dErrors.New(dErrors.CodeNetwork, "Error fetching phone data: x"), http.StatusBadGateway, "network_error"},
		{"unavailable", dErrors.New(dErrors.CodeUnavailable, "Phone lookup is not configured"), http.StatusServiceUnavailable, "unavailable"},
		{"analysis", dErrors.New(dErrors.CodeAnalysis, "Error analyzing card: x"), http.StatusInternalServerError, "analysis_error"},
		{"uncoded", errors.New("boom"), http.StatusInternalServerError, "internal"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.lookups.EXPECT().Lookup(gomock.Any(), models.DomainPhone, "x", gomock.Any()).Return(nil, tc.err)

			rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/lookups/phone", map[string]string{"value": "x"}))

			body := testutil.AssertStatusAndError(s.T(), rr, tc.status, tc.code)
			if tc.code != "internal" {
				s.Equal(dErrors.Message(tc.err), body.Message)
			}
		})
	}
}

func (s *HandlerSuite) TestLookupUnknownDomain() {
	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/lookups/passport", map[string]string{"value": "x"}))

	testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
}

func (s *HandlerSuite) TestLookupMalformedBody() {
	rr := testutil.DoRequest(s.router, testutil.NewRequestWithBody(http.MethodPost, "/lookups/vehicle", "{"))

	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
}

// =============================================================================
// /history
// =============================================================================

func (s *HandlerSuite) TestListHistory() {
	entries := []models.HistoryEntry{{Type: "Card", Value: "************1486", RecordedAt: "01/05/2024, 12:00:00"}}
	s.history.EXPECT().Load(gomock.Any()).Return(entries, nil)

	rr := testutil.DoRequest(s.router, testutil.NewRequestWithBody(http.MethodGet, "/history", ""))

	s.Equal(http.StatusOK, rr.Code)
	body := testutil.UnmarshalResponse[historyResponse](s.T(), rr)
	s.Equal(entries, body.Entries)
}

func (s *HandlerSuite) TestListHistoryFailure() {
	s.history.EXPECT().Load(gomock.Any()).Return(nil, errors.New("redis down"))

	rr := testutil.DoRequest(s.router, testutil.NewRequestWithBody(http.MethodGet, "/history", ""))

	body := testutil.AssertStatusAndError(s.T(), rr, http.StatusInternalServerError, "internal")
	s.Equal("internal error", body.Message)
}

func (s *HandlerSuite) TestClearHistoryRequiresConfirmation() {
	rr := testutil.DoRequest(s.router, testutil.NewRequestWithBody(http.MethodDelete, "/history", ""))

	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
}

func (s *HandlerSuite) TestClearHistory() {
	s.history.EXPECT().Clear(gomock.Any()).Return(nil)

	rr := testutil.DoRequest(s.router, testutil.NewRequestWithBody(http.MethodDelete, "/history?confirm=true", ""))

	s.Equal(http.StatusNoContent, rr.Code)
}

// =============================================================================
// /healthz
// =============================================================================

func (s *HandlerSuite) TestHealth() {
	s.Run("no checker", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequestWithBody(http.MethodGet, "/healthz", ""))
		s.Equal(http.StatusOK, rr.Code)
	})

	s.Run("failing backend", func() {
		router := s.newRouter(WithHealthChecker(healthFunc(func(context.Context) error { return errors.New("down") })))
		rr := testutil.DoRequest(router, testutil.NewRequestWithBody(http.MethodGet, "/healthz", ""))
		s.Equal(http.StatusServiceUnavailable, rr.Code)
	})
}

type healthFunc func(context.Context) error

func (f healthFunc) Health(ctx context.Context) error { return f(ctx) }

func TestResponsePresenterTrail(t *testing.T) {
	p := &responsePresenter{}
	p.RenderLoading(models.DomainCard)
	p.RenderError(models.DomainCard, "Error analyzing card: x")

	if got := p.states(); len(got) != 2 || got[0] != "loading" || got[1] != "error" {
		t.Fatalf("unexpected states %v", got)
	}
}
