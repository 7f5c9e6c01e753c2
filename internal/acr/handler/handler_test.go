package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"ara/internal/acr/handler/mocks"
	"ara/internal/acr/service"
	"ara/internal/catalog"
	"ara/internal/catalog/models"
	"ara/internal/envelope"
	"ara/pkg/platform/queryparam"
	"ara/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/acr-mocks.go -package=mocks Service

var identity = envelope.Identity{Title: "ARA Standard", Version: "1.0.0", Publisher: "Council"}

type acrResponse = envelope.Response[[]models.ControlRequirement]

type ACRHandlerSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func TestACRHandlerSuite(t *testing.T) {
	suite.Run(t, new(ACRHandlerSuite))
}

func (s *ACRHandlerSuite) SetupSuite() {
	c, err := catalog.LoadEmbedded()
	s.Require().NoError(err)
	s.catalog = c
}

func (s *ACRHandlerSuite) router(svc Service, mode queryparam.Mode) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	New(svc, identity, mode, logger).Register(r)
	return r
}

func (s *ACRHandlerSuite) mockRouter(mode queryparam.Mode) (http.Handler, *mocks.MockService) {
	ctrl := gomock.NewController(s.T())
	svc := mocks.NewMockService(ctrl)
	return s.router(svc, mode), svc
}

func (s *ACRHandlerSuite) realRouter(mode queryparam.Mode) http.Handler {
	return s.router(service.New(s.catalog), mode)
}

func (s *ACRHandlerSuite) TestParsesFiltersIntoService() {
	r, svc := s.mockRouter(queryparam.Strict)
	domain := 3
	level := models.LevelL2
	method := models.MethodHumanSimulation
	svc.EXPECT().Query(gomock.Any(), service.Filter{Domain: &domain, Level: &level, Method: &method}).
		Return(&service.Result{Controls: nil, TotalInStandard: 174}, nil)

	req := testutil.NewQueryRequest(s.T(), "/acr", map[string]string{"domain": "3", "level": "l2", "method": "hs"})
	rr := testutil.DoRequest(r, testutil.WithFixedTime(req))

	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[acrResponse](s.T(), rr)
	s.Empty(resp.Data)
	s.NotNil(resp.Data)
	s.Equal(0, *resp.Meta.Count)
	s.Equal(174, *resp.Meta.TotalInStandard)
	s.Equal("2026-03-02T09:30:00Z", resp.Meta.Generated)
	s.Equal("ARA Standard", resp.Meta.Standard)
}

func (s *ACRHandlerSuite) TestServiceFailure() {
	r, svc := s.mockRouter(queryparam.Strict)
	svc.EXPECT().Query(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	rr := testutil.Get(r, "/acr")
	testutil.AssertStatusAndError(s.T(), rr, http.StatusInternalServerError, "internal_error")
	s.NotContains(rr.Body.String(), "boom")
}

func (s *ACRHandlerSuite) TestStrictModeRejectsMalformedFilters() {
	r, _ := s.mockRouter(queryparam.Strict)
	for _, target := range []string{"/acr?domain=abc", "/acr?level=L9", "/acr?method=XX", "/acr?classification=Optional"} {
		s.Run(target, func() {
			rr := testutil.Get(r, target)
			testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
			s.Equal("no-store", rr.Header().Get("Cache-Control"))
		})
	}
}

func (s *ACRHandlerSuite) TestLenientModeMatchesNothing() {
	r := s.realRouter(queryparam.Lenient)
	rr := testutil.Get(r, "/acr?domain=abc")
	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[acrResponse](s.T(), rr)
	s.Empty(resp.Data)
	s.Equal(174, *resp.Meta.TotalInStandard)
}

func (s *ACRHandlerSuite) TestCaseInsensitiveFilters() {
	r := s.realRouter(queryparam.Strict)
	pairs := [][2]string{
		{"/acr?level=l1", "/acr?level=L1"},
		{"/acr?method=ei", "/acr?method=EI"},
		{"/acr?classification=blocking", "/acr?classification=Blocking"},
	}
	for _, p := range pairs {
		s.Run(p[0], func() {
			lower := testutil.UnmarshalResponse[acrResponse](s.T(), testutil.Get(r, p[0]))
			upper := testutil.UnmarshalResponse[acrResponse](s.T(), testutil.Get(r, p[1]))
			s.NotEmpty(upper.Data)
			s.Equal(upper.Data, lower.Data)
		})
	}
}

func (s *ACRHandlerSuite) TestCountMatchesData() {
	r := s.realRouter(queryparam.Strict)
	for _, target := range []string{"/acr", "/acr?domain=1", "/acr?level=L3&classification=Conditional", "/acr?domain=8&level=L1"} {
		s.Run(target, func() {
			resp := testutil.UnmarshalResponse[acrResponse](s.T(), testutil.Get(r, target))
			s.Equal(len(resp.Data), *resp.Meta.Count)
		})
	}
}

func (s *ACRHandlerSuite) TestHandleQueryDirect() {
	svc := service.New(s.catalog)
	h := New(svc, identity, queryparam.Strict, slog.New(slog.NewTextHandler(io.Discard, nil)))
	req := testutil.NewQueryRequest(s.T(), "/acr", map[string]string{"domain": "2", "method": "AT"})
	req = req.WithContext(context.Background())

	rr := testutil.DoRequest(http.HandlerFunc(h.HandleQuery), req)
	resp := testutil.UnmarshalResponse[acrResponse](s.T(), rr)
	s.Require().Len(resp.Data, 2)
	s.Equal("ACR-2.01", resp.Data[0].ID)
	s.Equal("ACR-2.02", resp.Data[1].ID)
}
