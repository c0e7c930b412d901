//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Jes6241/parquimetros-api/internal/handler/api"
	"github.com/Jes6241/parquimetros-api/internal/usecase/commands"
	"github.com/Jes6241/parquimetros-api/tests/common/builder"
	"github.com/Jes6241/parquimetros-api/tests/common/httptest"
	"github.com/Jes6241/parquimetros-api/tests/common/testutil"
	commandsmock "github.com/Jes6241/parquimetros-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSessionCommands
	handler      *api.SessionHandler
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSessionCommands(s.mockCtrl)
	s.handler = api.NewSessionHandler(s.mockCommands)

	s.router.POST("/parking/pay", s.handler.Pay)
	s.router.GET("/parking/verify/:plate", s.handler.Verify)
	s.router.POST("/parking/extend", s.handler.Extend)
	s.router.PATCH("/parking/:id/mark-fined", s.handler.MarkFined)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

func payBody() map[string]any {
	return map[string]any{
		"plate":   "ABC123",
		"zone":    "Centro",
		"minutes": 60,
		"amount":  15.0,
	}
}

func (s *SessionHandlerTestSuite) TestPay() {
	url := "/parking/pay"

	s.Run("success: returns 201 with a Spanish receipt message", func() {
		view := builder.NewSessionBuilder().BuildView()
		s.mockCommands.EXPECT().Pay(gomock.Any(), gomock.Any()).Return(view, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payBody(), "")
		s.Equal(http.StatusCreated, w.Code)

		var resp map[string]any
		httptest.DecodeBody(s.T(), w, &resp)
		s.Equal(true, resp["success"])
		s.Equal("Tiempo de 1 hora registrado para ABC123", resp["message"])

		payment, ok := resp["payment"].(map[string]any)
		s.Require().True(ok)
		s.Equal("ABC123", payment["plate"])
		s.Equal("1 hora", payment["paidTime"])
	})

	s.Run("fail: returns 400 when required fields are missing", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing plate", testutil.Field("plate", nil)},
			{"missing minutes", testutil.Field("minutes", nil)},
			{"zero minutes", testutil.Field("minutes", 0)},
			{"negative amount", testutil.Field("amount", -5.0)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.ToMap(payBody(), tc.mutate)
				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, w.Code)

				var resp map[string]any
				httptest.DecodeBody(s.T(), w, &resp)
				s.Equal(false, resp["success"])
				s.NotEmpty(resp["error"])
			})
		}
	})

	s.Run("fail: returns 500 on a database failure", func() {
		s.mockCommands.EXPECT().Pay(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDatabaseOperationFailed).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payBody(), "")
		s.Equal(http.StatusInternalServerError, w.Code)
	})
}

func (s *SessionHandlerTestSuite) TestVerify() {
	s.Run("success: valid session includes remaining time", func() {
		view := builder.NewSessionBuilder().BuildView()
		s.mockCommands.EXPECT().Verify(gomock.Any(), "ABC123").
			Return(&commands.VerifyResult{
				Found:            true,
				Valid:            true,
				Plate:            "ABC123",
				Session:          view,
				RemainingMinutes: 40,
			}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/parking/verify/ABC123", nil, "")
		s.Equal(http.StatusOK, w.Code)

		var resp map[string]any
		httptest.DecodeBody(s.T(), w, &resp)
		s.Equal(true, resp["found"])
		s.Equal(true, resp["valid"])
		s.Equal(false, resp["expired"])
		s.Equal("40 minutos", resp["timeRemaining"])
		s.Equal(float64(40), resp["remainingMinutes"])
	})

	s.Run("success: expired session includes elapsed time", func() {
		view := builder.NewSessionBuilder().BuildView()
		s.mockCommands.EXPECT().Verify(gomock.Any(), "ABC123").
			Return(&commands.VerifyResult{
				Found:          true,
				Valid:          false,
				Plate:          "ABC123",
				Session:        view,
				ExpiredMinutes: 90,
			}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/parking/verify/ABC123", nil, "")
		s.Equal(http.StatusOK, w.Code)

		var resp map[string]any
		httptest.DecodeBody(s.T(), w, &resp)
		s.Equal(false, resp["valid"])
		s.Equal(true, resp["expired"])
		s.Equal("1 hora 30 min", resp["timeExpired"])
	})

	s.Run("success: unknown plate reports not found with 200", func() {
		s.mockCommands.EXPECT().Verify(gomock.Any(), "XYZ789").
			Return(&commands.VerifyResult{Found: false, Plate: "XYZ789"}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/parking/verify/XYZ789", nil, "")
		s.Equal(http.StatusOK, w.Code)

		var resp map[string]any
		httptest.DecodeBody(s.T(), w, &resp)
		s.Equal(true, resp["success"])
		s.Equal(false, resp["found"])
		s.NotEmpty(resp["message"])
	})

	s.Run("fail: blank plate returns 400", func() {
		s.mockCommands.EXPECT().Verify(gomock.Any(), " ").
			Return(nil, commands.ErrInvalidPlate).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/parking/verify/%20", nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *SessionHandlerTestSuite) TestExtend() {
	url := "/parking/extend"
	body := map[string]any{"plate": "ABC123", "extraMinutes": 30, "extraAmount": 7.5}

	s.Run("success: returns the extended window", func() {
		view := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.Minutes = 90
		}).BuildView()
		s.mockCommands.EXPECT().Extend(gomock.Any(), gomock.Any()).Return(view, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusOK, w.Code)

		var resp map[string]any
		httptest.DecodeBody(s.T(), w, &resp)
		s.Equal(true, resp["success"])
		s.Equal("Tiempo extendido 30 minutos para ABC123", resp["message"])

		payment, ok := resp["payment"].(map[string]any)
		s.Require().True(ok)
		s.Equal("1 hora 30 min", payment["totalTime"])
	})

	s.Run("fail: no active session returns 404", func() {
		s.mockCommands.EXPECT().Extend(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrActiveSessionNotFound).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusNotFound, w.Code)

		var resp map[string]any
		httptest.DecodeBody(s.T(), w, &resp)
		s.Equal(false, resp["success"])
	})

	s.Run("fail: missing extraMinutes returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"plate": "ABC123"}, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *SessionHandlerTestSuite) TestMarkFined() {
	id := uuid.New()
	url := "/parking/" + id.String() + "/mark-fined"

	s.Run("success: returns the fined session", func() {
		ref := "FOLIO-001"
		view := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.ID = id
			b.FineReference = &ref
		}).BuildView()
		view.Status = "fined"

		s.mockCommands.EXPECT().MarkFined(gomock.Any(), id, gomock.Any()).Return(view, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"fineReference": ref}, "")
		s.Equal(http.StatusOK, w.Code)

		var resp map[string]any
		httptest.DecodeBody(s.T(), w, &resp)
		s.Equal(true, resp["success"])

		sess, ok := resp["session"].(map[string]any)
		s.Require().True(ok)
		s.Equal("fined", sess["status"])
		s.Equal(ref, sess["fineReference"])
	})

	s.Run("fail: malformed id returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/parking/not-a-uuid/mark-fined", nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("fail: unknown id returns 404", func() {
		s.mockCommands.EXPECT().MarkFined(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrSessionNotFound).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "")
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("fail: unexpected error returns 500", func() {
		s.mockCommands.EXPECT().MarkFined(gomock.Any(), id, gomock.Any()).
			Return(nil, errors.New("boom")).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "")
		s.Equal(http.StatusInternalServerError, w.Code)
	})
}
