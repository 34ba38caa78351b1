//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"sejour/internal/domain/property"
	"sejour/internal/domain/user"
	"sejour/internal/handler/api"
	resdto "sejour/internal/handler/dto/response"
	"sejour/internal/pkg/errs"
	"sejour/internal/usecase/commands"
	"sejour/internal/usecase/queries"
	"sejour/tests/common/builder"
	"sejour/tests/common/httptest"
	"sejour/tests/common/testutil"
	commandsmock "sejour/tests/mock/commands"
	queriesmock "sejour/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUserID int64 = 10

// Mock authentication middleware for testing
func testAuthMiddleware(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.Set("user_id", testUserID)
	c.Set("user_role", user.RoleClient)
	c.Next()
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations", testAuthMiddleware, s.handler.CreateReservation)
	s.router.GET("/reservations", testAuthMiddleware, s.handler.GetUserReservations)
	s.router.GET("/reservations/:id", testAuthMiddleware, s.handler.GetReservation)
	s.router.POST("/reservations/:id/cancel", testAuthMiddleware, s.handler.CancelReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), testUserID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.PropertyID, response.PropertyID)
		s.Equal(returnView.TotalAmount, response.TotalAmount)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: property_id", mutate: testutil.Field("property_id", nil)},
			{name: "missing field: starts_at", mutate: testutil.Field("starts_at", nil)},
			{name: "missing field: ends_at", mutate: testutil.Field("ends_at", nil)},
			{name: "missing field: guest_count", mutate: testutil.Field("guest_count", nil)},
			{name: "zero guest_count", mutate: testutil.Field("guest_count", 0)},
			{name: "malformed starts_at", mutate: testutil.Field("starts_at", "tomorrow")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid stay period",
				commandsError:  commands.ErrInvalidStayPeriod,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid stay period",
			},
			{
				name:           "property not found",
				commandsError:  commands.ErrPropertyNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Property not found",
			},
			{
				name:           "inactive property",
				commandsError:  errs.Mark(property.ErrPropertyInactive, commands.ErrPropertyNotBookable),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Property is not available for booking",
			},
			{
				name:           "guest count above capacity",
				commandsError:  errs.Mark(property.ErrCapacityExceeded, commands.ErrPropertyNotBookable),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Guest count exceeds property capacity",
			},
			{
				name:           "property not bookable without a cause",
				commandsError:  commands.ErrPropertyNotBookable,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Property cannot be booked",
			},
			{
				name:           "date conflict",
				commandsError:  commands.ErrDateConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "conflict with an existing reservation",
			},
			{
				name:           "domain validation error",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), testUserID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	url := "/reservations/1"

	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns 200 OK with ReservationResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testUserID, int64(1)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.PropertyTitle, response.PropertyTitle)
	})

	s.Run("error: 400 Bad Request for non-numeric ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})

	s.Run("error: 404 Not Found for missing or foreign reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testUserID, int64(1)).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGetUserReservations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetUserReservations() {
	url := "/reservations"

	items := []*queries.ReservationListItem{
		builder.NewReservationBuilder().WithID(1).BuildListItem(),
		builder.NewReservationBuilder().WithID(2).BuildListItem(),
	}

	s.Run("success: returns reservation list", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), testUserID, 0).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: limit query parameter is forwarded", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), testUserID, 5).
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: invalid limit falls back to default", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), testUserID, 0).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=abc", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), testUserID, 0).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestCancelReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	url := "/reservations/1/cancel"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), int64(1), testUserID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for non-numeric ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/abc/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				commandsError:  commands.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "already cancelled",
				commandsError:  commands.ErrReservationAlreadyCancelled,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already cancelled",
			},
			{
				name:           "too late to cancel",
				commandsError:  commands.ErrCancellationTooLate,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "less than 24 hours",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelReservation(gomock.Any(), int64(1), testUserID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
