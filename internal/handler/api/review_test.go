//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"sejour/internal/handler/api"
	resdto "sejour/internal/handler/dto/response"
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

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reviews", testAuthMiddleware, s.handler.SubmitReview)
	// agency reviews are public
	s.router.GET("/agencies/:id/reviews", s.handler.GetAgencyReviews)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

// ================================================================================
// TestSubmitReview
// ================================================================================

func (s *ReviewHandlerTestSuite) TestSubmitReview() {
	url := "/reviews"

	reqBody := builder.NewReviewBuilder().BuildSubmitRequestDTO()

	s.Run("success: returns 201 Created with the review ID", func() {
		s.mockCommands.EXPECT().SubmitReview(gomock.Any(), gomock.Any(), testUserID).
			Return(&commands.SubmitReviewResult{ReviewID: 7}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.SubmitReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(7), response.ReviewID)
	})

	s.Run("success: empty comment is accepted", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("comment", ""))

		s.mockCommands.EXPECT().SubmitReview(gomock.Any(), gomock.Any(), testUserID).
			Return(&commands.SubmitReviewResult{ReviewID: 8}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: agency_id", mutate: testutil.Field("agency_id", nil)},
			{name: "missing field: rating", mutate: testutil.Field("rating", nil)},
			{name: "rating below minimum", mutate: testutil.Field("rating", 0)},
			{name: "rating above maximum", mutate: testutil.Field("rating", 6)},
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
				name:           "agency not found",
				commandsError:  commands.ErrAgencyNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Agency not found",
			},
			{
				name:           "duplicate review for the day",
				commandsError:  commands.ErrDuplicateReview,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already submitted for this agency today",
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
				s.mockCommands.EXPECT().SubmitReview(gomock.Any(), gomock.Any(), testUserID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetAgencyReviews
// ================================================================================

func (s *ReviewHandlerTestSuite) TestGetAgencyReviews() {
	url := "/agencies/40/reviews"

	average := 4.5
	returnView := &queries.AgencyReviewsView{
		AgencyID:      40,
		AgencyName:    "Riviera Stays",
		AverageRating: &average,
		ReviewCount:   2,
		Reviews: []*queries.ReviewListItem{
			builder.NewReviewBuilder().WithRating(5).BuildListItem(),
			builder.NewReviewBuilder().WithRating(4).BuildListItem(),
		},
	}

	s.Run("success: returns the agency's reviews with aggregates", func() {
		s.mockQueries.EXPECT().ListByAgency(gomock.Any(), int64(40), 0).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AgencyReviewsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(40), response.AgencyID)
		s.Equal("Riviera Stays", response.AgencyName)
		s.Require().NotNil(response.AverageRating)
		s.Equal(4.5, *response.AverageRating)
		s.Equal(int64(2), response.ReviewCount)
		s.Len(response.Reviews, 2)
	})

	s.Run("success: agency with no reviews has a nil average", func() {
		s.mockQueries.EXPECT().ListByAgency(gomock.Any(), int64(40), 0).
			Return(&queries.AgencyReviewsView{
				AgencyID:   40,
				AgencyName: "Riviera Stays",
				Reviews:    []*queries.ReviewListItem{},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AgencyReviewsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Nil(response.AverageRating)
		s.Equal(int64(0), response.ReviewCount)
		s.Empty(response.Reviews)
	})

	s.Run("error: 400 Bad Request for non-numeric agency ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agencies/abc/reviews", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid agency ID")
	})

	s.Run("error: 404 Not Found for unknown agency", func() {
		s.mockQueries.EXPECT().ListByAgency(gomock.Any(), int64(40), 0).
			Return(nil, queries.ErrAgencyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Agency not found")
	})
}
