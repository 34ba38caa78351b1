//go:build e2e

package booking_test

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"sejour/internal/domain/user"
	"sejour/internal/handler/dto/request"
	"sejour/internal/handler/dto/response"
	"sejour/tests/common/authtest"
	"sejour/tests/common/dbtest"
	"sejour/tests/common/httptest"
	"sejour/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	propertiesURL   = "/api/properties"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) token(userID int64) string {
	return authtest.SignToken(s.T(), s.Config.JWT.Secret, userID, string(user.RoleClient))
}

// checkIn returns a date n days out at noon UTC so stays never trip the
// past-date guard regardless of when the suite runs.
func checkIn(n int) time.Time {
	return time.Now().UTC().AddDate(0, 0, n).Truncate(24 * time.Hour).Add(12 * time.Hour)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// =============================================================================
// TestCreateReservation
// =============================================================================

func (s *BookingSuite) TestCreateReservation() {
	s.Run("Normal case: client books a property for three nights", func() {
		t := s.T()

		agencyID := dbtest.CreateTestAgency(t, s.DB, "Riviera Stays")
		userID := dbtest.CreateTestUser(t, s.DB, "client@example.com", string(user.RoleClient))
		propertyID := dbtest.CreateTestProperty(t, s.DB, agencyID, "Seaside Villa", 100)

		reqBody := request.CreateReservationRequest{
			PropertyID: propertyID,
			StartsAt:   checkIn(10),
			EndsAt:     checkIn(13),
			GuestCount: 2,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.token(userID))
		require.Equal(t, http.StatusCreated, w.Code, "Should create reservation: %s", w.Body.String())

		var actual response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))

		expected := &response.ReservationResponse{
			PropertyID:    propertyID,
			PropertyTitle: "Seaside Villa",
			UserID:        userID,
			GuestCount:    2,
			Status:        "pending",
			TotalAmount:   300, // 3 days x 100, no surcharge for 2 guests
			Currency:      "EUR",
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReservationResponse{},
				"ID", "StartsAt", "EndsAt", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Reservation response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: extra guests add the per-guest surcharge", func() {
		t := s.T()

		agencyID := dbtest.CreateTestAgency(t, s.DB, "Riviera Stays")
		userID := dbtest.CreateTestUser(t, s.DB, "client@example.com", string(user.RoleClient))
		propertyID := dbtest.CreateTestProperty(t, s.DB, agencyID, "Seaside Villa", 100)

		reqBody := request.CreateReservationRequest{
			PropertyID: propertyID,
			StartsAt:   checkIn(10),
			EndsAt:     checkIn(12),
			GuestCount: 4,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.token(userID))
		require.Equal(t, http.StatusCreated, w.Code)

		var actual response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, 240.0, actual.TotalAmount, "2 days x 100 + 2 extra guests x 20")
	})

	s.Run("Error case: overlapping dates conflict, shared boundary included", func() {
		t := s.T()

		agencyID := dbtest.CreateTestAgency(t, s.DB, "Riviera Stays")
		userID := dbtest.CreateTestUser(t, s.DB, "client@example.com", string(user.RoleClient))
		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleClient))
		propertyID := dbtest.CreateTestProperty(t, s.DB, agencyID, "Seaside Villa", 100)

		dbtest.CreateTestReservation(t, s.DB, otherID, propertyID,
			checkIn(10), checkIn(13), "confirmed", 300)

		// Starts exactly when the existing stay ends
		reqBody := request.CreateReservationRequest{
			PropertyID: propertyID,
			StartsAt:   checkIn(13),
			EndsAt:     checkIn(15),
			GuestCount: 2,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.token(userID))
		require.Equal(t, http.StatusConflict, w.Code, "Shared boundary instant should conflict: %s", w.Body.String())
	})

	s.Run("Normal case: cancelled reservations do not block dates", func() {
		t := s.T()

		agencyID := dbtest.CreateTestAgency(t, s.DB, "Riviera Stays")
		userID := dbtest.CreateTestUser(t, s.DB, "client@example.com", string(user.RoleClient))
		propertyID := dbtest.CreateTestProperty(t, s.DB, agencyID, "Seaside Villa", 100)

		dbtest.CreateTestReservation(t, s.DB, userID, propertyID,
			checkIn(10), checkIn(13), "cancelled", 300)

		reqBody := request.CreateReservationRequest{
			PropertyID: propertyID,
			StartsAt:   checkIn(10),
			EndsAt:     checkIn(13),
			GuestCount: 2,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.token(userID))
		require.Equal(t, http.StatusCreated, w.Code, "Cancelled stay should free the dates: %s", w.Body.String())
	})

	s.Run("Error case: inactive property cannot be booked", func() {
		t := s.T()

		agencyID := dbtest.CreateTestAgency(t, s.DB, "Riviera Stays")
		userID := dbtest.CreateTestUser(t, s.DB, "client@example.com", string(user.RoleClient))
		propertyID := dbtest.CreateInactiveProperty(t, s.DB, agencyID, "Shuttered Studio")

		reqBody := request.CreateReservationRequest{
			PropertyID: propertyID,
			StartsAt:   checkIn(10),
			EndsAt:     checkIn(12),
			GuestCount: 2,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.token(userID))
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Property is not available for booking")
	})

	s.Run("Error case: guest count above capacity", func() {
		t := s.T()

		agencyID := dbtest.CreateTestAgency(t, s.DB, "Riviera Stays")
		userID := dbtest.CreateTestUser(t, s.DB, "client@example.com", string(user.RoleClient))
		propertyID := dbtest.CreateTestProperty(t, s.DB, agencyID, "Seaside Villa", 100)

		reqBody := request.CreateReservationRequest{
			PropertyID: propertyID,
			StartsAt:   checkIn(10),
			EndsAt:     checkIn(12),
			GuestCount: 5, // capacity is 4
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.token(userID))
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Guest count exceeds property capacity")
	})

	s.Run("Error case: unknown property", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "client@example.com", string(user.RoleClient))

		reqBody := request.CreateReservationRequest{
			PropertyID: 99999,
			StartsAt:   checkIn(10),
			EndsAt:     checkIn(12),
			GuestCount: 2,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.token(userID))
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: missing or expired token", func() {
		t := s.T()

		reqBody := request.CreateReservationRequest{
			PropertyID: 1,
			StartsAt:   checkIn(10),
			EndsAt:     checkIn(12),
			GuestCount: 2,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		expired := authtest.ExpiredToken(t, s.Config.JWT.Secret, 1, string(user.RoleClient))
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestGetReservation
// =============================================================================

func (s *BookingSuite) TestGetReservation() {
	s.Run("Normal case: owner reads their reservation", func() {
		t := s.T()

		agencyID := dbtest.CreateTestAgency(t, s.DB, "Riviera Stays")
		userID := dbtest.CreateTestUser(t, s.DB, "client@example.com", string(user.RoleClient))
		propertyID := dbtest.CreateTestProperty(t, s.DB, agencyID, "Seaside Villa", 100)
		reservationID := dbtest.CreateTestReservation(t, s.DB, userID, propertyID,
			checkIn(10), checkIn(13), "pending", 300)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/"+itoa(reservationID), nil, s.token(userID))
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, reservationID, actual.ID)
		require.Equal(t, "Seaside Villa", actual.PropertyTitle)
	})

	s.Run("Error case: another user's reservation reads as 404", func() {
		t := s.T()

		agencyID := dbtest.CreateTestAgency(t, s.DB, "Riviera Stays")
		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", string(user.RoleClient))
		strangerID := dbtest.CreateTestUser(t, s.DB, "stranger@example.com", string(user.RoleClient))
		propertyID := dbtest.CreateTestProperty(t, s.DB, agencyID, "Seaside Villa", 100)
		reservationID := dbtest.CreateTestReservation(t, s.DB, ownerID, propertyID,
			checkIn(10), checkIn(13), "pending", 300)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/"+itoa(reservationID), nil, s.token(strangerID))
		require.Equal(t, http.StatusNotFound, w.Code, "Ownership failures must not leak existence")
	})
}

// =============================================================================
// TestListReservations
// =============================================================================

func (s *BookingSuite) TestListReservations() {
	s.Run("Normal case: newest first, scoped to the caller", func() {
		t := s.T()

		agencyID := dbtest.CreateTestAgency(t, s.DB, "Riviera Stays")
		userID := dbtest.CreateTestUser(t, s.DB, "client@example.com", string(user.RoleClient))
		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleClient))
		propertyID := dbtest.CreateTestProperty(t, s.DB, agencyID, "Seaside Villa", 100)

		dbtest.CreateTestReservation(t, s.DB, userID, propertyID, checkIn(10), checkIn(13), "pending", 300)
		dbtest.CreateTestReservation(t, s.DB, userID, propertyID, checkIn(20), checkIn(23), "pending", 300)
		dbtest.CreateTestReservation(t, s.DB, otherID, propertyID, checkIn(30), checkIn(33), "pending", 300)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, s.token(userID))
		require.Equal(t, http.StatusOK, w.Code)

		var actual []response.ReservationListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Len(t, actual, 2, "Only the caller's reservations are listed")
	})
}

// =============================================================================
// TestCancelReservation
// =============================================================================

func (s *BookingSuite) TestCancelReservation() {
	s.Run("Normal case: cancel well before check-in", func() {
		t := s.T()

		agencyID := dbtest.CreateTestAgency(t, s.DB, "Riviera Stays")
		userID := dbtest.CreateTestUser(t, s.DB, "client@example.com", string(user.RoleClient))
		propertyID := dbtest.CreateTestProperty(t, s.DB, agencyID, "Seaside Villa", 100)
		reservationID := dbtest.CreateTestReservation(t, s.DB, userID, propertyID,
			checkIn(10), checkIn(13), "confirmed", 300)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			reservationsURL+"/"+itoa(reservationID)+"/cancel", nil, s.token(userID))
		require.Equal(t, http.StatusNoContent, w.Code, "Confirmed reservations are cancellable: %s", w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/"+itoa(reservationID), nil, s.token(userID))
		var actual response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, "cancelled", actual.Status)
	})

	s.Run("Error case: inside the 24 hour cutoff", func() {
		t := s.T()

		agencyID := dbtest.CreateTestAgency(t, s.DB, "Riviera Stays")
		userID := dbtest.CreateTestUser(t, s.DB, "client@example.com", string(user.RoleClient))
		propertyID := dbtest.CreateTestProperty(t, s.DB, agencyID, "Seaside Villa", 100)

		now := time.Now().UTC()
		reservationID := dbtest.CreateTestReservation(t, s.DB, userID, propertyID,
			now.Add(12*time.Hour), now.Add(36*time.Hour), "confirmed", 300)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			reservationsURL+"/"+itoa(reservationID)+"/cancel", nil, s.token(userID))
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("Error case: cancelling twice conflicts", func() {
		t := s.T()

		agencyID := dbtest.CreateTestAgency(t, s.DB, "Riviera Stays")
		userID := dbtest.CreateTestUser(t, s.DB, "client@example.com", string(user.RoleClient))
		propertyID := dbtest.CreateTestProperty(t, s.DB, agencyID, "Seaside Villa", 100)
		reservationID := dbtest.CreateTestReservation(t, s.DB, userID, propertyID,
			checkIn(10), checkIn(13), "cancelled", 300)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			reservationsURL+"/"+itoa(reservationID)+"/cancel", nil, s.token(userID))
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

// =============================================================================
// TestPropertyCatalog - public endpoints
// =============================================================================

func (s *BookingSuite) TestPropertyCatalog() {
	s.Run("Normal case: only active properties are listed", func() {
		t := s.T()

		agencyID := dbtest.CreateTestAgency(t, s.DB, "Riviera Stays")
		dbtest.CreateTestProperty(t, s.DB, agencyID, "Seaside Villa", 100)
		dbtest.CreateInactiveProperty(t, s.DB, agencyID, "Shuttered Studio")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, propertiesURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var actual []response.PropertyListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Len(t, actual, 1)
		require.Equal(t, "Seaside Villa", actual[0].Title)
	})

	s.Run("Normal case: get by ID without a token", func() {
		t := s.T()

		agencyID := dbtest.CreateTestAgency(t, s.DB, "Riviera Stays")
		propertyID := dbtest.CreateTestProperty(t, s.DB, agencyID, "Seaside Villa", 100)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			propertiesURL+"/"+itoa(propertyID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.PropertyResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, "Riviera Stays", actual.AgencyName)
		require.Equal(t, 100.0, actual.TariffAmount)
	})

	s.Run("Error case: unknown property is 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, propertiesURL+"/99999", nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
