package main

import (
	"encoding/json"
	"fbs/src/common"
	"fbs/src/db"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type TestSuite struct {
	suite.Suite
	DB   *gorm.DB
	Mock sqlmock.Sqlmock
}

func NewMockDB() (*gorm.DB, sqlmock.Sqlmock) {
	sqldb, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqldb}), &gorm.Config{})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}

	return gormDB, mock
}

func (s *TestSuite) SetupSuite() {
	registerValidators()
}

// Every test gets a fresh mock so expectations never leak between tests.
func (s *TestSuite) SetupTest() {
	d, mock := NewMockDB()
	db.NewDB(d)
	s.DB = d
	s.Mock = mock
}

func (s *TestSuite) TestPingRoute() {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestMaintenanceMode() {
	os.Setenv("MAINTENANCE_MODE", "true")
	defer os.Setenv("MAINTENANCE_MODE", "false")

	router := setupRouter()
	router = maintenanceModeMiddleware(router)
	apiv1Group(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 503, w.Code)
}

func (s *TestSuite) TestAuthRoutes() {
	router := setupRouter()
	guestAuthRoutes(router)

	s.Run("Should reject registration without the signup secret", func() {
		jbody := map[string]any{
			"name":     "Admin",
			"email":    "admin@example.com",
			"password": "supersecret",
		}
		sbody, _ := json.Marshal(&jbody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/register", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 403, w.Code)
	})

	s.Run("Should reject login with a missing password", func() {
		jbody := map[string]any{
			"email": "admin@example.com",
		}
		sbody, _ := json.Marshal(&jbody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should return 404 for an unknown account", func() {
		s.Mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

		jbody := map[string]any{
			"email":    "nobody@example.com",
			"password": "whatever",
		}
		sbody, _ := json.Marshal(&jbody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 404, w.Code)
	})
}

func (s *TestSuite) TestBookingSubmission() {
	router := setupRouter()
	publicRoutes(router)

	validBody := func() map[string]any {
		return map[string]any{
			"flight":       uuid.NewString(),
			"full_name":    "Ada Lovelace",
			"email":        "ada@example.com",
			"passengers":   2,
			"seat_class":   "Economy",
			"seat_numbers": []string{"8A", "8B"},
		}
	}

	post := func(body map[string]any) *httptest.ResponseRecorder {
		sbody, _ := json.Marshal(&body)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)
		return w
	}

	s.Run("Should reject a seat count mismatch before any write", func() {
		body := validBody()
		body["seat_numbers"] = []string{"8A"}
		w := post(body)

		assert.Equal(s.T(), 400, w.Code)
		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		errMsg := gjson.Get(string(rbytes), "error").String()
		assert.Equal(s.T(), common.ErrSeatCountMismatch.Error(), errMsg)
		assert.Nil(s.T(), s.Mock.ExpectationsWereMet())
	})

	s.Run("Should reject a missing email", func() {
		body := validBody()
		delete(body, "email")
		w := post(body)

		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should reject a blank full name", func() {
		body := validBody()
		body["full_name"] = "   "
		w := post(body)

		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should reject a malformed flight id", func() {
		body := validBody()
		body["flight"] = "not-a-uuid"
		w := post(body)

		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should reject an unknown seat class", func() {
		body := validBody()
		body["seat_class"] = "Premium"
		w := post(body)

		assert.Equal(s.T(), 400, w.Code)
	})
}

func (s *TestSuite) TestFlightSearch() {
	router := setupRouter()
	publicRoutes(router)

	flightRows := func() *sqlmock.Rows {
		departure := time.Now().Add(24 * time.Hour)
		return sqlmock.NewRows([]string{
			"id", "airline", "flight_number", "origin", "destination",
			"scheduled_departure", "scheduled_arrival", "status", "seats",
		}).AddRow(
			uuid.NewString(), "Delta", "DL100", "JFK", "LAX",
			departure, departure.Add(6*time.Hour), "On Time", []byte("[]"),
		)
	}

	s.Run("Should reject an unknown search type", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/flights/search?type=bogus", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should reject a route search without a destination", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/flights/search?type=route&origin=JFK", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should return the matching flight for a route", func() {
		s.Mock.ExpectQuery(`SELECT (.+) FROM "flights"`).WillReturnRows(flightRows())

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/flights/search?type=route&origin=JFK&destination=LAX", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		sjson := string(rbytes)
		assert.Equal(s.T(), int64(1), gjson.Get(sjson, "count").Int())
		assert.Equal(s.T(), "DL100", gjson.Get(sjson, "data.0.flight_number").String())
	})

	s.Run("Should return an empty list for an unmatched route", func() {
		s.Mock.ExpectQuery(`SELECT (.+) FROM "flights"`).WillReturnRows(flightRows())

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/flights/search?type=route&origin=JFK&destination=SFO", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		sjson := string(rbytes)
		assert.Equal(s.T(), int64(0), gjson.Get(sjson, "count").Int())
		assert.Equal(s.T(), "no flights found", gjson.Get(sjson, "message").String())
	})
}

func (s *TestSuite) TestAdminRoutes() {
	router := setupRouter()
	adminRoutes(router)

	s.Run("Should reject a request without a token", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/admin/flights", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 401, w.Code)
		assert.Nil(s.T(), s.Mock.ExpectationsWereMet())
	})

	s.Run("Should reject a malformed token", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/admin/flights", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 401, w.Code)
	})
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
