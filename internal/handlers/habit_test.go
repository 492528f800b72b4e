package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mbellard/habit-tracker-api/internal/constants"
	"github.com/mbellard/habit-tracker-api/internal/models"
	"github.com/mbellard/habit-tracker-api/internal/repository"
	"github.com/mbellard/habit-tracker-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// HabitHandlerTestSuite defines the test suite for HabitHandler
type HabitHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *HabitHandler
	router  *gin.Engine
	userID  string
}

// SetupTest runs before each test
func (suite *HabitHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Habit{},
		&models.HabitEntry{},
	)
	suite.Require().NoError(err)

	habitRepo := repository.NewHabitRepository(suite.db)
	entryRepo := repository.NewEntryRepository(suite.db)
	suite.handler = NewHabitHandler(services.NewHabitService(habitRepo, entryRepo))

	user := suite.createTestUser("habit-suite@example.com")
	suite.userID = user.ID

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	// Router with a stub auth middleware injecting the suite user
	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, suite.userID)
	})
	suite.router.POST("/api/habits", suite.handler.CreateHabit)
	suite.router.GET("/api/habits", suite.handler.ListHabits)
	suite.router.GET("/api/habits/:id", suite.handler.GetHabit)
	suite.router.GET("/api/habits/:id/streak", suite.handler.GetStreak)
	suite.router.PATCH("/api/habits/:id", suite.handler.UpdateHabit)
	suite.router.DELETE("/api/habits/:id", suite.handler.DeleteHabit)
}

// TearDownTest runs after each test
func (suite *HabitHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper functions to create test data
func (suite *HabitHandlerTestSuite) createTestUser(email string) *models.User {
	user := &models.User{
		Email:        email,
		PasswordHash: "hashedpassword",
		FirstName:    "Test",
		LastName:     "User",
	}
	suite.db.Create(user)
	return user
}

func (suite *HabitHandlerTestSuite) createTestHabit(title string, userID string) *models.Habit {
	habit := &models.Habit{
		UserID:       userID,
		Title:        title,
		Color:        "#3366FF",
		WeeklyTarget: 1,
	}
	suite.db.Create(habit)
	return habit
}

func (suite *HabitHandlerTestSuite) serve(method, url string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HabitHandlerTestSuite) TestCreateHabit_Success() {
	body := []byte(`{"title": "Read", "color": "#3366FF"}`)
	w := suite.serve("POST", "/api/habits", body)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Read", response["title"])
	assert.Equal(suite.T(), float64(1), response["weekly_target"])
	assert.NotEmpty(suite.T(), response["id"])
}

func (suite *HabitHandlerTestSuite) TestCreateHabit_InvalidColor() {
	body := []byte(`{"title": "Read", "color": "blue"}`)
	w := suite.serve("POST", "/api/habits", body)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *HabitHandlerTestSuite) TestCreateHabit_InvalidWeeklyTarget() {
	body := []byte(`{"title": "Read", "color": "#3366FF", "weekly_target": 8}`)
	w := suite.serve("POST", "/api/habits", body)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *HabitHandlerTestSuite) TestListHabits_OnlyOwn() {
	suite.createTestHabit("Mine", suite.userID)
	other := suite.createTestUser("other@example.com")
	suite.createTestHabit("Theirs", other.ID)

	w := suite.serve("GET", "/api/habits", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)

	habits := response["habits"].([]interface{})
	assert.Len(suite.T(), habits, 1)
	assert.Equal(suite.T(), "Mine", habits[0].(map[string]interface{})["title"])
}

func (suite *HabitHandlerTestSuite) TestGetHabit_NotOwned() {
	other := suite.createTestUser("stranger@example.com")
	habit := suite.createTestHabit("Theirs", other.ID)

	w := suite.serve("GET", "/api/habits/"+habit.ID, nil)

	// Foreign habits read as missing, not forbidden.
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *HabitHandlerTestSuite) TestUpdateHabit_PartialUpdate() {
	habit := suite.createTestHabit("Meditate", suite.userID)

	body := []byte(`{"color": "#AABBCC"}`)
	w := suite.serve("PATCH", "/api/habits/"+habit.ID, body)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "#AABBCC", response["color"])
	assert.Equal(suite.T(), "Meditate", response["title"])
	assert.Equal(suite.T(), float64(1), response["weekly_target"])
	assert.Nil(suite.T(), response["archived_at"])
}

func (suite *HabitHandlerTestSuite) TestUpdateHabit_ArchiveThenClear() {
	habit := suite.createTestHabit("Run", suite.userID)

	w := suite.serve("PATCH", "/api/habits/"+habit.ID, []byte(`{"archived_at": "2024-06-01T10:00:00Z"}`))
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response["archived_at"])

	// Explicit null clears the archival mark.
	w = suite.serve("PATCH", "/api/habits/"+habit.ID, []byte(`{"archived_at": null}`))
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), response["archived_at"])
}

func (suite *HabitHandlerTestSuite) TestDeleteHabit_RemovesEntries() {
	habit := suite.createTestHabit("Stretch", suite.userID)
	suite.db.Create(&models.HabitEntry{HabitID: habit.ID, Date: "2024-06-03"})
	suite.db.Create(&models.HabitEntry{HabitID: habit.ID, Date: "2024-06-04"})

	w := suite.serve("DELETE", "/api/habits/"+habit.ID, nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)

	var entryCount int64
	suite.db.Model(&models.HabitEntry{}).Where("habit_id = ?", habit.ID).Count(&entryCount)
	assert.Zero(suite.T(), entryCount)
}

func (suite *HabitHandlerTestSuite) TestGetStreak_NoEntries() {
	habit := suite.createTestHabit("Walk", suite.userID)

	w := suite.serve("GET", fmt.Sprintf("/api/habits/%s/streak", habit.ID), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), float64(0), response["streak"])
	assert.Equal(suite.T(), habit.ID, response["habit_id"])
}

func (suite *HabitHandlerTestSuite) TestGetStreak_PreviousWeekMeetsTarget() {
	habit := suite.createTestHabit("Walk", suite.userID)

	prevMonday := services.StartOfWeek(time.Now().UTC()).AddDate(0, 0, -7)
	suite.db.Create(&models.HabitEntry{
		HabitID: habit.ID,
		Date:    prevMonday.Format(models.DateLayout),
	})

	w := suite.serve("GET", fmt.Sprintf("/api/habits/%s/streak", habit.ID), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), float64(1), response["streak"])
}

func TestHabitHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HabitHandlerTestSuite))
}
