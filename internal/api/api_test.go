package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mbellini/foodly/backend/internal/models"
)

const testJWTSecret = "test-secret"

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserSettings{},
		&models.Food{},
		&models.PantryEntry{},
		&models.ConsumptionLog{},
	))
	settings := models.UserSettings{
		ID: models.SettingsID, WeightKg: 70, HeightCm: 175, Age: 30, Sex: "M", ActivityLevel: 1.5,
	}
	require.NoError(t, db.Create(&settings).Error)

	router := gin.New()
	SetupAPI(router, db, nil, testJWTSecret)
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": "Marco", "email": "marco@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterAndLoginEndpoints(t *testing.T) {
	router, _ := setupRouter(t)
	registerUser(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "marco@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "marco@example.com", "password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": "Other", "email": "marco@example.com", "password": "password456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/summary?date=2024-05-01", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/summary?date=2024-05-01", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestConsumeEndpoint(t *testing.T) {
	router, db := setupRouter(t)
	token := registerUser(t, router)

	food := models.Food{Name: "Tuna in water", Kcal100g: 116, Prot100g: 25.5, Fat100g: 1}
	require.NoError(t, db.Create(&food).Error)

	w := doJSON(t, router, http.MethodPost, "/api/v1/pantry", token, gin.H{
		"food_id": food.ID, "qty_g": 200.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/consume", token, gin.H{
		"food_id": food.ID, "grams": 150.0, "meal": "lunch",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var entry models.PantryEntry
	require.NoError(t, db.First(&entry, "food_id = ?", food.ID).Error)
	assert.Equal(t, 50.0, entry.QtyG)
}

func TestConsumeEndpointErrors(t *testing.T) {
	router, _ := setupRouter(t)
	token := registerUser(t, router)

	// Missing grams fails binding.
	w := doJSON(t, router, http.MethodPost, "/api/v1/consume", token, gin.H{"food_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown food.
	w = doJSON(t, router, http.MethodPost, "/api/v1/consume", token, gin.H{
		"food_id": 999, "grams": 100.0,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Bad meal type.
	w = doJSON(t, router, http.MethodPost, "/api/v1/consume", token, gin.H{
		"food_id": 999, "grams": 100.0, "meal": "brunch",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSummaryEndpoint(t *testing.T) {
	router, _ := setupRouter(t)
	token := registerUser(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/v1/summary?date=2024-05-01", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		Date    string `json:"date"`
		Targets struct {
			Kcal float64 `json:"kcal"`
		} `json:"targets"`
		Totals struct {
			Kcal float64 `json:"kcal"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, "2024-05-01", summary.Date)
	assert.Greater(t, summary.Targets.Kcal, 0.0)
	assert.Zero(t, summary.Totals.Kcal)

	w = doJSON(t, router, http.MethodGet, "/api/v1/summary?date=May+1st", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFoodEndpoints(t *testing.T) {
	router, _ := setupRouter(t)
	token := registerUser(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/v1/foods", token, gin.H{
		"name": "Basmati rice", "kcal_100g": 360.0, "carb_100g": 78.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Food
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/foods/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/foods/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// A whitespace-only name passes binding but must still come back 400.
	w = doJSON(t, router, http.MethodPost, "/api/v1/foods", token, gin.H{
		"name": "   ", "kcal_100g": 100.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/foods/search?q=rice", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var results []json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.Len(t, results, 1)
}

func TestSuggestEndpoint(t *testing.T) {
	router, db := setupRouter(t)
	token := registerUser(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/v1/suggest?date=2024-05-01", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var empty struct {
		Options []json.RawMessage `json:"options"`
		Note    string            `json:"note"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &empty))
	assert.Empty(t, empty.Options)
	assert.NotEmpty(t, empty.Note)

	food := models.Food{Name: "Basmati rice", Kcal100g: 360, Carb100g: 78}
	require.NoError(t, db.Create(&food).Error)
	w = doJSON(t, router, http.MethodPost, "/api/v1/pantry", token, gin.H{
		"food_id": food.ID, "qty_g": 500.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/suggest?date=2024-05-01", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stocked struct {
		Options []struct {
			Grams float64 `json:"grams"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stocked))
	require.NotEmpty(t, stocked.Options)
	assert.Greater(t, stocked.Options[0].Grams, 0.0)
}

func TestSettingsEndpoints(t *testing.T) {
	router, _ := setupRouter(t)
	token := registerUser(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/v1/settings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/v1/settings", token, gin.H{
		"weight_kg": 80.0, "height_cm": 180.0, "age": 35, "sex": "M", "activity_level": 1.7,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.UserSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 80.0, updated.WeightKg)

	// Targets reflect the update.
	w = doJSON(t, router, http.MethodGet, "/api/v1/targets", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestChatEndpoint(t *testing.T) {
	router, db := setupRouter(t)
	token := registerUser(t, router)

	food := models.Food{Name: "Tuna in water", Kcal100g: 116, Prot100g: 25.5}
	require.NoError(t, db.Create(&food).Error)
	w := doJSON(t, router, http.MethodPost, "/api/v1/pantry", token, gin.H{
		"food_id": food.ID, "qty_g": 200.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/chat", token, gin.H{
		"user_message": "I ate 150 g of tuna", "date": "2024-05-01",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Actions []struct {
			Name string `json:"name"`
		} `json:"actions"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Actions, 1)
	assert.Equal(t, "consume", resp.Actions[0].Name)
	assert.Contains(t, resp.Message, "Today:")
}
