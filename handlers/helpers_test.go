package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Ashik0101/food-delivery-app/config"
	"github.com/Ashik0101/food-delivery-app/handlers"
	"github.com/Ashik0101/food-delivery-app/models"
	"github.com/Ashik0101/food-delivery-app/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires a fresh database and the full route table for one test.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	config.DB = db

	handlers.RegisterValidators()

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func testAddress() map[string]interface{} {
	return map[string]interface{}{
		"street":  "12 Baker St",
		"city":    "Pune",
		"state":   "MH",
		"country": "India",
		"zip":     "411001",
	}
}

// registerAndLogin creates a user and returns its id and a bearer token.
func registerAndLogin(t *testing.T, r *gin.Engine, name, email, password string) (uint, string) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/register", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": password,
		"address":  testAddress(),
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	userID := uint(body["user"].(map[string]interface{})["id"].(float64))

	w = doJSON(t, r, http.MethodPost, "/login", map[string]interface{}{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token := decodeBody(t, w)["token"].(string)

	return userID, token
}

// addRestaurant creates a restaurant with one menu item and returns its id.
func addRestaurant(t *testing.T, r *gin.Engine, name string) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/restaurants", map[string]interface{}{
		"name":    name,
		"address": testAddress(),
		"menu": []map[string]interface{}{
			{"name": "Tea", "description": "hot", "price": 2, "image": "t.png"},
		},
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	return uint(body["restaurant"].(map[string]interface{})["id"].(float64))
}
