package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginInstallsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "jenna@example.com", payload["email"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"user":         map[string]interface{}{"id": 1, "name": "Jenna", "email": "jenna@example.com"},
			"access_token": "token-123",
		})
	}))
	defer server.Close()

	c := New(server.URL)
	session, err := c.Login("jenna@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, uint(1), session.UserID)
	assert.Equal(t, "Jenna", session.Name)
	assert.Equal(t, "token-123", c.token)
}

func TestListMealsSendsBearerAndOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/meals/", r.URL.Path)
		assert.Equal(t, "name", r.URL.Query().Get("order"))
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"meals": []map[string]interface{}{
				{"id": 1, "name": "Rice", "category": "carb"},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("token-123")
	meals, err := c.ListMeals()

	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "Rice", meals[0].Name)
}

func TestCreateLogOmitsAbsentFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/logs/", r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Contains(t, payload, "meal_id")
		assert.NotContains(t, payload, "restaurant_id")
		assert.NotContains(t, payload, "rating")
		assert.NotContains(t, payload, "notes")

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"log": map[string]interface{}{"id": 9, "meal_id": 1},
		})
	}))
	defer server.Close()

	mealID := uint(1)
	c := New(server.URL)
	log, err := c.CreateLog(LogInput{MealID: &mealID, EatenAt: time.Now()})

	require.NoError(t, err)
	assert.Equal(t, uint(9), log.ID)
}

func TestErrorEnvelopeSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Exactly one of meal_id or restaurant_id must be set"})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.CreateLog(LogInput{EatenAt: time.Now()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Exactly one of meal_id or restaurant_id must be set")
	assert.Contains(t, err.Error(), "400")
}

func TestLoadAllJoinsAllThree(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/meals/":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"meals": []map[string]interface{}{{"id": 1, "name": "Rice", "category": "carb"}},
			})
		case "/restaurants/":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"restaurants": []map[string]interface{}{{"id": 1, "name": "Thai Palace", "cuisine_type": "Thai"}},
			})
		case "/logs/":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"logs": []map[string]interface{}{},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	c := New(server.URL)
	snap, err := c.LoadAll()

	require.NoError(t, err)
	assert.Len(t, snap.Meals, 1)
	assert.Len(t, snap.Restaurants, 1)
	assert.Empty(t, snap.Logs)
}

func TestLoadAllFailsWhenAnyFetchFails(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.URL.Path == "/logs/" {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"meals": []interface{}{}, "restaurants": []interface{}{}})
	}))
	defer server.Close()

	c := New(server.URL)
	snap, err := c.LoadAll()

	require.Error(t, err)
	assert.Nil(t, snap)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDeleteMealUsesPathID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/meals/42", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"message": "Meal deleted successfully"})
	}))
	defer server.Close()

	c := New(server.URL)
	require.NoError(t, c.DeleteMeal(42))
}
