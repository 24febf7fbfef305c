package dto

import (
	"encoding/json"
	"testing"
	"time"

	"storerating/internal/microservices/http-api/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationJSON(t *testing.T) {
	p := NewPagination("Ratings", 21, 2, 10)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"currentPage":2,"totalPages":3,"totalRatings":21,"limit":10}`, string(raw))

	empty, err := json.Marshal(NewPagination("Stores", 0, 1, 10))
	require.NoError(t, err)
	assert.JSONEq(t, `{"currentPage":1,"totalPages":0,"totalStores":0,"limit":10}`, string(empty))
}

func TestFormatAverage(t *testing.T) {
	assert.Equal(t, "0.0", FormatAverage(0))
	assert.Equal(t, "4.5", FormatAverage(4.5))
	assert.Equal(t, "3.7", FormatAverage(11.0/3.0))
	assert.Equal(t, "5.0", FormatAverage(5))
}

func TestFormatAverageRoundsBinaryValue(t *testing.T) {
	assert.Equal(t, "4.3", FormatAverage(87.0/20.0))
	assert.Equal(t, "1.1", FormatAverage(23.0/20.0))
	assert.Equal(t, "4.3", FormatAverage(4.25))
}

func TestStrongPassword(t *testing.T) {
	tests := map[string]bool{
		"Admin123!":         true,
		"Aa!aaaaa":          true,
		"Aa!aaaa":           false, // too short
		"Aa!aaaaaaaaaaaaaa": false, // 17 chars
		"admin123!":         false, // no uppercase
		"Admin1234":         false, // no special
		"Admin123?":         false, // ? is not an accepted special
	}
	for pw, want := range tests {
		assert.Equal(t, want, StrongPassword(pw), pw)
	}
}

func TestRegisterValidatorsBindsRule(t *testing.T) {
	RegisterValidators()
	RegisterValidators()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	good := RegisterRequest{Name: "A Name That Is Long Enough", Email: "a@example.com", Password: "Store123!"}
	assert.NoError(t, v.Struct(good))

	weak := good
	weak.Password = "weakpass"
	assert.Error(t, v.Struct(weak))

	short := good
	short.Name = "Too short"
	assert.Error(t, v.Struct(short))
}

func TestRatingResponseOmitsMissingJoins(t *testing.T) {
	resp := FromRating(&models.Rating{ID: 1, UserID: 2, StoreID: 3, Rating: 4, CreatedAt: time.Unix(0, 0).UTC()})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.NotContains(t, m, "store_name")
	assert.NotContains(t, m, "user_email")
	assert.Contains(t, m, "comment")
	assert.Nil(t, m["comment"])
}

func TestUserResponseHasNoPassword(t *testing.T) {
	raw, err := json.Marshal(FromUser(&models.User{ID: 1, Name: "n", Email: "e", Password: "hash", Role: models.RoleUser}))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
	assert.NotContains(t, string(raw), "password")
}
