package meevo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"backbar/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanOpenings(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/scan/openings", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":[{"serviceOpenings":[
			{"startTime":"2026-03-05T10:00:00","endTime":"2026-03-05T10:30:00","serviceId":"svc","serviceName":"Haircut","employeePrice":30},
			{"startTime":"2026-03-05T10:20:00","endTime":"2026-03-05T10:50:00","serviceId":"svc","serviceName":"Haircut","employeePrice":null}
		]}]}`)
	}))
	defer srv.Close()

	client := &Client{APIURLV2: srv.URL, TenantID: "200507", HTTP: srv.Client()}
	openings, err := client.ScanOpenings(context.Background(), "token-123", models.ScanQuery{
		StylistID:  "stylist-id",
		ServiceID:  "svc",
		LocationID: "201664",
		StartDate:  "2026-03-05",
		EndDate:    "2026-03-05",
		Window:     models.TimeWindow{Start: "10:00", End: "12:00"},
	})

	require.NoError(t, err)
	require.Len(t, openings, 2)
	assert.Equal(t, "2026-03-05T10:00:00", openings[0].StartTime)
	require.NotNil(t, openings[0].EmployeePrice)
	assert.Equal(t, 30.0, *openings[0].EmployeePrice)
	assert.Nil(t, openings[1].EmployeePrice)

	assert.Equal(t, float64(201664), gotBody["LocationId"])
	assert.Equal(t, float64(200507), gotBody["TenantId"])
	assert.Equal(t, float64(1), gotBody["ScanDateType"])
	assert.Equal(t, "10:00", gotBody["StartTime"])
	assert.Equal(t, "12:00", gotBody["EndTime"])
}

func TestScanOpeningsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := &Client{APIURLV2: srv.URL, TenantID: "200507", HTTP: srv.Client()}
	_, err := client.ScanOpenings(context.Background(), "token", models.ScanQuery{LocationID: "201664"})
	assert.Error(t, err)
}

func TestToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "client-id")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"access_token":"fresh-token","expires_in":3600}`)
	}))
	defer srv.Close()

	client := &Client{AuthURL: srv.URL, ClientID: "client-id", ClientSecret: "secret", HTTP: srv.Client()}
	token, err := client.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
}

func TestTokenFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := &Client{AuthURL: srv.URL, HTTP: srv.Client()}
	_, err := client.Token(context.Background())
	assert.Error(t, err)
}

func TestTokenEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	client := &Client{AuthURL: srv.URL, HTTP: srv.Client()}
	_, err := client.Token(context.Background())
	assert.Error(t, err)
}

func TestActiveEmployees(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/employees", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":[
			{"id":"emp-1","firstName":"Alexandra","nickName":"Alex","objectState":2026},
			{"id":"emp-2","firstName":"Jordan","nickName":"","objectState":2026},
			{"id":"emp-3","firstName":"Test","nickName":"Test","objectState":2026},
			{"id":"emp-4","firstName":"Morgan","nickName":"Mo","objectState":1}
		]}`)
	}))
	defer srv.Close()

	client := &Client{APIURL: srv.URL, TenantID: "200507", LocationID: "201664", HTTP: srv.Client()}
	roster, err := client.ActiveEmployees(context.Background(), "token")
	require.NoError(t, err)

	// Inactive and placeholder accounts are filtered; nicknames win.
	require.Len(t, roster.Employees, 2)
	assert.Equal(t, "Alex", roster.Employees[0].Name)
	assert.Equal(t, "Jordan", roster.Employees[1].Name)
}

func TestActiveEmployeesFetchFailureDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := &Client{APIURL: srv.URL, TenantID: "200507", LocationID: "201664", HTTP: srv.Client()}
	roster, err := client.ActiveEmployees(context.Background(), "token")

	// No cached roster to fall back to: the request continues with an empty one.
	require.NoError(t, err)
	assert.Empty(t, roster.Employees)
}
