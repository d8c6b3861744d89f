package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hongminglow/shift-assign/internal/models"
	"github.com/hongminglow/shift-assign/internal/models/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080")
	assert.Equal(t, "http://localhost:8080", client.BaseURL())
	assert.NotNil(t, client.httpClient)
	assert.Zero(t, client.httpClient.Timeout)
}

func TestClient_ListMembers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/members", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{"id":2,"name":"Sam","phone":"2","assignedHours":32,"leaveHours":4,"status":"Red Flag"},
				{"id":1,"name":"Jane","phone":"1"}
			]`))
		}))
		defer server.Close()

		members, err := NewClient(server.URL).ListMembers(context.Background())

		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, int64(2), members[0].ID)
		assert.Equal(t, models.StatusRedFlag, members[0].Status)
		// No client-side defaults on list.
		assert.Equal(t, models.Member{ID: 1, Name: "Jane", Phone: "1"}, members[1])
	})

	t.Run("Non2xxStatus", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"code":503}`, http.StatusServiceUnavailable)
		}))
		defer server.Close()

		members, err := NewClient(server.URL).ListMembers(context.Background())

		assert.Nil(t, members)
		var reqErr *RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, http.StatusServiceUnavailable, reqErr.StatusCode)
		assert.Equal(t, "Service Unavailable", reqErr.StatusText)
		assert.Equal(t, "Failed to fetch members: Service Unavailable", err.Error())
	})

	t.Run("NetworkError", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		_, err := NewClient(url).ListMembers(context.Background())

		var netErr *NetworkError
		require.ErrorAs(t, err, &netErr)
		assert.Equal(t, "list members", netErr.Op)
		assert.NotNil(t, errors.Unwrap(err))
	})

	t.Run("InvalidJSONResponse", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("invalid json"))
		}))
		defer server.Close()

		_, err := NewClient(server.URL).ListMembers(context.Background())
		assert.Error(t, err)
	})
}

func TestClient_CreateMember(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/members", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req dto.CreateMemberRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, dto.CreateMemberRequest{Name: "Jane Doe", Phone: "555-0100"}, req)

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":1,"name":"Jane Doe","phone":"555-0100"}`))
		}))
		defer server.Close()

		created, err := NewClient(server.URL).CreateMember(context.Background(), "Jane Doe", "555-0100")

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, int64(1), created.ID)
		assert.Nil(t, created.AssignedHours)
		assert.Nil(t, created.LeaveHours)
		assert.Nil(t, created.Status)
	})

	t.Run("Non2xxStatus", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		_, err := NewClient(server.URL).CreateMember(context.Background(), "a", "b")

		var reqErr *RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "Failed to create member: Bad Request", reqErr.Error())
	})

	t.Run("NetworkError", func(t *testing.T) {
		_, err := NewClient(closedServerURL()).CreateMember(context.Background(), "a", "b")

		var netErr *NetworkError
		require.ErrorAs(t, err, &netErr)
		assert.Equal(t, "create member", netErr.Op)
		assert.NotNil(t, netErr.Unwrap())
	})

	t.Run("InvalidJSONResponse", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte("{broken"))
		}))
		defer server.Close()

		created, err := NewClient(server.URL).CreateMember(context.Background(), "a", "b")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode member response")
		assert.Equal(t, dto.MemberResponse{}, created)
		var netErr *NetworkError
		var reqErr *RequestError
		assert.False(t, errors.As(err, &netErr))
		assert.False(t, errors.As(err, &reqErr))
	})
}

func TestClient_DeleteMember(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/members/42", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		assert.NoError(t, NewClient(server.URL).DeleteMember(context.Background(), 42))
	})

	t.Run("Non2xxStatus", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		err := NewClient(server.URL).DeleteMember(context.Background(), 42)

		var reqErr *RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
		assert.Equal(t, "Failed to delete member", err.Error())
	})

	t.Run("NetworkError", func(t *testing.T) {
		err := NewClient(closedServerURL()).DeleteMember(context.Background(), 42)

		var netErr *NetworkError
		require.ErrorAs(t, err, &netErr)
		assert.Equal(t, "delete member", netErr.Op)
	})
}

// closedServerURL returns an address that refuses connections.
func closedServerURL() string {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	return url
}

func TestStatusTextFallback(t *testing.T) {
	resp := &http.Response{StatusCode: http.StatusTeapot, Status: "418"}
	assert.Equal(t, "I'm a teapot", statusText(resp))
}
