package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"eventdeck/domain/core/entities"
	pkgerrors "eventdeck/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, zap.NewNop(), nil)
}

func TestClient_ListEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/events", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"title":"Jazz Night","startTime":"2025-06-14T19:00:00Z","endTime":"2025-06-14T22:00:00Z","createdBy":7,"categoryIds":[1,2]},
			{"id":2,"title":"Art Fair","startTime":"2025-06-15T10:00:00Z","endTime":"2025-06-15T18:00:00Z","createdBy":8,"categoryIds":null}
		]`))
	})

	events, err := client.ListEvents(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Jazz Night", events[0].Title)
	assert.Equal(t, entities.CategoryIDs{1, 2}, events[0].CategoryIDs)
	// null categoryIds decodes to an empty set rather than failing the
	// whole collection.
	assert.Empty(t, events[1].CategoryIDs)
}

func TestClient_GetEvent_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetEvent(context.Background(), 99)

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestClient_CreateEvent_SendsRecordAndDecodesResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/events", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var received entities.Event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, "Jazz Night", received.Title)

		received.ID = 42
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(received)
	})

	start := time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC)
	created, err := client.CreateEvent(context.Background(), entities.Event{
		Title:       "Jazz Night",
		StartTime:   start,
		EndTime:     start.Add(3 * time.Hour),
		CreatedBy:   7,
		CategoryIDs: entities.CategoryIDs{1},
	})

	require.NoError(t, err)
	assert.Equal(t, 42, created.ID)
}

func TestClient_UpdateEvent_PutsFullRecord(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/events/7", r.URL.Path)

		var received entities.Event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(received)
	})

	start := time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC)
	updated, err := client.UpdateEvent(context.Background(), entities.Event{
		ID:          7,
		Title:       "Jazz Night (moved)",
		StartTime:   start,
		EndTime:     start.Add(3 * time.Hour),
		CreatedBy:   7,
		CategoryIDs: entities.CategoryIDs{1},
	})

	require.NoError(t, err)
	assert.Equal(t, "Jazz Night (moved)", updated.Title)
}

func TestClient_DeleteEvent_SurfacesNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
	})

	err := client.DeleteEvent(context.Background(), 99)

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestClient_APIErrorCarriesStatusAndMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"title too long"}`))
	})

	_, err := client.ListEvents(context.Background())

	require.Error(t, err)
	assert.True(t, pkgerrors.IsAPI(err))
	assert.Equal(t, http.StatusUnprocessableEntity, pkgerrors.APIStatus(err))
	assert.Contains(t, pkgerrors.GetAppError(err).Message, "title too long")
}

func TestClient_UnreachableStoreIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	client := NewClient(server.URL, zap.NewNop(), nil)

	_, err := client.ListEvents(context.Background())

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNetwork(err))
}

func TestClient_MalformedResponseIsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})

	_, err := client.ListEvents(context.Background())

	require.Error(t, err)
	assert.True(t, pkgerrors.IsAPI(err))
}

func TestClient_CreateUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users", r.URL.Path)

		var received entities.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		received.ID = 12
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(received)
	})

	user, err := client.CreateUser(context.Background(), "Grace")

	require.NoError(t, err)
	assert.Equal(t, 12, user.ID)
	assert.Equal(t, "Grace", user.Name)
}

func TestClient_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := client.ListEvents(ctx)
		done <- err
	}()

	<-started
	cancel()

	err := <-done
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNetwork(err))
}
