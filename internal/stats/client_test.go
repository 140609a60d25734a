package stats

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventhub/internal/model"
	apperrors "eventhub/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_RecordHit(t *testing.T) {
	var got model.EndpointHit
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/hit", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL+"/", time.Second, nil)
	ts := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	err := client.RecordHit(t.Context(), model.EndpointHit{
		App:       "main-service",
		URI:       "/events/1",
		IP:        "10.0.0.1",
		Timestamp: model.DateTime(ts),
	})
	require.NoError(t, err)
	assert.Equal(t, "/events/1", got.URI)
	assert.True(t, got.Timestamp.Time().Equal(ts))
}

func TestHTTPClient_ViewCounts(t *testing.T) {
	t.Run("Success - sends window and uris", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "/stats", r.URL.Path)
			assert.Equal(t, "2030-01-01 00:00:00", q.Get("start"))
			assert.Equal(t, "2030-01-02 00:00:00", q.Get("end"))
			assert.Equal(t, []string{"/events/1", "/events/2"}, q["uris"])
			assert.Equal(t, "true", q.Get("unique"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"app":"main-service","uri":"/events/1","hits":4}]`))
		}))
		defer srv.Close()

		client := NewHTTPClient(srv.URL, time.Second, nil)
		rows, err := client.ViewCounts(t.Context(), model.ViewStatsQuery{
			Start:  time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
			End:    time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC),
			URIs:   []string{"/events/1", "/events/2"},
			Unique: true,
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(4), rows[0].Hits)
	})

	t.Run("Failed - server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewHTTPClient(srv.URL, time.Second, nil)
		_, err := client.ViewCounts(t.Context(), model.ViewStatsQuery{
			Start: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, apperrors.ErrStatsUnavailable)
	})

	t.Run("Failed - unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		client := NewHTTPClient(url, time.Second, nil)
		_, err := client.ViewCounts(t.Context(), model.ViewStatsQuery{
			Start: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, apperrors.ErrStatsUnavailable)
	})

	t.Run("Failed - start after end", func(t *testing.T) {
		client := NewHTTPClient("http://127.0.0.1:1", time.Second, nil)
		_, err := client.ViewCounts(t.Context(), model.ViewStatsQuery{
			Start: time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidRange)
	})
}
