package datasource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestKRAClient(t *testing.T, handler http.HandlerFunc) (*KRAClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	httpCfg := DefaultHTTPClientConfig()
	httpCfg.MaxRetries = 0
	httpCfg.RateLimit = 1000
	client := NewKRAClient(NewRateLimitedHTTPClient(httpCfg, testLogger()), srv.URL, "test-key", 100, testLogger())
	return client, srv
}

func envelope(items string) string {
	return fmt.Sprintf(`{"response":{"header":{"resultCode":"00"},"body":{"items":{"item":%s}}}}`, items)
}

func TestKRAClientCollectDay(t *testing.T) {
	client, _ := newTestKRAClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("serviceKey"))
		assert.Equal(t, "json", r.URL.Query().Get("_type"))

		switch {
		case r.URL.Path == entrySheetPath:
			assert.Equal(t, "20250104", r.URL.Query().Get("rc_date"))
			assert.Equal(t, "1", r.URL.Query().Get("meet"))
			fmt.Fprint(w, envelope(`[{"rcNo":1,"hrNo":3,"hrName":"번개","wgHr":"480(+4)","s1f_1":13.2}]`))
		case r.URL.Path == dailyTrainingPath:
			fmt.Fprint(w, envelope(`[{"hrName":"번개","trGbn":"강"}]`))
		case r.URL.Path == raceResultPath:
			fmt.Fprint(w, envelope(`[{"rcDate":"20250104","rcNo":1,"hrName":"번개","ord":1}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	day, err := client.CollectDay(context.Background(), "20250104", "서울")
	require.NoError(t, err)

	require.Len(t, day.Entries, 1)
	assert.Equal(t, "번개", day.Entries[0]["hrName"])
	assert.Equal(t, "1", day.Entries[0]["rcNo"])
	assert.Equal(t, "13.2", day.Entries[0]["s1f_1"])

	// 7 lookback days, one row each
	assert.Len(t, day.Training, 7)
	require.Len(t, day.Results, 1)

	// weights derive from the entry sheet
	require.Len(t, day.Weights, 1)
	assert.Equal(t, "480(+4)", day.Weights[0]["weight"])
}

func TestKRAClientSingleItemObject(t *testing.T) {
	client, _ := newTestKRAClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == raceResultPath {
			fmt.Fprint(w, envelope(`{"rcDate":"20250104","hrName":"단건","ord":2}`))
			return
		}
		fmt.Fprint(w, envelope(`[]`))
	})

	day, err := client.CollectDay(context.Background(), "20250104", "서울")
	require.NoError(t, err)
	require.Len(t, day.Results, 1)
	assert.Equal(t, "단건", day.Results[0]["hrName"])
}

func TestKRAClientResultsDateMismatchDiscarded(t *testing.T) {
	client, _ := newTestKRAClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == raceResultPath {
			// API ignored the requested date and returned a newer day
			fmt.Fprint(w, envelope(`[{"rcDate":"20250111","hrName":"엉뚱","ord":1}]`))
			return
		}
		fmt.Fprint(w, envelope(`[]`))
	})

	day, err := client.CollectDay(context.Background(), "20250104", "서울")
	require.NoError(t, err)
	assert.Empty(t, day.Results)
}

func TestKRAClientEmptyItemsIsNotAnError(t *testing.T) {
	client, _ := newTestKRAClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response":{"header":{"resultCode":"00"},"body":{"items":""}}}`)
	})

	day, err := client.CollectDay(context.Background(), "20250104", "서울")
	require.NoError(t, err)
	assert.Empty(t, day.Entries)
	assert.True(t, day.Empty())
}

func TestKRAClientAuthFailure(t *testing.T) {
	client, _ := newTestKRAClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.CollectDay(context.Background(), "20250104", "서울")
	require.Error(t, err)

	var dsErr DataSourceError
	require.ErrorAs(t, err, &dsErr)
	assert.Equal(t, ErrCodeAuthenticationFailed, dsErr.Code)
}

func TestKRAClientUnknownTrack(t *testing.T) {
	client, _ := newTestKRAClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.CollectDay(context.Background(), "20250104", "ascot")
	require.Error(t, err)
}
