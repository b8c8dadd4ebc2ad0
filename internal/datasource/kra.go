package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/paddock-edge/internal/models"
)

// Open-data portal endpoints for the Korean racing API.
const (
	entrySheetPath    = "/API26_2/entrySheet_2"
	dailyTrainingPath = "/API18_1/dailyTraining_1"
	raceResultPath    = "/API155/raceResult"
	horseInfoPath     = "/API3/horseInfo"
)

// trainingLookbackDays is how far before race day the weekly training sheet
// reaches back.
const trainingLookbackDays = 7

// KRAClient implements Collector against the public racing open API.
type KRAClient struct {
	httpClient  *RateLimitedHTTPClient
	baseURL     string
	apiKey      string
	rowsPerPage int
	logger      *logrus.Logger
}

// NewKRAClient creates a new open-API collector.
func NewKRAClient(httpClient *RateLimitedHTTPClient, baseURL, apiKey string, rowsPerPage int, logger *logrus.Logger) *KRAClient {
	if rowsPerPage <= 0 {
		rowsPerPage = 100
	}
	return &KRAClient{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		rowsPerPage: rowsPerPage,
		logger:      logger,
	}
}

// Name returns the data source name
func (c *KRAClient) Name() string {
	return "kra"
}

// CollectDay retrieves entries, training, results and weights for one race
// day. Sheets the API has no data for come back empty, not as errors; only
// transport failures are raised.
func (c *KRAClient) CollectDay(ctx context.Context, date, track string) (*models.RaceDay, error) {
	meet, err := TrackCode(track)
	if err != nil {
		return nil, err
	}

	entries, err := c.callAPI(ctx, entrySheetPath, url.Values{
		"rc_date": {date},
		"meet":    {meet},
	}, "entries")
	if err != nil {
		return nil, err
	}

	training, err := c.fetchTrainingWeek(ctx, date, meet)
	if err != nil {
		return nil, err
	}

	results, err := c.fetchResults(ctx, date, meet)
	if err != nil {
		return nil, err
	}

	day := &models.RaceDay{
		Date:     date,
		Track:    track,
		Entries:  entries,
		Training: training,
		Results:  results,
		Weights:  weightsFromEntries(entries),
	}
	return day, nil
}

// fetchTrainingWeek collects daily training sheets for the week leading up to
// race day.
func (c *KRAClient) fetchTrainingWeek(ctx context.Context, date, meet string) (models.Table, error) {
	raceDay, err := time.Parse("20060102", date)
	if err != nil {
		return nil, NewDataSourceError(c.Name(), ErrCodeInvalidData, "invalid race date "+date, err)
	}

	var week models.Table
	for i := 0; i < trainingLookbackDays; i++ {
		trDate := raceDay.AddDate(0, 0, -i).Format("20060102")
		rows, err := c.callAPI(ctx, dailyTrainingPath, url.Values{
			"tr_date": {trDate},
			"meet":    {meet},
		}, "training")
		if err != nil {
			return nil, err
		}
		week = append(week, rows...)
	}
	return week, nil
}

// fetchResults collects the results sheet, discarding responses whose date
// does not match the request. The API sometimes ignores the date parameter
// and returns the latest race day instead.
func (c *KRAClient) fetchResults(ctx context.Context, date, meet string) (models.Table, error) {
	rows, err := c.callAPI(ctx, raceResultPath, url.Values{
		"rc_date": {date},
		"meet":    {meet},
	}, "results")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return rows, nil
	}

	if got := resultDate(rows[0]); got != "" && got != date {
		c.logger.WithFields(logrus.Fields{
			"requested": date,
			"returned":  got,
		}).Warn("results date mismatch, discarding sheet")
		return models.Table{}, nil
	}
	return rows, nil
}

// FetchHorseInfo retrieves the detail record for one horse by name or number.
func (c *KRAClient) FetchHorseInfo(ctx context.Context, horseName, horseNo string) (models.Row, error) {
	params := url.Values{}
	if horseName != "" {
		params.Set("hr_name", horseName)
	}
	if horseNo != "" {
		params.Set("hrNo", horseNo)
	}

	rows, err := c.callAPI(ctx, horseInfoPath, params, "horse")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, NewDataSourceError(c.Name(), ErrCodeNotFound, "no horse record", models.ErrNoData)
	}
	return rows[0], nil
}

// apiEnvelope is the open-data portal standard response wrapper.
type apiEnvelope struct {
	Response struct {
		Header struct {
			ResultCode string `json:"resultCode"`
			ResultMsg  string `json:"resultMsg"`
		} `json:"header"`
		Body struct {
			// The portal emits an object with an item list when data exists
			// and an empty string otherwise, so this stays raw.
			Items json.RawMessage `json:"items"`
		} `json:"body"`
	} `json:"response"`
}

// callAPI performs one open-API request and flattens the item list into rows.
// No data is an empty table, never an error.
func (c *KRAClient) callAPI(ctx context.Context, path string, params url.Values, tag string) (models.Table, error) {
	params.Set("serviceKey", c.apiKey)
	params.Set("_type", "json")
	params.Set("numOfRows", strconv.Itoa(c.rowsPerPage))
	params.Set("pageNo", "1")

	endpoint := c.baseURL + path + "?" + params.Encode()
	resp, err := c.httpClient.Get(ctx, endpoint)
	if err != nil {
		return nil, NewDataSourceError(c.Name(), ErrCodeNetworkError, "fetch "+tag, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, NewDataSourceError(c.Name(), ErrCodeAuthenticationFailed, "invalid service key", nil)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, NewDataSourceError(c.Name(), ErrCodeServerError, fmt.Sprintf("unexpected status %d for %s", resp.StatusCode, tag), nil)
	}

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, NewDataSourceError(c.Name(), ErrCodeInvalidData, "parse "+tag+" response", err)
	}

	table, err := decodeItems(envelope.Response.Body.Items)
	if err != nil {
		return nil, NewDataSourceError(c.Name(), ErrCodeInvalidData, "parse "+tag+" items", err)
	}
	return table, nil
}

// decodeItems turns the items payload into rows. A single object or an array
// are both accepted; the portal returns an object when only one record
// matches and an empty string when none do.
func decodeItems(raw json.RawMessage) (models.Table, error) {
	if len(raw) == 0 {
		return models.Table{}, nil
	}

	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" || trimmed == `""` || trimmed == "{}" {
		return models.Table{}, nil
	}

	var wrapper struct {
		Item json.RawMessage `json:"item"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}

	itemRaw := strings.TrimSpace(string(wrapper.Item))
	if itemRaw == "" || itemRaw == "null" {
		return models.Table{}, nil
	}

	var items []map[string]json.RawMessage
	if strings.HasPrefix(itemRaw, "[") {
		if err := json.Unmarshal(wrapper.Item, &items); err != nil {
			return nil, err
		}
	} else {
		var single map[string]json.RawMessage
		if err := json.Unmarshal(wrapper.Item, &single); err != nil {
			return nil, err
		}
		items = []map[string]json.RawMessage{single}
	}

	table := make(models.Table, 0, len(items))
	for _, item := range items {
		row := make(models.Row, len(item))
		for k, v := range item {
			row[k] = rawToString(v)
		}
		table = append(table, row)
	}
	return table, nil
}

// rawToString renders a scalar JSON value as the string the adapter expects.
func rawToString(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "null" {
		return ""
	}
	if strings.HasPrefix(s, `"`) {
		var out string
		if err := json.Unmarshal(raw, &out); err == nil {
			return out
		}
	}
	return s
}

// resultDate finds the race-date column of a results row, if present.
func resultDate(row models.Row) string {
	for key, val := range row {
		switch strings.ToLower(key) {
		case "racedt", "rcdate", "rc_date":
			cleaned := strings.NewReplacer("-", "", ".", "").Replace(val)
			return cleaned
		}
	}
	return ""
}

// weightsFromEntries derives the body-weight sheet from the entry sheet when
// it carries a published weight column.
func weightsFromEntries(entries models.Table) models.Table {
	weights := models.Table{}
	for _, row := range entries {
		wg, ok := row["wgHr"]
		if !ok || wg == "" {
			continue
		}
		weights = append(weights, models.Row{
			"rcNo":   row["rcNo"],
			"hrNo":   row["hrNo"],
			"hrName": row["hrName"],
			"weight": wg,
		})
	}
	return weights
}
