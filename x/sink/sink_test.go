package sink

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/totegamma/unifedi/core"
	unitestutil "github.com/totegamma/unifedi/internal/testutil"
	"github.com/totegamma/unifedi/x/pleroma"
)

var clamped = core.Warning{
	Entity:  "account",
	Field:   "followers_count",
	Message: "negative count clamped to zero",
	Value:   "-1",
}

func TestSlogSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewSlogSink(slog.New(slog.NewJSONHandler(&buf, nil)))

	s.Warn(clamped)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "negative count clamped to zero", record["msg"])
	assert.Equal(t, "account", record["entity"])
	assert.Equal(t, "followers_count", record["field"])
	assert.Equal(t, "-1", record["value"])
}

func TestPrometheusSink(t *testing.T) {
	reg := prometheus.NewRegistry()

	s, err := NewPrometheusSink(reg)
	require.NoError(t, err)

	s.Warn(clamped)
	s.Warn(clamped)
	s.Warn(core.Warning{Entity: "notification", Field: "type", Message: "unrecognized variant", Value: "admin.sign_up"})

	assert.Equal(t, 2.0, testutil.ToFloat64(s.warnings.WithLabelValues("account", "followers_count")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.warnings.WithLabelValues("notification", "type")))

	again, err := NewPrometheusSink(reg)
	require.NoError(t, err)
	again.Warn(clamped)
	assert.Equal(t, 3.0, testutil.ToFloat64(s.warnings.WithLabelValues("account", "followers_count")))
}

func TestPrometheusSinkConflict(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "unifedi_decode_warnings_total",
		Help: "not a counter",
	}))

	_, err := NewPrometheusSink(reg)
	assert.Error(t, err)
}

func TestMultiWithDecoder(t *testing.T) {
	recorder := &unitestutil.RecordingSink{}
	reg := prometheus.NewRegistry()
	counter, err := NewPrometheusSink(reg)
	require.NoError(t, err)

	decoder := pleroma.NewDecoder(core.WithWarningSink(Multi{recorder, nil, counter}))
	_, err = decoder.Notification([]byte(`{
		"id": "1",
		"type": "admin.sign_up",
		"created_at": "2023-11-02T09:20:00.000Z",
		"account": {
			"id": "1",
			"username": "lain",
			"acct": "lain",
			"display_name": "lain",
			"note": "",
			"url": "https://lain.com/users/lain",
			"avatar": "https://lain.com/media/avatar.png",
			"avatar_static": "https://lain.com/media/avatar.png",
			"header": "https://lain.com/images/banner.png",
			"header_static": "https://lain.com/images/banner.png",
			"followers_count": 0,
			"following_count": 0,
			"statuses_count": 0,
			"created_at": "2019-03-26T21:40:32.000Z"
		}
	}`))
	require.NoError(t, err)

	assert.Len(t, recorder.Warnings(), 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(counter.warnings.WithLabelValues("notification", "type")))
}
