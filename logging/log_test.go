package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())
	if id == "" {
		t.Fatal("WithCorrelationID() returned an empty id")
	}
	if got := CorrelationID(ctx); got != id {
		t.Errorf("CorrelationID() = %q, want %q", got, id)
	}
	if got := CorrelationID(context.Background()); got != "" {
		t.Errorf("CorrelationID(empty) = %q, want empty", got)
	}
}

func TestWithContextAddsField(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.JSONFormatter{})

	ctx, id := WithCorrelationID(context.Background())
	New(l).WithContext(ctx).Info("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("invalid json log line %q: %v", buf.String(), err)
	}
	if line[correlationIDField] != id {
		t.Errorf("log line %v has no correlation id %q", line, id)
	}
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	if err := Setup("loud", "text", nil); err == nil {
		t.Error("Setup(loud) error = nil, want error")
	}
}
