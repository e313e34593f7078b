package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/YuminosukeSato/lgbmpmml/pkg/errors"
)

func TestLoggerInterface(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", TreeIndexKey, 1, LeavesKey, 31)
	testLogger.Info("info message", OperationKey, OperationDecode)
	testLogger.Warn("warning message", FeatureNameKey, "age")
	testLogger.Error("error message", fmt.Errorf("test error"), TreeIndexKey, 2)

	if buffer.String() == "" {
		t.Fatal("Expected log output, got empty string")
	}

	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		if !testLogger.ContainsMessage(msg) {
			t.Errorf("%q not found in output", msg)
		}
	}

	if !testLogger.ContainsField(LeavesKey, 31.0) { // JSON unmarshaling converts numbers to float64
		t.Error("Expected field tree.leaves=31 not found")
	}
	if !testLogger.ContainsField(ErrAttrKey, "test error") {
		t.Error("leading error should be logged under the error key")
	}
	if !testLogger.ContainsField(TreeIndexKey, 2.0) {
		t.Error("fields after a leading error should keep their pairing")
	}
}

func TestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	contextLogger := testLogger.With(ComponentKey, "lightgbm", TreeIndexKey, 7)
	contextLogger.Info("contextual message", OperationKey, OperationEncode)

	if !testLogger.ContainsField(ComponentKey, "lightgbm") {
		t.Error("component context not found")
	}
	if !testLogger.ContainsField(TreeIndexKey, 7.0) {
		t.Error("tree index context not found")
	}
	if !testLogger.ContainsField(OperationKey, OperationEncode) {
		t.Error("operation not found")
	}
}

func TestLogLevels(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelWarn)

	testLogger.Debug("hidden debug")
	testLogger.Info("hidden info")
	testLogger.Warn("visible warn")
	testLogger.Error("visible error")

	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("GetLogEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if testLogger.Enabled(context.Background(), LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !testLogger.Enabled(context.Background(), LevelError) {
		t.Error("error should be enabled at warn level")
	}

	testLogger.Clear()
	if testLogger.ContainsMessage("visible warn") {
		t.Error("Clear should drop captured output")
	}
}

func TestTestLoggerConcurrent(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			testLogger.With(TreeIndexKey, i).Debug("decoded")
		}(i)
	}
	wg.Wait()

	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("GetLogEntries: %v", err)
	}
	if len(entries) != 16 {
		t.Errorf("expected 16 entries, got %d", len(entries))
	}
}

func TestTestLoggerProvider(t *testing.T) {
	provider, buffer := NewTestLoggerProvider(LevelInfo)

	provider.GetLoggerWithName("pmml").Info("encoded")
	if !strings.Contains(buffer.String(), `"component":"pmml"`) {
		t.Errorf("named logger should tag component, got %s", buffer.String())
	}

	provider.SetLevel(LevelError)
	provider.GetLogger().Info("dropped")
	if strings.Contains(buffer.String(), "dropped") {
		t.Error("SetLevel should raise the threshold")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetupLoggerStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger, err := SetupLoggerTo(&buf, "debug")
	if err != nil {
		t.Fatalf("SetupLoggerTo: %v", err)
	}

	logger.Error("tree failed", errors.NewFormatError("leaf_value", "expected 3 elements, got 2"), TreeIndexKey, 0)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v: %s", err, buf.String())
	}
	if entry["message"] != "tree failed" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["severity"] != "ERROR" {
		t.Errorf("severity = %v", entry["severity"])
	}
	if _, ok := entry[StacktraceAttrKey]; !ok {
		t.Error("expected stacktrace attribute for cockroachdb error")
	}
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo)

	logger.Debug("hidden")
	logger.With(ComponentKey, "lightgbm").Info("tree decoded", TreeIndexKey, 3)
	logger.Error("tree failed", errors.NewInvalidSplitError(4, "flag", 0.25))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug record should be filtered at info level")
	}
	for _, want := range []string{`"component":"lightgbm"`, `"tree.index":3`, `"type":"InvalidSplitError"`, `"stacktrace"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s does not contain %s", out, want)
		}
	}
	if logger.Enabled(context.Background(), LevelDebug) {
		t.Error("debug should be disabled")
	}
}

func TestZerologRouteWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug)
	logger.RouteWarnings()
	defer errors.SetZerologWarnFunc(nil)

	errors.Warn(errors.NewRecordCountWarning(2, 50, 49))

	out := buf.String()
	if !strings.Contains(out, `"type":"RecordCountWarning"`) {
		t.Errorf("warning not routed to zerolog: %s", out)
	}
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("warning should be logged at warn level: %s", out)
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.With("k", "v").Info("ignored")
	if logger.Enabled(context.Background(), LevelError) {
		t.Error("nop logger should report disabled")
	}
}
