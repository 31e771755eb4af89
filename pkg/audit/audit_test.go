package audit

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerFormatsRFC5424(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	logger.Log(IssueEvent{KeyID: "k1", Comment: "demo"})

	line := buf.String()
	// PRI = FacilityAuthPriv*8 + SeverityInfo = 86
	if !strings.HasPrefix(line, "<86>1 ") {
		t.Errorf("unexpected PRI prefix: %q", line)
	}
	if !strings.Contains(line, " keyturn ") {
		t.Errorf("expected app name in line: %q", line)
	}
	if !strings.Contains(line, " issue ") {
		t.Errorf("expected message id in line: %q", line)
	}
	if !strings.Contains(line, "issued key k1 (demo)") {
		t.Errorf("expected message in line: %q", line)
	}
	if !strings.Contains(line, `key="k1"`) {
		t.Errorf("expected structured data in line: %q", line)
	}
}

func TestRedeemEventRedactsPassword(t *testing.T) {
	event := RedeemEvent{KeyID: "k1", Login: "alice", Success: true}

	if strings.Contains(event.Message(), "Secret1") {
		t.Error("password leaked into message")
	}
	for _, params := range event.StructuredData() {
		for _, value := range params {
			if value == "Secret1" {
				t.Error("password leaked into structured data")
			}
		}
	}
}

func TestRedeemEventSeverity(t *testing.T) {
	tests := []struct {
		name     string
		event    RedeemEvent
		expected Severity
	}{
		{"success is info", RedeemEvent{Success: true}, SeverityInfo},
		{"failure is warning", RedeemEvent{Success: false, ErrorMessage: "provisioning failed"}, SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Severity(); got != tt.expected {
				t.Errorf("Severity() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestEscapeSDValue(t *testing.T) {
	got := escapeSDValue(`with "quotes" and ] bracket`)
	want := `"with \"quotes\" and \] bracket"`
	if got != want {
		t.Errorf("escapeSDValue() = %q, want %q", got, want)
	}
}
