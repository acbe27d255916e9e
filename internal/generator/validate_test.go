package generator

import (
	"strings"
	"testing"
)

func intPtr(n int) *int           { return &n }
func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr string // "" means valid
	}{
		{"empty request", Request{}, ""},
		{"count in range", Request{Count: intPtr(15)}, ""},
		{"count minimum", Request{Count: intPtr(1)}, ""},
		{"count zero", Request{Count: intPtr(0)}, "Count must be a number between 1 and 15"},
		{"count negative", Request{Count: intPtr(-3)}, "Count must be a number between 1 and 15"},
		{"count over max", Request{Count: intPtr(20)}, "Cannot generate more than 15 todos at once"},
		{"valid status pending", Request{Status: strPtr("pending")}, ""},
		{"valid status in-progress", Request{Status: strPtr("in-progress")}, ""},
		{"valid status completed", Request{Status: strPtr("completed")}, ""},
		{"invalid status", Request{Status: strPtr("done")}, "Status must be one of: pending, in-progress, completed"},
		{"empty status", Request{Status: strPtr("")}, "Status must be one of: pending, in-progress, completed"},
		{"keywords ok", Request{TitleKeywords: []string{"garage", "report"}}, ""},
		{"deadline days zero", Request{MaxDeadlineDays: floatPtr(0)}, ""},
		{"deadline days negative", Request{MaxDeadlineDays: floatPtr(-1)}, "maxDeadlineDays must be a number greater than or equal to 0"},
		{"creation days zero", Request{MaxCreationDaysAgo: floatPtr(0)}, ""},
		{"creation days negative", Request{MaxCreationDaysAgo: floatPtr(-0.5)}, "maxCreationDaysAgo must be a number greater than or equal to 0"},
		{"randomize set", Request{RandomizeCreationDate: boolPtr(false)}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: got %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate: got nil, want %q", tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("Validate: got %q, want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateFirstFailureWins(t *testing.T) {
	// Both count and status are invalid; the count message must win.
	req := Request{Count: intPtr(0), Status: strPtr("bogus")}
	err := req.Validate()
	if err == nil {
		t.Fatal("Validate: got nil, want error")
	}
	if !strings.Contains(err.Error(), "Count") {
		t.Errorf("Validate: got %q, want count message first", err.Error())
	}
}

func TestValidateIsDeterministic(t *testing.T) {
	req := Request{Count: intPtr(42)}
	first := req.Validate()
	for i := 0; i < 10; i++ {
		if got := req.Validate(); got.Error() != first.Error() {
			t.Fatalf("Validate: got %q, want %q", got.Error(), first.Error())
		}
	}
}

func TestMessageForField(t *testing.T) {
	for _, field := range []string{"count", "status", "titleKeywords", "maxDeadlineDays", "randomizeCreationDate", "maxCreationDaysAgo"} {
		if MessageForField(field) == "" {
			t.Errorf("MessageForField(%q): got empty message", field)
		}
	}
	if got := MessageForField("unknown"); got != "" {
		t.Errorf("MessageForField(unknown): got %q, want empty", got)
	}
}
