package model

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Status
		wantErr bool
	}{
		{name: "pending", in: "pending", want: StatusPending},
		{name: "scheduled", in: "scheduled", want: StatusScheduled},
		{name: "completed", in: "completed", want: StatusCompleted},
		{name: "unknown value", in: "archived", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "wrong case", in: "Pending", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseStatus(%q) expected error, got %q", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSubmissionIsEmpty(t *testing.T) {
	if !(Submission{}).IsEmpty() {
		t.Error("zero submission should be empty")
	}
	if (Submission{Phone: "555"}).IsEmpty() {
		t.Error("submission with a phone number should not be empty")
	}
	if (Submission{Bags: 2}).IsEmpty() {
		t.Error("submission with a bag count should not be empty")
	}
}
