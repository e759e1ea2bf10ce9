package application

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{name: "valid value", fieldName: "path", value: "/bin/sh", wantErr: false},
		{name: "empty string", fieldName: "path", value: "", wantErr: true},
		{name: "whitespace only", fieldName: "path", value: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				if valErr.Message != "program path is required" {
					t.Errorf("unexpected message %q", valErr.Message)
				}
			}
		})
	}
}

func TestValidateAbsolutePath(t *testing.T) {
	abs, err := filepath.Abs("tool.exe")
	if err != nil {
		t.Fatal(err)
	}

	if err := ValidateAbsolutePath("path", abs); err != nil {
		t.Errorf("unexpected error for %s: %v", abs, err)
	}
	if err := ValidateAbsolutePath("path", "tool.exe"); err == nil {
		t.Error("expected error for relative path")
	}
	if err := ValidateAbsolutePath("path", ""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestErrorKinds(t *testing.T) {
	corrupt := &CorruptDocumentError{Path: "/x/history.json", Kind: ErrCorruptHistory, Err: errors.New("bad json")}
	if !errors.Is(corrupt, ErrCorruptHistory) {
		t.Error("expected corrupt history error to match ErrCorruptHistory")
	}
	if errors.Is(corrupt, ErrCorruptIndex) {
		t.Error("corrupt history must not match ErrCorruptIndex")
	}

	launch := &LaunchError{Path: "/bin/x", Err: errors.New("denied")}
	if !errors.Is(launch, ErrLaunchFailed) {
		t.Error("expected launch error to match ErrLaunchFailed")
	}
	if IsUserFacing(launch) {
		t.Error("launch failure is not a user-facing selection problem")
	}
}
