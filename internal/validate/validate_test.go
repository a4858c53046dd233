package validate

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidatorAccumulates(t *testing.T) {
	v := New()
	if !v.IsValid() {
		t.Fatal("fresh validator must be valid")
	}
	if v.Err() != nil {
		t.Fatal("fresh validator must return nil error")
	}

	v.AddError("FieldA", "first problem", 1)
	v.AddError("FieldB", "second problem", "x")

	if v.IsValid() {
		t.Fatal("validator with errors must be invalid")
	}
	if len(v.Errors()) != 2 {
		t.Fatalf("Errors() = %d entries, want 2", len(v.Errors()))
	}

	err := v.Err()
	if err == nil {
		t.Fatal("Err() must be non-nil")
	}
	msg := err.Error()
	if !strings.Contains(msg, "FieldA") || !strings.Contains(msg, "FieldB") {
		t.Errorf("combined message missing fields: %q", msg)
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"http", "http://host:8080", true},
		{"https", "https://host/api", true},
		{"bad_scheme", "ftp://host", false},
		{"no_host", "http://", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.URL("HostURL", tt.value, []string{"http", "https"})
			if v.IsValid() != tt.valid {
				t.Errorf("URL(%q) valid=%v, want %v", tt.value, v.IsValid(), tt.valid)
			}
		})
	}
}

func TestRange(t *testing.T) {
	for _, tt := range []struct {
		value int
		valid bool
	}{
		{0, true}, {85, true}, {100, true}, {-1, false}, {101, false},
	} {
		v := New()
		v.Range("Threshold", tt.value, 0, 100)
		if v.IsValid() != tt.valid {
			t.Errorf("Range(%d) valid=%v, want %v", tt.value, v.IsValid(), tt.valid)
		}
	}
}

func TestOneOf(t *testing.T) {
	v := New()
	v.OneOf("LogLevel", "info", []string{"debug", "info", "warn", "error"})
	if !v.IsValid() {
		t.Error("info must be accepted")
	}

	v = New()
	v.OneOf("LogLevel", "verbose", []string{"debug", "info", "warn", "error"})
	if v.IsValid() {
		t.Error("verbose must be rejected")
	}
}

func TestDirectory(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		v := New()
		v.Directory("DataDir", t.TempDir(), true)
		if !v.IsValid() {
			t.Errorf("existing directory rejected: %v", v.Errors())
		}
	})

	t.Run("created_when_absent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sub")
		v := New()
		v.Directory("DataDir", path, false)
		if !v.IsValid() {
			t.Errorf("creatable directory rejected: %v", v.Errors())
		}
	})

	t.Run("missing_with_must_exist", func(t *testing.T) {
		v := New()
		v.Directory("DataDir", filepath.Join(t.TempDir(), "absent"), true)
		if v.IsValid() {
			t.Error("missing directory must be rejected when mustExist is set")
		}
	})

	t.Run("traversal_rejected", func(t *testing.T) {
		v := New()
		v.Directory("DataDir", "../escape", false)
		if v.IsValid() {
			t.Error("traversal path must be rejected")
		}
	})
}
