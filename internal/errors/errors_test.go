package errors

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DocError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryConfig, SeverityFatal, "failed to load config"),
			expected: "config (fatal): failed to load config: file not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.err.Error()
			if result != test.expected {
				t.Errorf("Error() = %q, want %q", result, test.expected)
			}
		})
	}
}

func TestDocError_WithContext(t *testing.T) {
	err := New(CategoryFileSystem, SeverityFatal, "write failed").
		WithContext("path", "public/docs/button.md").
		WithContext("component", "button")

	if err.Context == nil {
		t.Fatal("Context should not be nil")
	}

	if err.Context["path"] != "public/docs/button.md" {
		t.Errorf("Context[path] = %v, want public/docs/button.md", err.Context["path"])
	}

	if err.Context["component"] != "button" {
		t.Errorf("Context[component] = %v, want button", err.Context["component"])
	}
}

func TestIsCategory(t *testing.T) {
	configErr := New(CategoryConfig, SeverityFatal, "config error")
	fsErr := WriteFailed("out.md", fmt.Errorf("disk full"))
	wrapped := fmt.Errorf("generate: %w", fsErr)
	standardErr := fmt.Errorf("standard error")

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		expected bool
	}{
		{"config error matches config category", configErr, CategoryConfig, true},
		{"config error doesn't match filesystem category", configErr, CategoryFileSystem, false},
		{"filesystem error matches filesystem category", fsErr, CategoryFileSystem, true},
		{"wrapped error still matches", wrapped, CategoryFileSystem, true},
		{"standard error doesn't match any category", standardErr, CategoryConfig, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsCategory(test.err, test.category)
			if result != test.expected {
				t.Errorf("IsCategory() = %v, want %v", result, test.expected)
			}
		})
	}
}

func TestConvenienceFunctions(t *testing.T) {
	t.Run("ConfigNotFound", func(t *testing.T) {
		err := ConfigNotFound("/path/to/llmsdocs.yaml")
		if err.Category != CategoryConfig {
			t.Errorf("Category = %v, want %v", err.Category, CategoryConfig)
		}
		if err.Severity != SeverityFatal {
			t.Errorf("Severity = %v, want %v", err.Severity, SeverityFatal)
		}
		if err.Context["path"] != "/path/to/llmsdocs.yaml" {
			t.Errorf("Context[path] = %v, want /path/to/llmsdocs.yaml", err.Context["path"])
		}
	})

	t.Run("ReadFailed", func(t *testing.T) {
		cause := fmt.Errorf("permission denied")
		err := ReadFailed("button.astro", cause)
		if err.Category != CategoryFileSystem {
			t.Errorf("Category = %v, want %v", err.Category, CategoryFileSystem)
		}
		if !stdErrors.Is(err, cause) {
			t.Errorf("Cause should match wrapped cause: %v", cause)
		}
	})

	t.Run("ValidationFailed", func(t *testing.T) {
		err := ValidationFailed("categories", "duplicate category name")
		if err.Category != CategoryValidation {
			t.Errorf("Category = %v, want %v", err.Category, CategoryValidation)
		}
		if err.Context["field"] != "categories" {
			t.Errorf("Context[field] = %v, want categories", err.Context["field"])
		}
		if err.Context["reason"] != "duplicate category name" {
			t.Errorf("Context[reason] = %v, want duplicate category name", err.Context["reason"])
		}
	})
}

func TestCLIErrorAdapter_ExitCodes(t *testing.T) {
	a := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.Equal(t, 0, a.ExitCodeFor(nil))
	require.Equal(t, 1, a.ExitCodeFor(fmt.Errorf("plain")))
	require.Equal(t, 2, a.ExitCodeFor(ValidationFailed("f", "r")))
	require.Equal(t, 7, a.ExitCodeFor(ConfigNotFound("x.yaml")))
	require.Equal(t, 11, a.ExitCodeFor(WriteFailed("x.md", fmt.Errorf("ro"))))
	require.Equal(t, 11, a.ExitCodeFor(fmt.Errorf("wrapped: %w", VerificationFailed(3))))
	require.Equal(t, 10, a.ExitCodeFor(InternalError("bug", nil)))
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, nil)
	require.Equal(t, "configuration file not found: x.yaml", quiet.FormatError(ConfigNotFound("x.yaml")))
	require.Equal(t, "filesystem: failed to write output: x.md", quiet.FormatError(WriteFailed("x.md", fmt.Errorf("ro"))))
	require.Equal(t, "Error: plain", quiet.FormatError(fmt.Errorf("plain")))
	require.Empty(t, quiet.FormatError(nil))

	verbose := NewCLIErrorAdapter(true, nil)
	require.Equal(t, "filesystem (fatal): failed to write output: ro", verbose.FormatError(WriteFailed("x.md", fmt.Errorf("ro"))))
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var stderr, logs bytes.Buffer
	a := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	a.stderr = &stderr
	code := -1
	a.exit = func(c int) { code = c }

	a.HandleError(SourceDirMissing("src/pages/components", fmt.Errorf("no such file")))

	require.Equal(t, 11, code)
	require.Equal(t, "filesystem: component directory not readable: src/pages/components\n", stderr.String())
	require.Empty(t, logs.String())

	a.HandleError(nil)
	require.Equal(t, 11, code)
}

func TestCLIErrorAdapter_LogsInternalErrors(t *testing.T) {
	var stderr, logs bytes.Buffer
	a := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	a.stderr = &stderr
	code := -1
	a.exit = func(c int) { code = c }

	a.HandleError(InternalError("encode build report", fmt.Errorf("unsupported value")))

	require.Equal(t, 10, code)
	require.Equal(t, "internal: encode build report\n", stderr.String())
	require.Contains(t, logs.String(), "category=internal")
	require.Contains(t, logs.String(), `error="unsupported value"`)
}

func TestCLIErrorAdapter_VerificationFailure(t *testing.T) {
	var stderr bytes.Buffer
	a := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(io.Discard, nil)))
	a.stderr = &stderr
	code := -1
	a.exit = func(c int) { code = c }

	a.HandleError(VerificationFailed(2))

	require.Equal(t, ExitBuild, code)
	require.Equal(t, "build: generated docs failed verification\n", stderr.String())
}
