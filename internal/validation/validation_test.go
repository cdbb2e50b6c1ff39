package validation

import (
	"strings"
	"testing"

	"github.com/mkrause/wordspace/internal/constants"
)

func TestValidateWord(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expected    string
		shouldError bool
	}{
		{
			name:        "Valid word",
			input:       "dog",
			expected:    "dog",
			shouldError: false,
		},
		{
			name:        "Word with surrounding whitespace",
			input:       "  dog  ",
			expected:    "dog",
			shouldError: false,
		},
		{
			name:        "Empty word",
			input:       "",
			expected:    "",
			shouldError: true,
		},
		{
			name:        "Whitespace only word",
			input:       "   \t\n   ",
			expected:    "",
			shouldError: true,
		},
		{
			name:        "Word with internal whitespace is rejected",
			input:       "git commit",
			expected:    "",
			shouldError: true,
		},
		{
			name:        "Word with control characters",
			input:       "do\x00g",
			expected:    "dog",
			shouldError: false,
		},
		{
			name:        "Very long word",
			input:       strings.Repeat("a", constants.MaxQueryLength+1),
			expected:    "",
			shouldError: true,
		},
		{
			name:        "Max length word",
			input:       strings.Repeat("a", constants.MaxQueryLength),
			expected:    strings.Repeat("a", constants.MaxQueryLength),
			shouldError: false,
		},
		{
			name:        "Word with only control characters",
			input:       "\x00\x01\x02",
			expected:    "",
			shouldError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ValidateWord(tc.input)

			if tc.shouldError {
				if err == nil {
					t.Errorf("Expected error for input '%s', but got none", tc.input)
				}
				return
			}

			if err != nil {
				t.Errorf("Expected no error for input '%s', but got: %v", tc.input, err)
			}
			if result != tc.expected {
				t.Errorf("Expected result '%s', got '%s'", tc.expected, result)
			}
		})
	}
}

func TestValidateLimit(t *testing.T) {
	testCases := []struct {
		name        string
		input       int
		expected    int
		shouldError bool
	}{
		{
			name:        "Valid positive limit",
			input:       10,
			expected:    10,
			shouldError: false,
		},
		{
			name:        "Zero limit defaults",
			input:       0,
			expected:    constants.DefaultNNLimit,
			shouldError: false,
		},
		{
			name:        "Negative limit",
			input:       -5,
			expected:    0,
			shouldError: true,
		},
		{
			name:        "Very large limit is capped",
			input:       150,
			expected:    constants.MaxNNLimit,
			shouldError: true,
		},
		{
			name:        "Max allowed limit",
			input:       constants.MaxNNLimit,
			expected:    constants.MaxNNLimit,
			shouldError: false,
		},
		{
			name:        "Just over max limit",
			input:       constants.MaxNNLimit + 1,
			expected:    constants.MaxNNLimit,
			shouldError: true,
		},
		{
			name:        "Small positive limit",
			input:       1,
			expected:    1,
			shouldError: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ValidateLimit(tc.input)

			if tc.shouldError {
				if err == nil {
					t.Errorf("Expected error for input %d, but got none", tc.input)
				}
			} else if err != nil {
				t.Errorf("Expected no error for input %d, but got: %v", tc.input, err)
			}

			if result != tc.expected {
				t.Errorf("Expected result %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Valid filename",
			input:    "frequencies.txt",
			expected: "frequencies.txt",
		},
		{
			name:     "Filename with unsafe characters",
			input:    "file/with\\unsafe:chars*",
			expected: "file_with_unsafe_chars_",
		},
		{
			name:     "Filename with all unsafe characters",
			input:    "/\\:*?\"<>|",
			expected: "_________",
		},
		{
			name:     "Filename with spaces and dots at edges",
			input:    " .filename. ",
			expected: "filename",
		},
		{
			name:     "Very long filename",
			input:    strings.Repeat("a", 300),
			expected: strings.Repeat("a", 255),
		},
		{
			name:     "Empty filename",
			input:    "",
			expected: "",
		},
		{
			name:     "Filename with only spaces and dots",
			input:    " ... ",
			expected: "",
		},
		{
			name:     "Filename with mixed safe and unsafe",
			input:    "sparseGraph<v2>.dat",
			expected: "sparseGraph_v2_.dat",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := SanitizeFilename(tc.input)
			if result != tc.expected {
				t.Errorf("Expected result '%s', got '%s'", tc.expected, result)
			}
		})
	}
}

func TestValidateWordErrorMessages(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		shouldContain string
	}{
		{
			name:          "Empty word error",
			input:         "",
			shouldContain: "cannot be empty",
		},
		{
			name:          "Too long word error",
			input:         strings.Repeat("a", constants.MaxQueryLength+1),
			shouldContain: "too long",
		},
		{
			name:          "Multi-token error",
			input:         "git commit",
			shouldContain: "single token",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateWord(tc.input)
			if err == nil {
				t.Fatalf("Expected error for input '%s'", tc.input)
			}
			if !strings.Contains(err.Error(), tc.shouldContain) {
				t.Errorf("Expected error message to contain '%s', got '%s'", tc.shouldContain, err.Error())
			}
		})
	}
}

func TestValidationIntegration(t *testing.T) {
	word, err := ValidateWord("dog")
	if err != nil {
		t.Errorf("Expected no error for valid word, got: %v", err)
	}
	if word != "dog" {
		t.Errorf("Expected word 'dog', got '%s'", word)
	}

	limit, err := ValidateLimit(10)
	if err != nil {
		t.Errorf("Expected no error for valid limit, got: %v", err)
	}
	if limit != 10 {
		t.Errorf("Expected limit 10, got %d", limit)
	}

	filename := SanitizeFilename(word + "_neighbors.txt")
	expected := "dog_neighbors.txt"
	if filename != expected {
		t.Errorf("Expected filename '%s', got '%s'", expected, filename)
	}
}
