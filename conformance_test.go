package parseduration

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

type conformanceFile struct {
	Cases []conformanceCase `yaml:"cases"`
}

type conformanceCase struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`
	MS    int64  `yaml:"ms"`
	Error string `yaml:"error,omitempty"`
}

// errorKinds maps the fixture's failure kind names to the exported predicates.
var errorKinds = map[string]func(error) bool{
	"invalid-clock":  IsInvalidClock,
	"unknown-unit":   IsUnknownUnit,
	"unparseable":    IsUnparseable,
	"invalid-number": IsInvalidNumber,
}

func TestParseConformance(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "cases.yaml"))
	if err != nil {
		t.Fatalf("failed to read conformance fixture: %v", err)
	}

	var file conformanceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		t.Fatalf("failed to parse conformance fixture: %v", err)
	}
	if len(file.Cases) == 0 {
		t.Fatal("conformance fixture has no cases")
	}

	for _, tc := range file.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := Parse(tc.Input)

			if tc.Error != "" {
				check, known := errorKinds[tc.Error]
				if !known {
					t.Fatalf("fixture names unknown error kind %q", tc.Error)
				}
				if err == nil {
					t.Fatalf("Parse(%q) = %d, want %s error", tc.Input, got, tc.Error)
				}
				if !check(err) {
					t.Errorf("Parse(%q) error = %v, want %s", tc.Input, err, tc.Error)
				}
				return
			}

			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tc.Input, err)
			}
			if got != tc.MS {
				t.Errorf("Parse(%q) = %d, want %d", tc.Input, got, tc.MS)
			}
		})
	}
}
