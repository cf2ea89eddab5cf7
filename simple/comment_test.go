package simple

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseAnnotation(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		want    *annotation
		wantErr string
	}{
		{
			name:  "type and comparators",
			lines: []string{"@type and", "@comparator contains", "@comparator !is"},
			want:  &annotation{Type: "all", Comparators: []string{"contains", "!is"}},
		},
		{
			name:  "or maps to any",
			lines: []string{"@type or"},
			want:  &annotation{Type: "any"},
		},
		{
			name:  "default rewrites to contains",
			lines: []string{"@comparator default", "@comparator !default"},
			want:  &annotation{Comparators: []string{"contains", "!contains"}},
		},
		{
			name:  "unknown annotation words are ignored",
			lines: []string{"@author someone", "@type and"},
			want:  &annotation{Type: "all"},
		},
		{
			name:    "unknown type value",
			lines:   []string{"@type nand"},
			wantErr: "unknown annotations: type nand",
		},
		{
			name:    "all bad values reported together",
			lines:   []string{"@type nand", "@comparator contains", "@type xor"},
			wantErr: "type nand, type xor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ann, err := parseAnnotation(commentNode(tt.lines...))
			if tt.wantErr != "" {
				var invalid *InvalidInputError
				if !errors.As(err, &invalid) {
					t.Fatalf("expected InvalidInputError, got %v", err)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseAnnotation failed: %v", err)
			}
			if !reflect.DeepEqual(ann, tt.want) {
				t.Errorf("parseAnnotation mismatch\n got: %+v\nwant: %+v", ann, tt.want)
			}
		})
	}
}

func TestParseAnnotationNilComment(t *testing.T) {
	ann, err := parseAnnotation(nil)
	if err != nil {
		t.Fatalf("parseAnnotation failed: %v", err)
	}
	if ann != nil {
		t.Errorf("expected no annotation, got %+v", ann)
	}
}
