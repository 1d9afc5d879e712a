package errors

import (
	"strings"
	"testing"
)

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "simple filename", path: "chart.svg", wantErr: false},
		{name: "relative path", path: "out/chart.svg", wantErr: false},
		{name: "absolute path", path: "/tmp/chart.svg", wantErr: false},
		{name: "empty", path: "", wantErr: true},
		{name: "control character", path: "chart\x07.svg", wantErr: true},
		{name: "null byte", path: "chart\x00.svg", wantErr: true},
		{name: "too long", path: strings.Repeat("a", 501), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateSheetName(t *testing.T) {
	tests := []struct {
		name    string
		sheet   string
		wantErr bool
	}{
		{name: "plain name", sheet: "Sheet1", wantErr: false},
		{name: "unicode name", sheet: "data 2024", wantErr: false},
		{name: "cjk name", sheet: "方药证型统计分析工作表一", wantErr: false},
		{name: "cjk name at limit", sheet: strings.Repeat("药", 31), wantErr: false},
		{name: "empty", sheet: "", wantErr: true},
		{name: "too long", sheet: strings.Repeat("x", 32), wantErr: true},
		{name: "cjk name too long", sheet: strings.Repeat("药", 32), wantErr: true},
		{name: "colon", sheet: "a:b", wantErr: true},
		{name: "brackets", sheet: "data[1]", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSheetName(tt.sheet)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSheetName(%q) error = %v, wantErr %v", tt.sheet, err, tt.wantErr)
			}
		})
	}
}
