package logfile

import (
	"testing"

	"github.com/Bambou-Dev/UnrealLogsReader/internal/model"
)

func TestClassifyLevel(t *testing.T) {
	tests := []struct {
		name string
		line string
		want model.Level
	}{
		{
			name: "plain display",
			line: "[2024.01.01-14.22.33:123]LogTemp: Display: hello",
			want: model.LevelDisplay,
		},
		{
			name: "warning marker",
			line: "[2024.01.01-14.22.33:123]LogCook: Warning: slow asset",
			want: model.LevelWarning,
		},
		{
			name: "error marker",
			line: "[2024.01.01-14.22.33:123]LogCook: Error: missing texture",
			want: model.LevelError,
		},
		{
			name: "critical marker",
			line: "[2024.01.01-14.22.33:123]LogInit: Critical: cannot start",
			want: model.LevelError,
		},
		{
			name: "fatal marker",
			line: "[2024.01.01-14.22.33:123]LogCore: Fatal: assertion failed",
			want: model.LevelError,
		},
		{
			name: "error dominates warning",
			line: "[T]LogX: Error: upgrading Warning: to error",
			want: model.LevelError,
		},
		{
			name: "fatal dominates warning",
			line: "[T]LogX: Fatal: crash after Warning: ignored",
			want: model.LevelError,
		},
		{
			name: "no markers",
			line: "some unadorned output",
			want: model.LevelDisplay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, _ := Classify(tt.line)
			if level != tt.want {
				t.Errorf("Classify(%q) level = %v, want %v", tt.line, level, tt.want)
			}
		})
	}
}

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "bracket prefix",
			line: "[2024.01.01-14.22.33:123]LogCook: Error: missing texture",
			want: "LogCook",
		},
		{
			name: "space prefix",
			line: "[T] LogShaderCompilers: Display: compiled",
			want: "LogShaderCompilers",
		},
		{
			name: "colon prefix",
			line: "[T]note:LogNet: Warning: lag",
			want: "LogNet",
		},
		{
			name: "Log inside a word does not match",
			line: "[T]MyLogger: opened settings",
			want: model.DefaultCategory,
		},
		{
			name: "qualifying Log without trailing colon",
			line: "[T] LogTemp has no colon here",
			want: model.DefaultCategory,
		},
		{
			name: "no Log tag at all",
			line: "[T]something else entirely",
			want: model.DefaultCategory,
		},
		{
			name: "Log at start of line does not qualify",
			line: "LogTemp: Display: bare line",
			want: model.DefaultCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, category := Classify(tt.line)
			if category != tt.want {
				t.Errorf("Classify(%q) category = %q, want %q", tt.line, category, tt.want)
			}
		})
	}
}
