package domain

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"beginner", LevelBeginner, false},
		{" Intermediate ", LevelIntermediate, false},
		{"ADVANCED", LevelAdvanced, false},
		{"expert", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCourseDocument(t *testing.T) {
	c := Course{
		Title:     "Python for Everybody",
		SkillTags: []string{"python", "programming"},
		Level:     LevelBeginner,
	}
	want := "Python for Everybody python, programming beginner"
	if got := c.Document(); got != want {
		t.Errorf("Document() = %q, want %q", got, want)
	}
}
