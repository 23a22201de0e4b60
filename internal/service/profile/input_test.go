package profile

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

func TestUpdateProfileInput_Validate(t *testing.T) {
	t.Parallel()

	negative := -1.0
	manySkills := make([]string, 21)
	for i := range manySkills {
		manySkills[i] = fmt.Sprintf("skill-%d", i)
	}

	tests := []struct {
		name      string
		input     UpdateProfileInput
		wantField string
	}{
		{"valid minimal", UpdateProfileInput{Name: "Ada"}, ""},
		{"blank name", UpdateProfileInput{Name: "   "}, "name"},
		{"long name", UpdateProfileInput{Name: strings.Repeat("a", 101)}, "name"},
		{"long bio", UpdateProfileInput{Name: "Ada", Bio: strings.Repeat("b", 1001)}, "bio"},
		{"bad level", UpdateProfileInput{Name: "Ada", ExperienceLevel: "guru"}, "experience_level"},
		{"bad availability", UpdateProfileInput{Name: "Ada", Availability: "Available"}, "availability"},
		{"negative rate", UpdateProfileInput{Name: "Ada", HourlyRate: &negative}, "hourly_rate"},
		{"too many skills", UpdateProfileInput{Name: "Ada", Skills: manySkills}, "skills"},
		{"long skill", UpdateProfileInput{Name: "Ada", Skills: []string{strings.Repeat("s", 51)}}, "skills"},
		{"duplicate skills collapse", UpdateProfileInput{Name: "Ada", Skills: append(manySkills[:20:20], "SKILL-0")}, ""},
		{"non-http link", UpdateProfileInput{Name: "Ada", LinkedIn: "ftp://example.com"}, "linkedin"},
		{"relative link", UpdateProfileInput{Name: "Ada", Website: "example.com"}, "website"},
		{"valid links", UpdateProfileInput{Name: "Ada", Website: "https://ada.dev", Discord: "https://discord.gg/x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.input.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if ve.Errors[0].Field != tt.wantField {
				t.Errorf("field = %q, want %q", ve.Errors[0].Field, tt.wantField)
			}
		})
	}
}

func TestUpdateProfileInput_Location(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   UpdateProfileInput
		want string
	}{
		{UpdateProfileInput{Province: "Bali", City: "Denpasar"}, "Bali, Denpasar"},
		{UpdateProfileInput{Province: "Bali", Location: "Remote"}, "Remote"},
		{UpdateProfileInput{Location: "  Remote "}, "Remote"},
		{UpdateProfileInput{}, ""},
	}
	for _, tt := range tests {
		if got := tt.in.location(); got != tt.want {
			t.Errorf("location(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
