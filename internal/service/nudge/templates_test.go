package nudge

import (
	"strings"
	"testing"

	"warmline_server/internal/model"
	"warmline_server/pkg/enum/nudge/nudge_type_enum"
	"warmline_server/pkg/enum/nudge/urgency_enum"
)

func copyCandidate(name string, typ, urgency int8, daysUntil, daysSince int) *candidate {
	return &candidate{
		contact:   model.Contact{Name: name, DesiredFrequencyDays: 14},
		typ:       typ,
		urgency:   urgency,
		daysUntil: daysUntil,
		daysSince: daysSince,
	}
}

func TestBuildCopyBirthday(t *testing.T) {
	tests := []struct {
		name      string
		daysUntil int
		wantBody  string
	}{
		{"今天", 0, "Today is Alice's birthday!"},
		{"明天", 1, "Alice's birthday is tomorrow."},
		{"三天后", 3, "Alice's birthday is in 3 days."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := buildCopy(copyCandidate("Alice", nudge_type_enum.BIRTHDAY, urgency_enum.MAX, tt.daysUntil, 10))
			if text.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", text.Body, tt.wantBody)
			}
			if text.Title == "" || text.SuggestedAction == "" {
				t.Error("birthday copy should have title and suggested action")
			}
		})
	}
}

func TestBuildCopyDaysSince(t *testing.T) {
	tests := []struct {
		name     string
		typ      int8
		urgency  int8
		wantBody string
	}{
		{"失联召回", nudge_type_enum.RE_ENGAGE, urgency_enum.MAX,
			"It's been 45 days. A quick message could reignite this connection."},
		{"明显变冷", nudge_type_enum.WARMTH_DECAY, urgency_enum.MID,
			"45 days since your last interaction. They might think you've forgotten."},
		{"轻度变冷", nudge_type_enum.WARMTH_DECAY, urgency_enum.LOW,
			"It's been 45 days. Your 14-day goal is approaching."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := buildCopy(copyCandidate("Alice", tt.typ, tt.urgency, 0, 45))
			if text.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", text.Body, tt.wantBody)
			}
		})
	}
}

func TestBuildCopyNeverInteracted(t *testing.T) {
	// 从未互动时不渲染天数，退回提及联系人姓名的版本
	for _, typ := range []int8{nudge_type_enum.RE_ENGAGE, nudge_type_enum.WARMTH_DECAY} {
		text := buildCopy(copyCandidate("Bob", typ, urgency_enum.MAX, 0, -1))
		if !strings.Contains(text.Body, "Bob") {
			t.Errorf("type %d body %q does not mention contact name", typ, text.Body)
		}
		if strings.Contains(text.Body, "-1") {
			t.Errorf("type %d body %q leaks sentinel day count", typ, text.Body)
		}
	}
}

func TestBuildCopyMentionsContactName(t *testing.T) {
	for _, typ := range []int8{
		nudge_type_enum.WARMTH_DECAY,
		nudge_type_enum.RE_ENGAGE,
		nudge_type_enum.OTHER,
	} {
		text := buildCopy(copyCandidate("Bob", typ, urgency_enum.LOW, 0, -1))
		if !strings.Contains(text.Title, "Bob") {
			t.Errorf("type %d title %q does not mention contact name", typ, text.Title)
		}
		if !strings.Contains(text.Body, "Bob") {
			t.Errorf("type %d body %q does not mention contact name", typ, text.Body)
		}
	}
}
