package nudge

import (
	"fmt"

	"warmline_server/pkg/enum/nudge/nudge_type_enum"
	"warmline_server/pkg/enum/nudge/urgency_enum"
)

// nudgeCopy 提醒文案三件套
type nudgeCopy struct {
	Title           string
	Body            string
	SuggestedAction string
}

// buildCopy 按候选项的类型/紧急度生成文案
// 非生日文案带上距上次互动的天数，从未互动时退回无天数版本
func buildCopy(cand *candidate) nudgeCopy {
	name := cand.contact.Name
	switch cand.typ {
	case nudge_type_enum.BIRTHDAY:
		return buildBirthdayCopy(name, cand.daysUntil)
	case nudge_type_enum.RE_ENGAGE:
		body := fmt.Sprintf("You haven't connected with %s yet. Break the ice!", name)
		if cand.daysSince >= 0 {
			body = fmt.Sprintf("It's been %d days. A quick message could reignite this connection.", cand.daysSince)
		}
		return nudgeCopy{
			Title:           fmt.Sprintf("Reconnect with %s", name),
			Body:            body,
			SuggestedAction: "Send a short message to break the ice",
		}
	case nudge_type_enum.WARMTH_DECAY:
		return buildDecayCopy(cand, name)
	default:
		return nudgeCopy{
			Title:           fmt.Sprintf("Think of %s", name),
			Body:            fmt.Sprintf("%s might appreciate hearing from you.", name),
			SuggestedAction: "Say hello",
		}
	}
}

// buildDecayCopy 温度衰减文案，按紧急度细分
func buildDecayCopy(cand *candidate, name string) nudgeCopy {
	if cand.daysSince < 0 {
		return nudgeCopy{
			Title:           fmt.Sprintf("Check in with %s", name),
			Body:            fmt.Sprintf("Your connection with %s is cooling down.", name),
			SuggestedAction: "Reach out with a quick message or call",
		}
	}
	if cand.urgency >= urgency_enum.MID {
		return nudgeCopy{
			Title:           fmt.Sprintf("%s is going cold", name),
			Body:            fmt.Sprintf("%d days since your last interaction. They might think you've forgotten.", cand.daysSince),
			SuggestedAction: "Reach out with a quick message or call",
		}
	}
	return nudgeCopy{
		Title: fmt.Sprintf("Check in with %s", name),
		Body: fmt.Sprintf("It's been %d days. Your %d-day goal is approaching.",
			cand.daysSince, cand.contact.DesiredFrequencyDays),
		SuggestedAction: "Reach out with a quick message or call",
	}
}

// buildBirthdayCopy 按距生日天数细分文案
func buildBirthdayCopy(contactName string, daysUntil int) nudgeCopy {
	var body string
	switch daysUntil {
	case 0:
		body = fmt.Sprintf("Today is %s's birthday!", contactName)
	case 1:
		body = fmt.Sprintf("%s's birthday is tomorrow.", contactName)
	default:
		body = fmt.Sprintf("%s's birthday is in %d days.", contactName, daysUntil)
	}
	return nudgeCopy{
		Title:           fmt.Sprintf("%s's birthday is coming up", contactName),
		Body:            body,
		SuggestedAction: fmt.Sprintf("Send %s birthday wishes", contactName),
	}
}
