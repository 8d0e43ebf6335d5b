package i18n

import (
	"github.com/trangvu/lunacycle/internal/advice"
	"github.com/trangvu/lunacycle/internal/config"
)

// AdvicePrompt renders the localized provider prompt for a request. It
// satisfies advice.PromptFunc, so the CLI can hand the translator
// straight to the Gemini provider.
func (tr *Translator) AdvicePrompt(req advice.Request) string {
	status := tr.Msg(config.TKeyAdviceNormal)
	if req.OnPeriod {
		status = tr.Msg(config.TKeyAdviceOnPeriod)
	}
	return tr.MsgData(config.TKeyAdvicePrompt, map[string]any{
		"Name":   req.UserName,
		"Day":    req.DayOfCycle,
		"Status": status,
	})
}
