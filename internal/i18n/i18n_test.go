package i18n_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trangvu/lunacycle/internal/advice"
	"github.com/trangvu/lunacycle/internal/config"
	"github.com/trangvu/lunacycle/internal/i18n"
)

var keysToCheck = []string{
	config.TKeyAdvicePrompt,
	config.TKeyAdviceOnPeriod,
	config.TKeyAdviceNormal,
	config.TKeyHello,
	config.TKeyStatusPeriod,
	config.TKeyStatusForecast,
	config.TKeyStatusToday,
	config.TKeyEvtPeriod,
	config.TKeyEvtForecast,
	config.TKeyLblCycleLen,
	config.TKeyLblPeriodDur,
	config.TKeyLblMood,
	config.TKeyLblBreakfast,
	config.TKeyLblLunch,
	config.TKeyLblDinner,
	config.TKeyLblActivities,
	config.TKeyLblOngoing,
	config.TKeyLblDuration,
}

// TestI18nIntegrity ensures that every translation key defined in
// config.go exists in every shipped locale file.
func TestI18nIntegrity(t *testing.T) {
	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			path := filepath.Join("locales", "active."+lang+".json")
			content, err := os.ReadFile(path)
			require.NoError(t, err, "Must load %s", path)

			var jsonMap map[string]interface{}
			require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")

			for _, key := range keysToCheck {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in %s", key, path)
			}
		})
	}
}

func TestTranslator_Fallback(t *testing.T) {
	tr := i18n.New("vi")

	assert.Equal(t, "nonexistent_key", tr.Msg("nonexistent_key"),
		"missing messages return the key, never an empty string")
}

func TestTranslator_Languages(t *testing.T) {
	tr := i18n.New("vi")

	viHello := tr.MsgData(config.TKeyHello, map[string]any{"Name": "Linh"})
	assert.Equal(t, "Xin chào, Linh", viHello)

	tr.SetLanguage("en")
	enHello := tr.MsgData(config.TKeyHello, map[string]any{"Name": "Linh"})
	assert.Equal(t, "Hello, Linh", enHello)
}

// TestAdvicePrompt verifies the prompt carries the user context and the
// localized period status.
func TestAdvicePrompt(t *testing.T) {
	tr := i18n.New("vi")

	prompt := tr.AdvicePrompt(advice.Request{DayOfCycle: 3, OnPeriod: true, UserName: "Linh"})

	assert.Contains(t, prompt, "Linh")
	assert.Contains(t, prompt, "ngày thứ 3")
	assert.Contains(t, prompt, "ĐANG CÓ KINH NGUYỆT")

	prompt = tr.AdvicePrompt(advice.Request{DayOfCycle: 17, OnPeriod: false, UserName: "Linh"})
	assert.Contains(t, prompt, "KHÔNG CÓ KINH NGUYỆT")
	assert.False(t, strings.Contains(prompt, "ĐANG CÓ KINH NGUYỆT"))
}
