package handlers

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	config "github.com/gqmo/exam-server/configs"
	"github.com/gqmo/exam-server/i18n"
)

var validate = validator.New()

// I18n is the locale matrix used to render problem pages; assigned at start-up.
var I18n *i18n.Table

// AnswerLanguages lists the languages answers may be written in, sorted.
var AnswerLanguages = []string{
	"Arabic", "English", "Estonian", "French", "German",
	"Hungarian", "Italian", "Russian", "Spanish", "Thai",
}

// ExamLevels lists the level codes papers may be created under.
var ExamLevels = []string{"hard_day_1", "hard_day_2"}

const (
	defaultBypassSecret  = "soy un arrecho"
	defaultProblemLevels = "jiwls:hard_day_1,oweiur:hard_day_2"
)

var (
	levelOnce sync.Once
	levelMap  map[string]string
)

// levelFor maps an opaque problem-set identifier to its exam level code.
// The mapping is deployment data, overridable via PROBLEM_SET_LEVELS
// ("pid:level,pid:level").
func levelFor(pid string) (string, bool) {
	levelOnce.Do(func() {
		levelMap = make(map[string]string)
		raw := config.ConfigOr("PROBLEM_SET_LEVELS", defaultProblemLevels)
		for _, pair := range strings.Split(raw, ",") {
			parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
			if len(parts) == 2 {
				levelMap[parts[0]] = parts[1]
			}
		}
	})
	level, ok := levelMap[pid]
	return level, ok
}

func bypassSecret() string {
	return config.ConfigOr("TEST_BYPASS_SECRET", defaultBypassSecret)
}
