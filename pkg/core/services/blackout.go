package services

import (
	"fmt"
	"sort"

	"github.com/teambition/rrule-go"

	"github.com/jakechorley/term-timetable/internal/config"
	"github.com/jakechorley/term-timetable/pkg/core/model"
)

// ResolveBlackoutDays merges the configured blackout days with the occurrences of every
// blackout rule. The result is sorted and free of duplicates. Rule occurrences on weekends
// or beyond the last week are dropped.
func ResolveBlackoutDays(cfg *config.Config) ([]model.TermDay, error) {
	seen := make(map[model.TermDay]bool)
	days := []model.TermDay{}

	add := func(day model.TermDay) {
		if seen[day] {
			return
		}
		seen[day] = true
		days = append(days, day)
	}

	for _, day := range cfg.BlackoutDays {
		add(model.TermDay{Week: day.Week, Day: model.Weekday(day.Day)})
	}

	weeks := cfg.WeeksPerSemester
	if weeks == 0 {
		weeks = config.DefaultWeeksPerSemester
	}

	if len(cfg.BlackoutRules) > 0 {
		termStart, err := cfg.TermStartDate()
		if err != nil {
			return nil, err
		}
		if termStart == nil {
			return nil, fmt.Errorf("termStart is required to expand blackout rules")
		}

		calendar := model.NewTermCalendar(*termStart)
		termEnd := calendar.Date(model.TermDay{Week: weeks - 1, Day: model.Friday})

		for i, r := range cfg.BlackoutRules {
			rule, err := rrule.StrToRRule(r.RRule)
			if err != nil {
				return nil, fmt.Errorf("failed to parse rrule for blackoutRules[%d]: %w", i, err)
			}
			rule.DTStart(*termStart)

			for _, occurrence := range rule.Between(calendar.FirstMonday(), termEnd, true) {
				day, ok := calendar.Locate(occurrence)
				if !ok || day.Week >= weeks {
					continue
				}
				add(day)
			}
		}
	}

	sort.Slice(days, func(i, j int) bool {
		if days[i].Week != days[j].Week {
			return days[i].Week < days[j].Week
		}
		return days[i].Day < days[j].Day
	})

	return days, nil
}
