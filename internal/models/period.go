package models

import "time"

// Отчёты Dodo IS считаются по московскому времени.
var moscowLocation = loadMoscowLocation()

func loadMoscowLocation() *time.Location {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		return time.FixedZone("MSK", 3*60*60)
	}
	return loc
}

// Period описывает интервал отчёта.
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// NewPeriodToday возвращает период с начала текущих суток до текущего момента.
func NewPeriodToday() Period {
	now := time.Now().In(moscowLocation)
	return Period{
		From: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, moscowLocation),
		To:   now,
	}
}

// NewPeriodWeekBefore возвращает такой же период, но неделей раньше.
func NewPeriodWeekBefore() Period {
	today := NewPeriodToday()
	return Period{
		From: today.From.AddDate(0, 0, -7),
		To:   today.To.AddDate(0, 0, -7),
	}
}
