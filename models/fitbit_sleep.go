// ABOUTME: This file defines the Fitbit sleep log API entities
// ABOUTME: Shapes mirror the /sleep/date/{date}.json response body

package models

// SleepResponse represents the Fitbit sleep log response for a single date
type SleepResponse struct {
	Sleep   []SleepLog   `json:"sleep"`
	Summary SleepSummary `json:"summary"`
}

// SleepLog represents one recorded sleep session
type SleepLog struct {
	DateOfSleep         string      `json:"dateOfSleep"`
	Duration            int64       `json:"duration"`
	Efficiency          int         `json:"efficiency"`
	EndTime             string      `json:"endTime"`
	InfoCode            int         `json:"infoCode"`
	IsMainSleep         bool        `json:"isMainSleep"`
	Levels              SleepLevels `json:"levels"`
	LogID               int64       `json:"logId"`
	MinutesAfterWakeup  int         `json:"minutesAfterWakeup"`
	MinutesAsleep       int         `json:"minutesAsleep"`
	MinutesAwake        int         `json:"minutesAwake"`
	MinutesToFallAsleep int         `json:"minutesToFallAsleep"`
	StartTime           string      `json:"startTime"`
	TimeInBed           int         `json:"timeInBed"`
	Type                string      `json:"type"`
}

// SleepLevels breaks a sleep session into stage data
type SleepLevels struct {
	Data         []SleepLevelData           `json:"data"`
	ShortData    []SleepLevelData           `json:"shortData,omitempty"`
	Summary      map[string]SleepStageStats `json:"summary"`
}

// SleepLevelData is a single stage interval within a sleep session
type SleepLevelData struct {
	DateTime string `json:"dateTime"`
	Level    string `json:"level"`
	Seconds  int    `json:"seconds"`
}

// SleepStageStats aggregates one sleep stage across a session
type SleepStageStats struct {
	Count               int `json:"count"`
	Minutes             int `json:"minutes"`
	ThirtyDayAvgMinutes int `json:"thirtyDayAvgMinutes,omitempty"`
}

// SleepSummary aggregates all sleep sessions for the date
type SleepSummary struct {
	Stages             SleepStages `json:"stages"`
	TotalMinutesAsleep int         `json:"totalMinutesAsleep"`
	TotalSleepRecords  int         `json:"totalSleepRecords"`
	TotalTimeInBed     int         `json:"totalTimeInBed"`
}

// SleepStages holds the per-stage minute totals for the date
type SleepStages struct {
	Deep  int `json:"deep"`
	Light int `json:"light"`
	Rem   int `json:"rem"`
	Wake  int `json:"wake"`
}
