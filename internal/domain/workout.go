package domain

import "time"

// KettlebellEntry is one recorded set (or group of sets) of swings.
// Date is assigned once at creation from the local calendar day and is
// never recomputed from CreatedAt; CreatedAt orders entries within a day.
type KettlebellEntry struct {
	ID           int64     `json:"id"`
	Date         string    `json:"date"`
	Weight       float64   `json:"weight"`
	Series       int       `json:"series"`
	Reps         int       `json:"reps"`
	SingleHanded bool      `json:"singleHanded"`
	CreatedAt    time.Time `json:"created_at"`
}

// PushUpEntry is one recorded group of push-up sets.
type PushUpEntry struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Series    int       `json:"series"`
	Reps      int       `json:"reps"`
	CreatedAt time.Time `json:"created_at"`
}

// DailyWorkoutRecord holds cumulative timer state per day, in seconds.
// Updates overwrite the stored values, they do not accumulate.
type DailyWorkoutRecord struct {
	Date           string `json:"date"`
	KettlebellTime int    `json:"kettlebell_time"`
	PushupTime     int    `json:"pushup_time"`
}
