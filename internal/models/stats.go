package models

// DayCount is the number of completed logs on a day.
type DayCount struct {
	Day   Date `db:"day"`
	Total int  `db:"total"`
}

// LabelValue is one slice of a distribution chart.
type LabelValue struct {
	Label string `db:"label" json:"label"`
	Value int    `db:"value" json:"value"`
}
