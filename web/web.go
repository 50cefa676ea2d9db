// Package web holds the static pages served by the API.
package web

import _ "embed"

// TimetableHTML is the weekly class timetable page.
//
//go:embed timetable.html
var TimetableHTML []byte
