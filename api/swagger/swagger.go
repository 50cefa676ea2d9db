package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "TrackMe API",
        "description": "Personal habit and class attendance tracker. Every JSON response uses the {success, data, error, meta} envelope; payload fields such as completed or labels are read from data.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Dashboard", "description": "Today's summary"},
        {"name": "Habits", "description": "Habits, daily logs and streaks"},
        {"name": "Attendance", "description": "Subjects and attendance marks"},
        {"name": "Charts", "description": "Completion series by week, month and year"},
        {"name": "Pages", "description": "Static pages"},
        {"name": "System", "description": "Probes and metrics"}
    ],
    "paths": {
        "/": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Today's dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/habits": {
            "get": {
                "tags": ["Habits"],
                "summary": "Habits page",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Habits"],
                "summary": "Create habit",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateHabitRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/toggle/{habit_id}": {
            "post": {
                "tags": ["Habits"],
                "summary": "Toggle today's completion",
                "description": "Returns {habit_id, completed, streak} under data.",
                "parameters": [
                    {"name": "habit_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Habit not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/delete_habit/{habit_id}": {
            "delete": {
                "tags": ["Habits"],
                "summary": "Delete habit and its logs",
                "parameters": [
                    {"name": "habit_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Habit not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/attendance": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Subjects with today's status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/mark-attendance": {
            "post": {
                "tags": ["Attendance"],
                "summary": "Mark attendance",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MarkAttendanceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Subject not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/subjects": {
            "post": {
                "tags": ["Attendance"],
                "summary": "Create subject",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSubjectRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Subject exists", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/subjects/{subject_id}": {
            "delete": {
                "tags": ["Attendance"],
                "summary": "Delete subject and its records",
                "parameters": [
                    {"name": "subject_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Subject not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/attendance-stats": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Overall and per-subject attendance",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/subject_stats/{subject_id}": {
            "get": {
                "tags": ["Attendance"],
                "summary": "All-time statistics for one subject",
                "parameters": [
                    {"name": "subject_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Subject not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/chart-data/{period}": {
            "get": {
                "tags": ["Charts"],
                "summary": "Completion chart series",
                "description": "Returns {labels, data, pieData} under data, so the series is at data.data.",
                "parameters": [
                    {"name": "period", "in": "path", "required": true, "type": "string", "enum": ["week", "month", "year"]},
                    {"name": "chartType", "in": "query", "type": "string", "enum": ["bar", "line", "pie"]},
                    {"name": "month", "in": "query", "type": "integer"},
                    {"name": "year", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unknown period", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timetable": {
            "get": {
                "tags": ["Pages"],
                "summary": "Weekly timetable",
                "produces": ["text/html"],
                "responses": {
                    "200": {"description": "HTML page"}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["System"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["System"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unavailable"}
                }
            }
        }
    },
    "definitions": {
        "CreateHabitRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "maxLength": 200},
                "type": {"type": "string", "enum": ["recurring", "today"]}
            },
            "required": ["name"]
        },
        "MarkAttendanceRequest": {
            "type": "object",
            "properties": {
                "subject_id": {"type": "string"},
                "status": {"type": "string", "enum": ["Present", "Absent"]},
                "date": {"type": "string", "format": "date"}
            },
            "required": ["subject_id", "status"]
        },
        "CreateSubjectRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "maxLength": 100}
            },
            "required": ["name"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "description": "Payload fields are nested under data in the {success, data, error, meta} envelope.",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
