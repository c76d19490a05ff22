package logging

// LogEntry is one structured log record.
type LogEntry struct {
	// Standard fields
	Time     int64    `json:"time"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Function string   `json:"function"`

	// Search-run fields, lifted from the context when present
	RunID   string `json:"run_id,omitempty"`  // identifies one evolution run
	Problem string `json:"problem,omitempty"` // name of the problem being searched

	// General structured data
	Fields map[string]interface{} `json:"fields,omitempty"`
}
