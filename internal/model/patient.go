package model

// Patient is one monitored child. Records are immutable and come from
// the static demo roster; LastExam is a zero-padded ISO date so that
// string comparison orders chronologically.
type Patient struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Age      int    `json:"age" yaml:"age"`
	LastExam string `json:"lastExam" yaml:"lastExam"`
	Risk     int    `json:"risk" yaml:"risk"`
}

// Exam is one simulated recording-and-scoring event.
type Exam struct {
	Seq    int       `json:"seq"`
	Date   string    `json:"date"`
	Series []float64 `json:"series"`
	Risk   int       `json:"risk"`
}

// Questionnaire holds the advisory exam metadata. It is independent of
// the device connection state and never a precondition for recording.
type Questionnaire struct {
	Smoke     bool   `json:"smoke"`
	Allergies bool   `json:"allergies"`
	Diet      bool   `json:"diet"`
	Notes     string `json:"notes"`
}

// Recording is the output of one "start recording" invocation.
type Recording struct {
	ID     string    `json:"id"`
	Series []float64 `json:"series"`
	Risk   int       `json:"risk"`
}
