package main

// JSON report structures

type JSONKeyword struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

type JSONRemoval struct {
	Line    int    `json:"line"`
	Keyword string `json:"keyword"`
	Text    string `json:"text"`
}

type JSONReport struct {
	File         string        `json:"file"`
	Strategy     string        `json:"strategy"`
	DryRun       bool          `json:"dry_run"`
	TotalLines   int           `json:"total_lines"`
	KeptLines    int           `json:"kept_lines"`
	RemovedLines int           `json:"removed_lines"`
	Keywords     []JSONKeyword `json:"keywords"`
	Removed      []JSONRemoval `json:"removed"`
}
