package uir

// SourceLocation pins a node to its origin. Lines are 1-based; columns are
// 0-based byte offsets within the line, matching what grammar engines report.
type SourceLocation struct {
	File        string `json:"file"`
	StartLine   uint   `json:"start_line"`
	EndLine     uint   `json:"end_line"`
	StartColumn uint   `json:"start_column"`
	EndColumn   uint   `json:"end_column"`
}
