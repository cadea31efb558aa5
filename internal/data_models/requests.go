package dto

type CreateTaskRequest struct {
	Title    string `json:"title"`
	SubmitAt string `json:"submit_at"`
}

type AddLogRequest struct {
	Text string `json:"text"`
	// Status, when non-empty, is applied together with the log entry.
	Status string `json:"status"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

type UpdateSubmitAtRequest struct {
	SubmitAt string `json:"submit_at"`
}

type CreateDropRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
