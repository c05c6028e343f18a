package response

type AffirmationResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type DailyDataResponse struct {
	Date        string         `json:"date"`
	Affirmation string         `json:"affirmation"`
	Tasks       []TaskResponse `json:"tasks"`
}
