package response

type SyncCodeResponse struct {
	SyncCode string `json:"sync_code"`
}

type SyncOwnerResponse struct {
	UUID string `json:"uuid"`
}
