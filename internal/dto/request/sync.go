package request

type GenerateSyncCodeRequest struct {
	UUID string `json:"uuid" validate:"required"`
}

type ValidateSyncCodeRequest struct {
	SyncCode    string `json:"sync_code" validate:"required"`
	CurrentUUID string `json:"current_uuid"`
}
