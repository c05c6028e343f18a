package entity

// SyncCode is a pairing token issued to an owner. Rows are append/delete
// only: code, owner and validity never change after insert. Expired and
// duplicate rows are removed by the background cleanup job.
type SyncCode struct {
	BaseSimple
	Code            string `db:"code"`
	OwnerID         string `db:"owner_id"`
	ValidityMinutes int    `db:"validity_minutes"`
}
