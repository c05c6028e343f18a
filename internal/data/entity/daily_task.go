package entity

type DailyTask struct {
	BaseSimple
	TaskText    string `db:"task_text"`
	Completed   bool   `db:"completed"`
	CreatedDate string `db:"created_date"` // YYYY-MM-DD
	UserID      string `db:"user_id"`
}
