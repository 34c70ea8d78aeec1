package models

// HistoryTimeLayout formats history timestamps as DD-MM-YYYY HH:MM in the local clock.
const HistoryTimeLayout = "02-01-2006 15:04"

// HistoryEntry represents one question/answer interaction.
// Username references a User by value; the relation is not enforced in SQLite.
type HistoryEntry struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Question string `db:"question" json:"question"`
	Answer   string `db:"answer" json:"answer"`
	Time     string `db:"time" json:"time"`
}

// UserHistoryRow is the self-service view of an entry: the owner is implied.
type UserHistoryRow struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Time     string `json:"time"`
}

// AdminHistoryRow is the administrative view of an entry. It omits the answer.
type AdminHistoryRow struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Question string `json:"question"`
	Time     string `json:"time"`
}
