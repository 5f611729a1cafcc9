package models

// Worker lives in one of the eight hash partitions (workers_p0..workers_p7).
// The default table name "workers" is the transient staging table used only
// while a fresh row is being relocated into its owning partition.
type Worker struct {
	BaseModel
	UserID     string `gorm:"type:uuid;not null" json:"user_id"`
	FullName   string `json:"full_name"`
	Skills     string `json:"skills"` // comma-separated tags
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	Experience string `json:"experience"`
	Age        string `json:"age"`
	Gender     string `json:"gender"`
}
