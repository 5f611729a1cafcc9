package models

import "gorm.io/datatypes"

// ActivityLog records an admin action for the audit trail.
type ActivityLog struct {
	BaseModel
	AdminID     string         `gorm:"type:uuid;index" json:"admin_id"`
	AdminEmail  string         `json:"admin_email"`
	ActionType  string         `gorm:"type:varchar(20)" json:"action_type"` // create | update | delete
	TargetTable string         `json:"target_table"`
	TargetID    string         `json:"target_id"`
	Note        string         `json:"note"`
	Details     datatypes.JSON `gorm:"type:jsonb" json:"details,omitempty"`
}
