package model

// CitizenModel maps the columns of the 'citizens' table this service reads.
// The table is owned by the citizen registry and is never migrated from here.
type CitizenModel struct {
	ID       int64  `gorm:"primaryKey"`
	FullName string `gorm:"type:text"`
	Phone    *string
	IsActive bool
}

// TableName explicitly sets the table name for GORM.
func (CitizenModel) TableName() string {
	return "citizens"
}
