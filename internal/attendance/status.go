package attendance

// Status is the derived display state for one (user, civil date). It is never
// stored; every read site derives it from the record through DeriveStatus.
type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusWorking    Status = "WORKING"
	StatusOnLunch    Status = "ON_LUNCH"
	StatusCompleted  Status = "COMPLETED"
	StatusOnLeave    Status = "ON_LEAVE"
)

// DeriveStatus computes the day state from the persisted record. A nil record
// means the day has not started. Leave and completed are terminal.
func DeriveStatus(record *AttendanceRecord) Status {
	switch {
	case record == nil:
		return StatusNotStarted
	case record.IsLeave():
		return StatusOnLeave
	case record.IsClosed():
		return StatusCompleted
	case record.OpenLunchBreak() != nil:
		return StatusOnLunch
	default:
		return StatusWorking
	}
}
