package leave

import "errors"

var (
	ErrNoLeaveRecords = errors.New("no leave records found for the selected date")
)
