package services

import (
	"fmt"

	"github.com/khanhtv/traincrew/internal/sharelink"
)

// ComposeAssignment builds the share payload for a one-off duty
// assignment. Assignments are composed and shared in place, never stored.
func ComposeAssignment(trainID, date, content string) sharelink.Payload {
	return sharelink.Payload{Assignment: &sharelink.Assignment{
		TrainID: trainID,
		Date:    date,
		Content: content,
	}}
}

// AssignmentText renders the assignment as the plain text sent alongside a
// share link.
func AssignmentText(trainID, date, content string) string {
	return fmt.Sprintf("Phân công tàu %s ngày %s:\n%s", trainID, date, content)
}
