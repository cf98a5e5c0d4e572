package value_objects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusOnProgress TicketStatus = "onprogress"
	StatusResolved   TicketStatus = "resolved"
	StatusRejected   TicketStatus = "rejected"
)

var validStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusOnProgress: true,
	StatusResolved:   true,
	StatusRejected:   true,
}

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	return validStatuses[s]
}

func NewTicketStatus(s string) (TicketStatus, error) {
	status := TicketStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}

func (s TicketStatus) IsOpen() bool {
	return s == StatusOpen
}

func (s TicketStatus) IsOnProgress() bool {
	return s == StatusOnProgress
}

func (s TicketStatus) IsResolved() bool {
	return s == StatusResolved
}

func (s TicketStatus) IsRejected() bool {
	return s == StatusRejected
}
