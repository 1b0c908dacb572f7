package contact

type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in-progress"
	StatusResponded  Status = "responded"
	StatusClosed     Status = "closed"
)

func InitialStatus() Status {
	return StatusNew
}

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusNew, StatusInProgress, StatusResponded, StatusClosed:
		return true
	}
	return false
}
