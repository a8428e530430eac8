package models

// Activity operations published to the event stream.
const (
	OperationUserRegistered  = "user_registered"
	OperationBookAddedToList = "book_added_to_list"
	OperationRatingSubmitted = "rating_submitted"
	OperationCommentCreated  = "comment_created"
)

// ActivityEvent is a user action on the catalog, published after the write is committed.
type ActivityEvent struct {
	EventID   string         `json:"eventId"`           // EventID is a unique identifier for the event.
	Timestamp int64          `json:"timestamp"`         // Timestamp is the Unix time (seconds) of the action.
	UserID    int64          `json:"userId"`            // UserID is the acting user.
	BookID    string         `json:"bookId,omitempty"`  // BookID is the affected book, if any.
	Operation string         `json:"operation"`         // Operation is one of the Operation* constants.
	Payload   map[string]any `json:"payload,omitempty"` // Payload carries operation specific values.
}
