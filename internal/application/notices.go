package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/bnema/peerchat-cli/internal/domain"
)

const TrackerUnreachableMessage = "Tracker is unreachable. Please ensure the tracker is running."

// Activity names a user action in notice texts.
type Activity struct {
	Gerund     string
	Infinitive string
}

var (
	ActivitySend     = Activity{Gerund: "sending message", Infinitive: "send message"}
	ActivityRefresh  = Activity{Gerund: "loading peers and channels", Infinitive: "load peers and channels"}
	ActivityRegister = Activity{Gerund: "registering", Infinitive: "register with tracker"}
	ActivityCreate   = Activity{Gerund: "creating channel", Infinitive: "create channel"}
	ActivityJoin     = Activity{Gerund: "joining channel", Infinitive: "join channel"}
)

// NoticeForError maps a failed action onto the notice shown to the user.
func NoticeForError(activity Activity, err error, at time.Time) domain.Notice {
	notice := domain.Notice{Level: domain.NoticeError, At: at}

	var serviceErr *domain.ServiceError
	hasMessage := errors.As(err, &serviceErr) && serviceErr.Message != ""

	switch {
	case errors.Is(err, domain.ErrNotRegistered):
		notice.Text = "Please register your Peer before sending a message."
	case errors.Is(err, domain.ErrNoTargetSelected):
		notice.Text = "Please select a Peer or Channel before sending a message."
	case errors.Is(err, domain.ErrEmptyMessage):
		notice.Text = "Message is empty."
	case errors.Is(err, domain.ErrInvalidTarget):
		notice.Text = fmt.Sprintf("Cannot %s: %v", activity.Infinitive, err)
	case errors.Is(err, domain.ErrServiceUnavailable):
		notice.Level = domain.NoticeSystem
		if hasMessage {
			notice.Text = fmt.Sprintf("Tracker unavailable while %s: %s", activity.Gerund, serviceErr.Message)
		} else {
			notice.Text = TrackerUnreachableMessage
		}
	case errors.Is(err, domain.ErrTransportUnreachable):
		notice.Text = fmt.Sprintf("Connection error when %s.", activity.Gerund)
	case errors.Is(err, domain.ErrRequestRejected) && hasMessage:
		notice.Text = fmt.Sprintf("Failed to %s: %s", activity.Infinitive, serviceErr.Message)
	default:
		notice.Text = fmt.Sprintf("Failed to %s: %v", activity.Infinitive, err)
	}

	return notice
}

func sentNotice(request domain.OutboundRequest, receipt domain.SendReceipt, at time.Time) domain.Notice {
	var text string
	switch request.Mode {
	case domain.TargetChannel:
		text = fmt.Sprintf("Sent to %s (Success: %d, Failed: %d).", request.DisplayName, receipt.SentTo, receipt.Failed)
	case domain.TargetBroadcast:
		text = "Broadcast message sent successfully."
	default:
		text = fmt.Sprintf("Sent message to %s.", request.DisplayName)
	}
	return domain.Notice{Level: domain.NoticeSent, Text: text, At: at}
}

// ReceivedNotice announces an inbound message.
func ReceivedNotice(message domain.AttributedMessage, at time.Time) domain.Notice {
	return domain.Notice{
		Level: domain.NoticeSuccess,
		Text:  fmt.Sprintf("New message received from %s.", message.Sender),
		At:    at,
	}
}
