package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type NoticeID string

func (x NoticeID) String() string {
	return string(x)
}

func NewNoticeID() NoticeID {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return NoticeID(id.String())
}

func (x NoticeID) Validate() error {
	if x == EmptyNoticeID {
		return goerr.New("empty notice ID")
	}
	if _, err := uuid.Parse(string(x)); err != nil {
		return goerr.Wrap(err, "invalid notice ID format", goerr.V("id", x))
	}
	return nil
}

const (
	EmptyNoticeID NoticeID = ""
)

// NoticeKind is the statutory document kind of an enforcement record
// (autuação). The set is closed: it determines the document title and the
// number prefix of the record.
type NoticeKind string

const (
	NoticeKindNotification NoticeKind = "notification"
	NoticeKindSummons      NoticeKind = "summons"
	NoticeKindEmbargo      NoticeKind = "embargo"
	NoticeKindFine         NoticeKind = "fine"
)

var noticeKindLabels = map[NoticeKind]string{
	NoticeKindNotification: "Notificação",
	NoticeKindSummons:      "Intimação",
	NoticeKindEmbargo:      "Embargo",
	NoticeKindFine:         "Multa",
}

var noticeKindTitles = map[NoticeKind]string{
	NoticeKindNotification: "AUTO DE NOTIFICAÇÃO",
	NoticeKindSummons:      "AUTO DE INTIMAÇÃO",
	NoticeKindEmbargo:      "AUTO DE EMBARGO",
	NoticeKindFine:         "AUTO DE MULTA",
}

var noticeKindPrefixes = map[NoticeKind]string{
	NoticeKindNotification: "NOT",
	NoticeKindSummons:      "INT",
	NoticeKindEmbargo:      "EMB",
	NoticeKindFine:         "MUL",
}

func (x NoticeKind) String() string {
	return string(x)
}

func (x NoticeKind) Label() string {
	return noticeKindLabels[x]
}

// DocumentTitle is the heading of the printable document for this kind.
func (x NoticeKind) DocumentTitle() string {
	return noticeKindTitles[x]
}

// NumberPrefix is the leading token of the human-facing document number.
func (x NoticeKind) NumberPrefix() string {
	return noticeKindPrefixes[x]
}

func (x NoticeKind) Validate() error {
	switch x {
	case NoticeKindNotification, NoticeKindSummons, NoticeKindEmbargo, NoticeKindFine:
		return nil
	}
	return goerr.New("invalid notice kind", goerr.V("kind", x))
}

// NoticeStatus is the lifecycle state of a record, set by the enforcement
// workflow. It is independent from the time-based deadline classification:
// the two axes must not be conflated.
type NoticeStatus string

const (
	NoticeStatusPending   NoticeStatus = "pending"
	NoticeStatusFulfilled NoticeStatus = "fulfilled"
	NoticeStatusCancelled NoticeStatus = "cancelled"
)

var noticeStatusLabels = map[NoticeStatus]string{
	NoticeStatusPending:   "Pendente",
	NoticeStatusFulfilled: "Cumprida",
	NoticeStatusCancelled: "Cancelada",
}

func (x NoticeStatus) String() string {
	return string(x)
}

func (x NoticeStatus) Label() string {
	return noticeStatusLabels[x]
}

func (x NoticeStatus) Validate() error {
	switch x {
	case NoticeStatusPending, NoticeStatusFulfilled, NoticeStatusCancelled:
		return nil
	}
	return goerr.New("invalid notice status", goerr.V("status", x))
}
